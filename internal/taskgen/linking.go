package taskgen

import (
	"sort"

	"training-service/internal/content"
	"training-service/internal/models"
)

type LinkingMatchItem struct {
	Sentence1     string          `json:"sentence1"`
	Sentence2     string          `json:"sentence2"`
	Relation      string          `json:"relation"`
	CorrectAnswer string          `json:"correctAnswer"`
	Options       []models.Option `json:"options"`
}

type ParagraphReorderItem struct {
	Sentences    []content.OrderedSentence `json:"sentences"`
	CorrectOrder []content.OrderedSentence `json:"correctOrder"`
}

// shapeLinking shapes module 4 content for the chosen task type,
// continuing the daily RNG stream.
func (g *Generator) shapeLinking(taskType models.TaskType, rng func() float64) any {
	bank := g.bank.Linking()

	switch taskType {
	case models.TaskLinkingMatch:
		pool := bank.ConnectorMatch
		if len(pool) == 0 {
			pool = content.DefaultConnectorMatch
		}
		items := make([]LinkingMatchItem, 0, 8)
		for _, e := range take(pool, 8) {
			// Bank options are stored correct-first; presentation
			// order comes from the daily stream.
			items = append(items, LinkingMatchItem{
				Sentence1:     e.Sentence1,
				Sentence2:     e.Sentence2,
				Relation:      e.Relation,
				CorrectAnswer: e.CorrectAnswer,
				Options:       SeededShuffle(e.Options, rng),
			})
		}
		return items

	case models.TaskParagraphReorder:
		pool := bank.Reorder
		if len(pool) == 0 {
			pool = content.DefaultReorder
		}
		items := make([]ParagraphReorderItem, 0, 5)
		for _, e := range take(pool, 5) {
			correctOrder := make([]content.OrderedSentence, len(e.Sentences))
			copy(correctOrder, e.Sentences)
			sort.SliceStable(correctOrder, func(i, j int) bool {
				return correctOrder[i].Order < correctOrder[j].Order
			})
			items = append(items, ParagraphReorderItem{
				Sentences:    SeededShuffle(e.Sentences, rng),
				CorrectOrder: correctOrder,
			})
		}
		return items

	case models.TaskCompletion:
		pool := bank.Completion
		if len(pool) == 0 {
			pool = content.DefaultCompletion
		}
		return take(pool, 5)

	default:
		return bank.ConnectorMatch
	}
}
