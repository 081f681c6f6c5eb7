package taskgen

import (
	"regexp"
	"strings"

	"training-service/internal/content"
	"training-service/internal/models"
)

type FlashcardItem struct {
	Word         string   `json:"word"`
	Definition   string   `json:"definition"`
	Examples     []string `json:"examples"`
	PartOfSpeech string   `json:"partOfSpeech"`
	WordFamily   []string `json:"wordFamily"`
}

type SpellingItem struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
	Hint       string `json:"hint"`
}

type MeaningMatchItem struct {
	Word    string          `json:"word"`
	Options []models.Option `json:"options"`
}

type WordFamilyItem struct {
	Headword      string   `json:"headword"`
	PartOfSpeech  string   `json:"partOfSpeech"`
	FamilyMembers []string `json:"familyMembers"`
	Options       []string `json:"options"`
}

type ContextualUsageItem struct {
	Sentence string          `json:"sentence"`
	Word     string          `json:"word"`
	Options  []models.Option `json:"options"`
}

// shapeVocabulary samples and shapes module 1 content for the chosen
// task type, continuing the daily RNG stream.
func (g *Generator) shapeVocabulary(taskType models.TaskType, rng func() float64) any {
	pool := g.bank.Vocabulary()
	if len(pool) == 0 {
		pool = content.DefaultVocabulary
	}

	shuffled := SeededShuffle(pool, rng)
	words := take(shuffled, 10)

	switch taskType {
	case models.TaskFlashcard:
		items := make([]FlashcardItem, 0, len(words))
		for _, w := range words {
			items = append(items, FlashcardItem{
				Word:         w.Word,
				Definition:   w.Definition,
				Examples:     orEmpty(w.Examples),
				PartOfSpeech: orDefault(w.PartOfSpeech, "noun"),
				WordFamily:   orEmpty(w.WordFamily),
			})
		}
		return items

	case models.TaskSpelling:
		items := make([]SpellingItem, 0, len(words))
		for _, w := range words {
			items = append(items, SpellingItem{
				Word:       w.Word,
				Definition: w.Definition,
				Hint:       firstLetterHint(w.Word),
			})
		}
		return items

	case models.TaskMeaningMatch:
		items := make([]MeaningMatchItem, 0, len(words))
		for _, w := range words {
			distractors := take(SeededShuffle(othersOf(shuffled, w.Word), rng), 3)

			options := []models.Option{{Text: w.Definition, IsCorrect: true}}
			for _, d := range distractors {
				options = append(options, models.Option{Text: d.Definition, IsCorrect: false})
			}
			items = append(items, MeaningMatchItem{
				Word:    w.Word,
				Options: SeededShuffle(options, rng),
			})
		}
		return items

	case models.TaskWordFamily:
		candidates := withFamilies(words)
		if len(candidates) == 0 {
			candidates = withFamilies(content.DefaultVocabulary)
		}
		candidates = take(candidates, 5)

		items := make([]WordFamilyItem, 0, len(candidates))
		for _, w := range candidates {
			// Distractors come from other headwords' families.
			var otherMembers []string
			for _, o := range shuffled {
				if o.Word == w.Word {
					continue
				}
				otherMembers = append(otherMembers, o.WordFamily...)
			}
			otherMembers = take(otherMembers, 4)

			allOptions := SeededShuffle(append(append([]string{}, w.WordFamily...), otherMembers...), rng)
			items = append(items, WordFamilyItem{
				Headword:      w.Word,
				PartOfSpeech:  w.PartOfSpeech,
				FamilyMembers: w.WordFamily,
				Options:       take(allOptions, 8),
			})
		}
		return items

	case models.TaskContextualUsage:
		candidates := withExamples(words)
		if len(candidates) == 0 {
			candidates = withExamples(content.DefaultVocabulary)
		}
		candidates = take(candidates, 8)

		items := make([]ContextualUsageItem, 0, len(candidates))
		for _, w := range candidates {
			sentence := blankAll(w.Examples[0], w.Word)
			distractors := take(SeededShuffle(othersOf(shuffled, w.Word), rng), 3)

			options := []models.Option{{Text: w.Word, IsCorrect: true}}
			for _, d := range distractors {
				options = append(options, models.Option{Text: d.Word, IsCorrect: false})
			}
			items = append(items, ContextualUsageItem{
				Sentence: sentence,
				Word:     w.Word,
				Options:  SeededShuffle(options, rng),
			})
		}
		return items

	default:
		return words
	}
}

func othersOf(words []content.Word, exclude string) []content.Word {
	var others []content.Word
	for _, w := range words {
		if w.Word != exclude {
			others = append(others, w)
		}
	}
	return others
}

func withFamilies(words []content.Word) []content.Word {
	var out []content.Word
	for _, w := range words {
		if len(w.WordFamily) > 0 {
			out = append(out, w)
		}
	}
	return out
}

func withExamples(words []content.Word) []content.Word {
	var out []content.Word
	for _, w := range words {
		if len(w.Examples) > 0 {
			out = append(out, w)
		}
	}
	return out
}

func firstLetterHint(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1])
}

// blankAll replaces every whole-word occurrence of word with a blank
// marker, case-insensitively.
func blankAll(sentence, word string) string {
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	return re.ReplaceAllString(sentence, "_____")
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
