package taskgen

import (
	"sort"

	"training-service/internal/content"
	"training-service/internal/models"
)

type StrengthRankingItem struct {
	Items        []content.RankItem `json:"items"`
	CorrectOrder []content.RankItem `json:"correctOrder"`
}

// shapeHedging shapes module 3 content for the chosen task type. Only
// the ranking variant consumes RNG draws; the other two present fixed
// pools.
func (g *Generator) shapeHedging(taskType models.TaskType, rng func() float64) any {
	bank := g.bank.Hedging()

	switch taskType {
	case models.TaskAddHedging:
		pool := bank.Add
		if len(pool) == 0 {
			pool = content.DefaultHedgingAdd
		}
		return take(pool, 8)

	case models.TaskStrengthRanking:
		pool := bank.Intensity
		if len(pool) == 0 {
			pool = content.DefaultIntensity
		}
		items := make([]StrengthRankingItem, 0, 6)
		for _, e := range take(pool, 6) {
			correctOrder := make([]content.RankItem, len(e.Items))
			copy(correctOrder, e.Items)
			sort.SliceStable(correctOrder, func(i, j int) bool {
				return correctOrder[i].Strength < correctOrder[j].Strength
			})
			items = append(items, StrengthRankingItem{
				Items:        SeededShuffle(e.Items, rng),
				CorrectOrder: correctOrder,
			})
		}
		return items

	case models.TaskAppropriateness:
		pool := bank.Appropriateness
		if len(pool) == 0 {
			pool = content.DefaultAppropriateness
		}
		return take(pool, 8)

	default:
		return bank.Add
	}
}
