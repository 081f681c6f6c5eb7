package taskgen

import (
	"fmt"
	"regexp"
	"strings"

	"training-service/internal/content"
	"training-service/internal/models"
)

type ErrorDetectionItem struct {
	ErrorCollocation   string   `json:"errorCollocation"`
	CorrectCollocation string   `json:"correctCollocation"`
	Explanation        string   `json:"explanation"`
	Examples           []string `json:"examples"`
	Frequency          float64  `json:"frequency"`
}

type ErrorCorrectionItem struct {
	Sentence         string          `json:"sentence"`
	ErrorCollocation string          `json:"errorCollocation"`
	CorrectForm      string          `json:"correctForm"`
	Options          []models.Option `json:"options"`
	Explanation      string          `json:"explanation"`
	Examples         []string        `json:"examples"`
}

type ContrastiveItem struct {
	ErrorForm        string   `json:"errorForm"`
	CorrectForm      string   `json:"correctForm"`
	LearnerFrequency string   `json:"learnerFrequency"`
	NativeFrequency  string   `json:"nativeFrequency"`
	Explanation      string   `json:"explanation"`
	Examples         []string `json:"examples"`
}

type GapFillItem struct {
	Sentence        string          `json:"sentence"`
	CorrectWord     string          `json:"correctWord"`
	FullCorrectForm string          `json:"fullCorrectForm"`
	Options         []models.Option `json:"options"`
}

// Distractor verbs for gap-fill options when only the correct word is
// known.
var commonAcademicVerbs = []string{
	"support", "enhance", "enable", "facilitate",
	"provide", "obtain", "utilize", "establish",
}

// shapeCollocation samples and shapes module 2 content for the chosen
// task type, continuing the daily RNG stream.
func (g *Generator) shapeCollocation(taskType models.TaskType, rng func() float64) any {
	pool := g.bank.Collocations()
	if len(pool) == 0 {
		pool = content.DefaultCollocations
	}

	misuse := filterErrors(pool, content.ErrorMisuse)
	overuse := filterErrors(pool, content.ErrorOveruse)
	if len(misuse) == 0 {
		misuse = filterErrors(content.DefaultCollocations, content.ErrorMisuse)
	}
	all := append(append([]content.CollocationError{}, misuse...), overuse...)

	switch taskType {
	case models.TaskErrorDetection:
		items := make([]ErrorDetectionItem, 0, 8)
		for _, e := range take(SeededShuffle(misuse, rng), 8) {
			correctForm := firstAlternative(e.CorrectForm)
			explanation := e.GrammarIssue
			if explanation == "" {
				explanation = fmt.Sprintf("%q should be %q", e.Collocation, correctForm)
			}
			items = append(items, ErrorDetectionItem{
				ErrorCollocation:   e.Collocation,
				CorrectCollocation: correctForm,
				Explanation:        explanation,
				Examples:           orEmpty(e.Examples),
				Frequency:          e.LearnerFreq,
			})
		}
		return items

	case models.TaskErrorCorrection:
		items := make([]ErrorCorrectionItem, 0, 8)
		for _, e := range take(SeededShuffle(misuse, rng), 8) {
			correctForm := firstAlternative(e.CorrectForm)

			var sentence string
			if len(e.Examples) > 0 {
				sentence = blankPhrase(e.Examples[0], correctForm)
			}
			if !strings.Contains(sentence, "_____") {
				sentence = fmt.Sprintf("The correct academic expression is _____ instead of %q.", e.Collocation)
			}

			options := SeededShuffle([]models.Option{
				{Text: correctForm, IsCorrect: true},
				{Text: e.Collocation, IsCorrect: false},
			}, rng)

			items = append(items, ErrorCorrectionItem{
				Sentence:         sentence,
				ErrorCollocation: e.Collocation,
				CorrectForm:      correctForm,
				Options:          options,
				Explanation:      e.GrammarIssue,
				Examples:         orEmpty(e.Examples),
			})
		}
		return items

	case models.TaskContrastive:
		items := make([]ContrastiveItem, 0, 8)
		for _, e := range take(SeededShuffle(all, rng), 8) {
			learnerFreq := "Common in learner writing"
			if e.LearnerFreq > 0 {
				learnerFreq = fmt.Sprintf("Learner: %g per million", e.LearnerFreq)
			}
			nativeFreq := "Rare in native writing"
			if e.CorpusFreqPerMillion > 0 {
				nativeFreq = fmt.Sprintf("Native: %g per million", e.CorpusFreqPerMillion)
			}
			explanation := e.GrammarIssue
			if explanation == "" {
				explanation = e.Issue
			}
			items = append(items, ContrastiveItem{
				ErrorForm:        e.Collocation,
				CorrectForm:      e.CorrectForm,
				LearnerFrequency: learnerFreq,
				NativeFrequency:  nativeFreq,
				Explanation:      explanation,
				Examples:         orEmpty(e.Examples),
			})
		}
		return items

	case models.TaskGapFill:
		items := make([]GapFillItem, 0, 8)
		for _, e := range take(SeededShuffle(all, rng), 8) {
			words := strings.Fields(e.CorrectForm)
			if len(words) == 0 {
				continue
			}
			correctWord := words[0]
			restPhrase := strings.Join(words[1:], " ")

			var sentence string
			for _, example := range e.Examples {
				if strings.Contains(strings.ToLower(example), strings.ToLower(e.CorrectForm)) {
					sentence = blankFirstWord(example, correctWord)
					break
				}
			}
			if !strings.Contains(sentence, "_____") {
				sentence = fmt.Sprintf("The researcher will _____ %s to investigate the hypothesis.", restPhrase)
			}

			options := []models.Option{{Text: correctWord, IsCorrect: true}}
			for _, w := range commonAcademicVerbs {
				if len(options) > 3 {
					break
				}
				if !strings.EqualFold(w, correctWord) {
					options = append(options, models.Option{Text: w, IsCorrect: false})
				}
			}

			items = append(items, GapFillItem{
				Sentence:        sentence,
				CorrectWord:     correctWord,
				FullCorrectForm: e.CorrectForm,
				Options:         SeededShuffle(options, rng),
			})
		}
		return items

	default:
		return take(SeededShuffle(all, rng), 8)
	}
}

func filterErrors(pool []content.CollocationError, errorType string) []content.CollocationError {
	var out []content.CollocationError
	for _, e := range pool {
		if e.ErrorType == errorType && e.CorrectForm != "" {
			out = append(out, e)
		}
	}
	return out
}

// firstAlternative picks the first form when the database lists
// several separated by slashes ("conduct research / do research").
func firstAlternative(correctForm string) string {
	first, _, _ := strings.Cut(correctForm, "/")
	return strings.TrimSpace(first)
}

// blankPhrase replaces every occurrence of phrase with a blank marker,
// case-insensitively.
func blankPhrase(sentence, phrase string) string {
	if phrase == "" {
		return sentence
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(phrase))
	return re.ReplaceAllString(sentence, "_____")
}

// blankFirstWord blanks only the first whole-word occurrence.
func blankFirstWord(sentence, word string) string {
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	loc := re.FindStringIndex(sentence)
	if loc == nil {
		return sentence
	}
	return sentence[:loc[0]] + "_____" + sentence[loc[1]:]
}
