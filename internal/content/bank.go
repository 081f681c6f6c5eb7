package content

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"training-service/internal/models"
)

// Source filenames under the content directory. The formats follow the
// research group's question-bank exports.
const (
	vocabularyFile  = "game_vocab_database_complete.json"
	collocationFile = "collocation_error_database.json"
	linkingFile     = "linking_devices_exercises.json"
)

// Bank is the process-wide question bank. It is loaded once at startup,
// read-only afterwards, and safe for unsynchronized concurrent reads.
// Every pool that cannot be loaded falls back to the built-in fixture
// set; a Bank is never partially unusable.
type Bank struct {
	vocabulary   []Word
	collocations []CollocationError
	hedging      HedgingBank
	linking      LinkingBank
}

// Load reads the question bank from dir. Missing or malformed files are
// logged and replaced by fixtures; Load never fails.
func Load(dir string) *Bank {
	b := &Bank{}

	if err := readJSON(filepath.Join(dir, vocabularyFile), &b.vocabulary); err != nil {
		log.Printf("content: vocabulary bank unavailable (%v), using fixtures", err)
		b.vocabulary = DefaultVocabulary
	}

	b.collocations = loadCollocations(filepath.Join(dir, collocationFile))
	b.hedging = HedgingBank{
		Add:             DefaultHedgingAdd,
		Intensity:       DefaultIntensity,
		Appropriateness: DefaultAppropriateness,
	}
	b.linking = loadLinking(filepath.Join(dir, linkingFile))

	return b
}

// Fixtures returns a bank built entirely from the built-in fixture
// sets. Used when no content directory is configured, and by tests.
func Fixtures() *Bank {
	return &Bank{
		vocabulary:   DefaultVocabulary,
		collocations: DefaultCollocations,
		hedging: HedgingBank{
			Add:             DefaultHedgingAdd,
			Intensity:       DefaultIntensity,
			Appropriateness: DefaultAppropriateness,
		},
		linking: LinkingBank{
			ConnectorMatch: DefaultConnectorMatch,
			Reorder:        DefaultReorder,
			Completion:     DefaultCompletion,
		},
	}
}

func (b *Bank) Vocabulary() []Word               { return b.vocabulary }
func (b *Bank) Collocations() []CollocationError { return b.collocations }
func (b *Bank) Hedging() HedgingBank             { return b.hedging }
func (b *Bank) Linking() LinkingBank             { return b.linking }

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// collocationDatabase mirrors the export layout: sections per error
// type, optionally nested under a top-level key.
type collocationDatabase struct {
	Misuse   []CollocationError `json:"misuse"`
	Overuse  []CollocationError `json:"overuse"`
	Underuse []CollocationError `json:"underuse"`
}

func loadCollocations(path string) []CollocationError {
	var raw struct {
		collocationDatabase
		Nested *collocationDatabase `json:"collocation_error_database"`
	}
	if err := readJSON(path, &raw); err != nil {
		log.Printf("content: collocation bank unavailable (%v), using fixtures", err)
		return DefaultCollocations
	}
	db := raw.collocationDatabase
	if raw.Nested != nil {
		db = *raw.Nested
	}

	var errors []CollocationError
	for _, e := range db.Misuse {
		e.ErrorType = ErrorMisuse
		errors = append(errors, e)
	}
	for _, e := range db.Overuse {
		e.ErrorType = ErrorOveruse
		errors = append(errors, e)
	}
	for _, e := range db.Underuse {
		e.ErrorType = ErrorUnderuse
		errors = append(errors, e)
	}
	if len(errors) == 0 {
		return DefaultCollocations
	}
	return errors
}

// linkingExercise is one row of the linking-devices export.
type linkingExercise struct {
	ExerciseType  string   `json:"exercise_type"`
	Sentence      string   `json:"sentence"`
	LinkingDevice string   `json:"linking_device"`
	Alternatives  []string `json:"alternatives"`
	Category      string   `json:"category"`
}

var relationByCategory = map[string]string{
	"causal":          "result",
	"contrastive":     "contrast",
	"additive":        "addition",
	"exemplification": "example",
	"conclusion":      "conclusion",
	"sequence":        "sequence",
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

func loadLinking(path string) LinkingBank {
	bank := LinkingBank{
		Reorder:    DefaultReorder,
		Completion: DefaultCompletion,
	}

	var raw struct {
		Exercises []linkingExercise `json:"exercises"`
	}
	if err := readJSON(path, &raw); err != nil {
		log.Printf("content: linking bank unavailable (%v), using fixtures", err)
		bank.ConnectorMatch = DefaultConnectorMatch
		return bank
	}

	for _, item := range raw.Exercises {
		if item.ExerciseType != "replace" && item.ExerciseType != "identify" {
			continue
		}
		if len(bank.ConnectorMatch) >= 20 {
			break
		}
		bank.ConnectorMatch = append(bank.ConnectorMatch, buildConnectorMatch(item))
	}
	if len(bank.ConnectorMatch) == 0 {
		bank.ConnectorMatch = DefaultConnectorMatch
	}
	return bank
}

// buildConnectorMatch extracts the sentence pair around the linking
// device and assembles the option list, correct answer first.
func buildConnectorMatch(item linkingExercise) ConnectorMatchItem {
	var sentences []string
	for _, s := range sentenceSplit.Split(item.Sentence, -1) {
		if strings.TrimSpace(s) != "" {
			sentences = append(sentences, s)
		}
	}

	var sentence1, sentence2 string
	for i, s := range sentences {
		if strings.Contains(strings.ToLower(s), strings.ToLower(item.LinkingDevice)) {
			if i > 0 {
				sentence1 = strings.TrimSpace(sentences[i-1])
			} else {
				sentence1 = strings.TrimSpace(s)
			}
			if i+1 < len(sentences) {
				sentence2 = strings.TrimSpace(sentences[i+1])
			} else {
				sentence2 = strings.TrimSpace(s)
			}
			break
		}
	}
	if sentence1 == "" || sentence2 == "" {
		sentence1, sentence2 = "First sentence", "Second sentence"
		if len(sentences) > 0 {
			sentence1 = strings.TrimSpace(sentences[0])
		}
		if len(sentences) > 1 {
			sentence2 = strings.TrimSpace(sentences[1])
		}
	}
	sentence1 = truncate(sentence1, 100)
	sentence2 = truncate(sentence2, 100)

	relation := relationByCategory[item.Category]
	if relation == "" {
		relation = "connection"
	}

	options := []models.Option{{Text: item.LinkingDevice, IsCorrect: true}}
	for i, alt := range item.Alternatives {
		if i >= 3 {
			break
		}
		options = append(options, models.Option{Text: alt, IsCorrect: false})
	}

	return ConnectorMatchItem{
		Sentence1:     sentence1,
		Sentence2:     sentence2,
		Relation:      relation,
		CorrectAnswer: item.LinkingDevice,
		Options:       options,
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
