package content

import "training-service/internal/models"

// Word is one vocabulary entry (module 1).
type Word struct {
	Word         string   `json:"word"`
	Definition   string   `json:"definition"`
	Examples     []string `json:"examples"`
	PartOfSpeech string   `json:"part_of_speech"`
	WordFamily   []string `json:"word_family"`
}

// Collocation error categories as recorded in the learner-corpus
// database.
const (
	ErrorMisuse   = "misuse"
	ErrorOveruse  = "overuse"
	ErrorUnderuse = "underuse"
)

// CollocationError is one learner-corpus error entry (module 2).
// ErrorType is assigned by the loader from the database section the
// entry came from.
type CollocationError struct {
	Collocation          string   `json:"collocation"`
	CorrectForm          string   `json:"correct_form"`
	ErrorType            string   `json:"error_type"`
	GrammarIssue         string   `json:"grammar_issue"`
	Issue                string   `json:"issue"`
	Examples             []string `json:"examples"`
	LearnerFreq          float64  `json:"learner_freq"`
	CorpusFreqPerMillion float64  `json:"corpus_freq_per_million"`
}

// HedgingAddItem is a fill-the-hedge sentence exercise.
type HedgingAddItem struct {
	Sentence         string          `json:"sentence"`
	OriginalSentence string          `json:"originalSentence,omitempty"`
	CorrectAnswer    string          `json:"correctAnswer"`
	Options          []models.Option `json:"options"`
	Category         string          `json:"category"`
}

// RankItem is one hedge expression with its certainty strength.
type RankItem struct {
	Text     string `json:"text"`
	Strength int    `json:"strength"`
}

// IntensityItem asks the learner to order hedges by strength.
type IntensityItem struct {
	Items []RankItem `json:"items"`
}

// AppropriatenessItem asks whether a claim needs hedging.
type AppropriatenessItem struct {
	Sentence     string `json:"sentence"`
	NeedsHedging bool   `json:"needsHedging"`
	Explanation  string `json:"explanation"`
}

// HedgingBank groups the module 3 exercise pools by variant.
type HedgingBank struct {
	Add             []HedgingAddItem
	Intensity       []IntensityItem
	Appropriateness []AppropriatenessItem
}

// ConnectorMatchItem asks which linking device joins two sentences.
// Options are stored correct-first; the task generator shuffles them
// into presentation order.
type ConnectorMatchItem struct {
	Sentence1     string          `json:"sentence1"`
	Sentence2     string          `json:"sentence2"`
	Relation      string          `json:"relation"`
	CorrectAnswer string          `json:"correctAnswer"`
	Options       []models.Option `json:"options"`
}

// OrderedSentence is one sentence of a reorder puzzle with its
// ground-truth position.
type OrderedSentence struct {
	Text  string `json:"text"`
	Order int    `json:"order"`
}

// ReorderItem is a paragraph whose sentences must be put back in order.
type ReorderItem struct {
	Sentences []OrderedSentence `json:"sentences"`
}

// CompletionBlank is one numbered blank of a paragraph-completion
// exercise.
type CompletionBlank struct {
	ID      int             `json:"id"`
	Options []models.Option `json:"options"`
}

// CompletionItem is a paragraph with numbered connector blanks.
type CompletionItem struct {
	Paragraph string            `json:"paragraph"`
	Blanks    []CompletionBlank `json:"blanks"`
}

// LinkingBank groups the module 4 exercise pools by variant.
type LinkingBank struct {
	ConnectorMatch []ConnectorMatchItem
	Reorder        []ReorderItem
	Completion     []CompletionItem
}
