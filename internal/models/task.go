package models

// TaskType is the specific exercise variant within a module.
type TaskType string

const (
	// Module 1 - vocabulary
	TaskFlashcard       TaskType = "flashcard"
	TaskSpelling        TaskType = "spelling"
	TaskMeaningMatch    TaskType = "meaning_match"
	TaskWordFamily      TaskType = "word_family"
	TaskContextualUsage TaskType = "contextual_usage"

	// Module 2 - collocation
	TaskErrorDetection  TaskType = "error_detection"
	TaskErrorCorrection TaskType = "error_correction"
	TaskContrastive     TaskType = "contrastive"
	TaskGapFill         TaskType = "gap_fill"

	// Module 3 - hedging
	TaskAddHedging      TaskType = "add_hedging"
	TaskStrengthRanking TaskType = "strength_ranking"
	TaskAppropriateness TaskType = "appropriateness"

	// Module 4 - linking devices
	TaskLinkingMatch     TaskType = "linking_match"
	TaskParagraphReorder TaskType = "paragraph_reorder"
	TaskCompletion       TaskType = "completion"
)

// ModuleCount is the number of content modules. Each day has exactly one
// task per module.
const ModuleCount = 4

// ModuleTasks lists the task types available per module. The slice order
// is part of the generation contract: the daily draw indexes into it.
var ModuleTasks = map[int][]TaskType{
	1: {TaskFlashcard, TaskSpelling, TaskMeaningMatch, TaskWordFamily, TaskContextualUsage},
	2: {TaskErrorDetection, TaskErrorCorrection, TaskContrastive, TaskGapFill},
	3: {TaskAddHedging, TaskStrengthRanking, TaskAppropriateness},
	4: {TaskLinkingMatch, TaskParagraphReorder, TaskCompletion},
}

var ModuleNames = map[int]string{
	1: "Vocabulary Training",
	2: "Collocation Training",
	3: "Hedging Practice",
	4: "Linking Devices",
}

var TaskNames = map[TaskType]string{
	TaskFlashcard:        "Flashcard Review",
	TaskSpelling:         "Spelling Challenge",
	TaskMeaningMatch:     "Definition Match",
	TaskWordFamily:       "Word Family Explorer",
	TaskContextualUsage:  "Contextual Usage",
	TaskErrorDetection:   "Error Detection",
	TaskErrorCorrection:  "Error Correction",
	TaskContrastive:      "Contrastive Learning",
	TaskGapFill:          "Gap Fill",
	TaskAddHedging:       "Add Hedging",
	TaskStrengthRanking:  "Strength Ranking",
	TaskAppropriateness:  "Appropriateness Judgment",
	TaskLinkingMatch:     "Linking Match",
	TaskParagraphReorder: "Paragraph Reorder",
	TaskCompletion:       "Paragraph Completion",
}

// Option is a single answer choice presented by a game widget.
type Option struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// Task is one day's practice activity within a module. ID has the format
// "YYYY-MM-DD-{module}-{taskType}" and doubles as the completion
// idempotency key and the lookup key for historical re-derivation.
type Task struct {
	ID         string   `json:"id"`
	Module     int      `json:"module"`
	ModuleName string   `json:"moduleName"`
	TaskType   TaskType `json:"taskType"`
	TaskName   string   `json:"taskName"`
	Data       any      `json:"data"`
	Completed  bool     `json:"completed"`
}

// DailyTaskSet is the derived set of four tasks for one user and date.
// It is never persisted; it is a pure function of (userID, date).
type DailyTaskSet struct {
	Date  string `json:"date"`
	Tasks []Task `json:"tasks"`
}
