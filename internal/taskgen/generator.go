package taskgen

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"training-service/internal/content"
	"training-service/internal/models"
)

var (
	ErrInvalidTaskID = errors.New("invalid task id")
	ErrTaskNotFound  = errors.New("task not found")
)

// Generator builds the deterministic daily task set for a user. All
// randomness comes from a single seeded stream per (userID, date), so
// repeated generation is byte-identical: the daily-tasks endpoint and
// historical task re-derivation both rely on that.
type Generator struct {
	bank *content.Bank
}

func NewGenerator(bank *content.Bank) *Generator {
	return &Generator{bank: bank}
}

// GenerateDailyTasks derives the four tasks for userID on the given
// date (today when empty). Modules are processed 1 through 4 in fixed
// order sharing one RNG stream: one draw picks the module's task type,
// then the shaping function for that type continues the same stream.
func (g *Generator) GenerateDailyTasks(userID, date string) *models.DailyTaskSet {
	if date == "" {
		date = DateString(time.Now())
	}
	rng := SeededRandom(HashString(userID + date))

	tasks := make([]models.Task, 0, models.ModuleCount)
	for module := 1; module <= models.ModuleCount; module++ {
		taskTypes := models.ModuleTasks[module]
		taskType := taskTypes[int(math.Floor(rng()*float64(len(taskTypes))))]

		tasks = append(tasks, models.Task{
			ID:         fmt.Sprintf("%s-%d-%s", date, module, taskType),
			Module:     module,
			ModuleName: models.ModuleNames[module],
			TaskType:   taskType,
			TaskName:   models.TaskNames[taskType],
			Data:       g.moduleData(module, taskType, rng),
		})
	}

	return &models.DailyTaskSet{Date: date, Tasks: tasks}
}

// FindTask re-derives the task behind taskID by re-running generation
// for the date embedded in the id. Returns ErrInvalidTaskID when the id
// does not parse and ErrTaskNotFound when generation for that date does
// not produce it.
func (g *Generator) FindTask(userID, taskID string) (*models.Task, error) {
	date, _, _, err := ParseTaskID(taskID)
	if err != nil {
		return nil, err
	}

	set := g.GenerateDailyTasks(userID, date)
	for i := range set.Tasks {
		if set.Tasks[i].ID == taskID {
			return &set.Tasks[i], nil
		}
	}
	return nil, ErrTaskNotFound
}

// ParseTaskID splits a "YYYY-MM-DD-{module}-{taskType}" id. Task type
// names may not contain dashes, so everything past the module index is
// joined back together.
func ParseTaskID(taskID string) (date string, module int, taskType models.TaskType, err error) {
	parts := strings.Split(taskID, "-")
	if len(parts) < 5 {
		return "", 0, "", ErrInvalidTaskID
	}

	date = strings.Join(parts[:3], "-")
	if _, perr := time.Parse(DateLayout, date); perr != nil {
		return "", 0, "", ErrInvalidTaskID
	}

	module, aerr := strconv.Atoi(parts[3])
	if aerr != nil || module < 1 || module > models.ModuleCount {
		return "", 0, "", ErrInvalidTaskID
	}

	taskType = models.TaskType(strings.Join(parts[4:], "-"))
	return date, module, taskType, nil
}

func (g *Generator) moduleData(module int, taskType models.TaskType, rng func() float64) any {
	switch module {
	case 1:
		return g.shapeVocabulary(taskType, rng)
	case 2:
		return g.shapeCollocation(taskType, rng)
	case 3:
		return g.shapeHedging(taskType, rng)
	case 4:
		return g.shapeLinking(taskType, rng)
	}
	return nil
}

func take[T any](list []T, n int) []T {
	if len(list) > n {
		return list[:n]
	}
	return list
}
