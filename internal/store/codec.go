package store

import (
	_ "embed"
	"encoding/json"
	"strings"

	"task-manager/internal/domain"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var rawBlobSchema string

// blobSchema validates a slot blob before it is trusted enough to unmarshal.
var blobSchema = mustCompileBlobSchema()

func mustCompileBlobSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource("tasks.schema.json", strings.NewReader(rawBlobSchema)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("tasks.schema.json")
}

// taskPair is one element of the persisted collection: a task keyed by its
// id. The pair order in the blob is the collection's insertion order.
type taskPair struct {
	ID   string      `json:"id"`
	Task domain.Task `json:"task"`
}

// encodeTaskPairs serializes tasks, in the given order, to the slot blob.
func encodeTaskPairs(tasks []domain.Task) ([]byte, error) {
	pairs := make([]taskPair, 0, len(tasks))
	for _, task := range tasks {
		pairs = append(pairs, taskPair{ID: task.ID, Task: task})
	}
	return json.Marshal(pairs)
}

// decodeTaskPairs parses a slot blob back into tasks in stored order. The
// blob is schema-validated first so a malformed or hand-edited slot fails
// here instead of surfacing half-applied state.
func decodeTaskPairs(blob []byte) ([]domain.Task, error) {
	if err := validateBlob(blob); err != nil {
		return nil, err
	}

	var pairs []taskPair
	if err := json.Unmarshal(blob, &pairs); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(pairs))
	seen := make(map[string]int, len(pairs))
	for _, pair := range pairs {
		task := pair.Task
		task.ID = pair.ID
		// A repeated key keeps its first position, matching map semantics.
		if at, ok := seen[pair.ID]; ok {
			tasks[at] = task
			continue
		}
		seen[pair.ID] = len(tasks)
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func validateBlob(blob []byte) error {
	var instance interface{}
	if err := json.Unmarshal(blob, &instance); err != nil {
		return err
	}
	return blobSchema.Validate(instance)
}
