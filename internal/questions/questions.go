package questions

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Question is one input question. Kind describes the expected answer type
// ("number", "boolean", "name", ...) and is threaded into the LLM prompt.
type Question struct {
	Text string `json:"text" validate:"required"`
	Kind string `json:"kind"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and validates the questions file.
func Load(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions file: %w", err)
	}
	var qs []Question
	if err := json.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("parse questions file %s: %w", path, err)
	}
	for i, q := range qs {
		if err := validate.Struct(&q); err != nil {
			return nil, fmt.Errorf("invalid question %d: %w", i, err)
		}
	}
	return qs, nil
}

// Select picks a single question by zero-based index for ad-hoc testing.
func Select(qs []Question, index int) (Question, error) {
	if index < 0 || index >= len(qs) {
		return Question{}, fmt.Errorf("question index %d out of range [0, %d)", index, len(qs))
	}
	return qs[index], nil
}
