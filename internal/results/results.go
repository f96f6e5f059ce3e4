package results

import (
	"encoding/json"
	"fmt"
	"os"
)

// Reference points at a specific page of a specific PDF.
type Reference struct {
	PDFSHA1   string `json:"pdf_sha1"`
	PageIndex int    `json:"page_index"`
}

// Answer is the outcome for one question. Value is "N/A" when unresolved,
// in which case References is empty.
type Answer struct {
	QuestionText string      `json:"question_text"`
	Value        string      `json:"value"`
	References   []Reference `json:"references"`
}

// AnswerSet is the full program output, in input question order.
type AnswerSet struct {
	Answers []Answer `json:"answers"`
}

// NotAvailable is the sentinel value meaning no answer was found.
const NotAvailable = "N/A"

// Unresolved builds the sentinel answer for a question.
func Unresolved(questionText string) Answer {
	return Answer{
		QuestionText: questionText,
		Value:        NotAvailable,
		References:   []Reference{},
	}
}

// MarshalJSON keeps References an empty array rather than null in output.
func (a Answer) MarshalJSON() ([]byte, error) {
	type alias Answer
	out := alias(a)
	if out.References == nil {
		out.References = []Reference{}
	}
	return json.Marshal(out)
}

// Write serializes the answer set as pretty-printed JSON, overwriting path.
func Write(path string, set AnswerSet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("write output file %s: %w", path, err)
	}
	return nil
}
