package llm

import "context"

// Client is the contract for the remote language model.
type Client interface {
	// ExtractCompany pulls the company name out of a question. It returns an
	// empty string when the model cannot identify one.
	ExtractCompany(ctx context.Context, question string) (string, error)

	// Answer answers a question using only the supplied context text. Kind
	// hints at the expected answer type ("number", "boolean", "name", ...).
	// The model replies "N/A" when the context does not contain the value.
	Answer(ctx context.Context, question, contextText, kind string) (string, error)
}
