package answerer

import (
	"context"
	"regexp"
	"strings"
)

// Question phrasings that carry the company name in a predictable spot.
// Checked in order; the LLM is the fallback when none apply.
var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`For\s+([^,\.]+?),`),             // "For Company, what..."
	regexp.MustCompile(`Did\s+([^,\.]+?)\s+announce`),   // "Did Company announce..."
	regexp.MustCompile(`by\s+([^,\.]+?)\s+according`),   // "by Company according..."
	regexp.MustCompile(`at\s+([^,\.]+?)\s+in`),          // "at Company in..."
	regexp.MustCompile(`What\s+is\s+the\s+([^,\.]+?)'s`), // "What is the Company's..."
}

// extractCompany finds the company name a question is about, trying cheap
// pattern matches before asking the model.
func (a *Answerer) extractCompany(ctx context.Context, question string) (string, error) {
	if name := matchCompany(question); name != "" {
		return name, nil
	}
	return a.llm.ExtractCompany(ctx, question)
}

func matchCompany(question string) string {
	for _, p := range companyPatterns {
		if m := p.FindStringSubmatch(question); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
