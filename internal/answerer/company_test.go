package answerer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Van0SS/rag-challenge-2/internal/llm"
)

func TestMatchCompany(t *testing.T) {
	tests := []struct {
		name     string
		question string
		expected string
	}{
		{
			"for pattern",
			"For Acme Corp, what was the total revenue?",
			"Acme Corp",
		},
		{
			"did announce pattern",
			"Did Liberty Broadband Corporation announce a share buyback plan in the annual report?",
			"Liberty Broadband Corporation",
		},
		{
			"by according pattern",
			"What was reported by Globex Industries according to the filing?",
			"Globex Industries",
		},
		{
			"at in pattern",
			"How many employees worked at Initech in 2023?",
			"Initech",
		},
		{
			"possessive pattern",
			"What is the Acme Corp's operating margin?",
			"Acme Corp",
		},
		{
			"no pattern",
			"How much revenue was reported last year?",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchCompany(tt.question); got != tt.expected {
				t.Errorf("matchCompany(%q) = %q, want %q", tt.question, got, tt.expected)
			}
		})
	}
}

func TestExtractCompanyLLMFallback(t *testing.T) {
	question := "How much revenue was reported last year?"

	mockLLM := new(llm.MockClient)
	mockLLM.On("ExtractCompany", context.Background(), question).
		Return("Acme Corp", nil).Once()

	a := New(nil, mockLLM, nil, slog.New(slog.NewTextHandler(io.Discard, nil)), Options{})
	got, err := a.extractCompany(context.Background(), question)
	if err != nil {
		t.Fatalf("extractCompany: %v", err)
	}
	if got != "Acme Corp" {
		t.Errorf("expected 'Acme Corp', got %q", got)
	}
	mockLLM.AssertExpectations(t)
}

func TestExtractCompanyPatternSkipsLLM(t *testing.T) {
	mockLLM := new(llm.MockClient) // no expectations: LLM must not be called

	a := New(nil, mockLLM, nil, slog.New(slog.NewTextHandler(io.Discard, nil)), Options{})
	got, err := a.extractCompany(context.Background(), "For Acme Corp, what was the net income?")
	if err != nil {
		t.Fatalf("extractCompany: %v", err)
	}
	if got != "Acme Corp" {
		t.Errorf("expected 'Acme Corp', got %q", got)
	}
	mockLLM.AssertExpectations(t)
}

func TestExtractCompanyLLMError(t *testing.T) {
	question := "Something with no recognizable phrasing"

	mockLLM := new(llm.MockClient)
	mockLLM.On("ExtractCompany", context.Background(), question).
		Return("", errors.New("rate limited")).Once()

	a := New(nil, mockLLM, nil, slog.New(slog.NewTextHandler(io.Discard, nil)), Options{})
	if _, err := a.extractCompany(context.Background(), question); err == nil {
		t.Fatal("expected error from LLM fallback")
	}
	mockLLM.AssertExpectations(t)
}
