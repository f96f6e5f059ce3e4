package answerer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Van0SS/rag-challenge-2/internal/llm"
	"github.com/Van0SS/rag-challenge-2/internal/metadata"
	"github.com/Van0SS/rag-challenge-2/internal/pdftext"
	"github.com/Van0SS/rag-challenge-2/internal/questions"
	"github.com/Van0SS/rag-challenge-2/internal/results"
)

// Options tunes the answering pipeline.
type Options struct {
	// PDFDir holds the PDF files, named <sha1>.pdf.
	PDFDir string
	// Delay is the fixed pause after each question, to avoid provider
	// rate limits. Not a backoff mechanism.
	Delay time.Duration
	// PageBatchSize is how many pages go into a single LLM call.
	PageBatchSize int
}

const defaultPageBatchSize = 5

// Answerer runs questions against the PDF corpus, one at a time.
type Answerer struct {
	meta      *metadata.Store
	llm       llm.Client
	extractor pdftext.Extractor
	log       *slog.Logger
	opts      Options
}

// New builds an Answerer. A zero PageBatchSize falls back to the default.
func New(meta *metadata.Store, client llm.Client, extractor pdftext.Extractor, log *slog.Logger, opts Options) *Answerer {
	if opts.PageBatchSize <= 0 {
		opts.PageBatchSize = defaultPageBatchSize
	}
	return &Answerer{
		meta:      meta,
		llm:       client,
		extractor: extractor,
		log:       log,
		opts:      opts,
	}
}

// ProcessAll answers every question sequentially. Output order mirrors input
// order, and a failure on one question never aborts the batch.
func (a *Answerer) ProcessAll(ctx context.Context, qs []questions.Question) results.AnswerSet {
	log := a.log.With("run_id", uuid.New().String())
	answers := make([]results.Answer, 0, len(qs))
	for i, q := range qs {
		log.Info("processing question",
			"index", i+1,
			"total", len(qs),
			"text", truncate(q.Text, 50),
		)
		answers = append(answers, a.ProcessQuestion(ctx, q))
		a.pause(ctx)
	}
	return results.AnswerSet{Answers: answers}
}

// ProcessQuestion answers a single question. It never fails: every error
// path yields the sentinel "N/A" answer.
func (a *Answerer) ProcessQuestion(ctx context.Context, q questions.Question) results.Answer {
	company, err := a.extractCompany(ctx, q.Text)
	if err != nil || company == "" {
		a.log.Warn("could not extract company name", "question", truncate(q.Text, 50), "err", err)
		return results.Unresolved(q.Text)
	}

	desc, ok := a.meta.FindCompany(company)
	if !ok {
		a.log.Warn("no pdf metadata for company", "company", company)
		return results.Unresolved(q.Text)
	}

	if answer, ok := shortcutAnswer(q, desc); ok {
		a.log.Debug("answered from metadata flags", "company", desc.CompanyName)
		return answer
	}

	pdfPath := filepath.Join(a.opts.PDFDir, desc.SHA1+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		a.log.Warn("pdf file not found", "path", pdfPath)
		return results.Unresolved(q.Text)
	}

	pages, err := a.extractor.Pages(pdfPath)
	if err != nil || len(pages) == 0 {
		a.log.Warn("could not extract text from pdf", "path", pdfPath, "err", err)
		return results.Unresolved(q.Text)
	}

	value, pageIdx := a.scanPages(ctx, q, pages)
	if value == results.NotAvailable {
		return results.Unresolved(q.Text)
	}

	answer := results.Answer{
		QuestionText: q.Text,
		Value:        value,
		References:   []results.Reference{},
	}
	if pageIdx >= 0 {
		answer.References = append(answer.References, results.Reference{
			PDFSHA1:   desc.SHA1,
			PageIndex: pageIdx,
		})
	}
	return answer
}

// Metadata flags that settle a boolean "did ..." question outright: when the
// report carries no mention, the answer is False without opening the PDF.
var shortcuts = []struct {
	phrase  string
	flagged func(metadata.Descriptor) bool
}{
	{"share buyback", func(d metadata.Descriptor) bool { return d.HasShareBuybackPlans }},
	{"dividend policy", func(d metadata.Descriptor) bool { return d.HasDividendPolicyChange }},
	{"mergers", func(d metadata.Descriptor) bool { return d.MentionsMergers }},
}

func shortcutAnswer(q questions.Question, d metadata.Descriptor) (results.Answer, bool) {
	if q.Kind != "boolean" {
		return results.Answer{}, false
	}
	text := strings.ToLower(q.Text)
	if !strings.Contains(text, "did") {
		return results.Answer{}, false
	}
	for _, s := range shortcuts {
		if strings.Contains(text, s.phrase) && !s.flagged(d) {
			return results.Answer{
				QuestionText: q.Text,
				Value:        "False",
				References:   []results.Reference{{PDFSHA1: d.SHA1, PageIndex: 0}},
			}, true
		}
	}
	return results.Answer{}, false
}

// scanPages looks for the answer in the document, keyword-priority pages
// first, then the remaining pages in batches. Returns the value and the page
// index it was pinned to, or ("N/A", -1).
func (a *Answerer) scanPages(ctx context.Context, q questions.Question, pages []string) (string, int) {
	priority := priorityPages(q.Text, pages)
	inPriority := make(map[int]bool, len(priority))
	for _, idx := range priority {
		inPriority[idx] = true
	}

	batch := a.opts.PageBatchSize
	for start := 0; start < len(priority); start += batch {
		idxs := priority[start:min(start+batch, len(priority))]
		if value, page, ok := a.askBatch(ctx, q, pages, idxs); ok {
			return value, page
		}
	}

	for start := 0; start < len(pages); start += batch {
		end := min(start+batch, len(pages))
		if containsAny(inPriority, start, end) {
			continue
		}
		idxs := make([]int, 0, end-start)
		for i := start; i < end; i++ {
			idxs = append(idxs, i)
		}
		if value, page, ok := a.askBatch(ctx, q, pages, idxs); ok {
			return value, page
		}
	}

	return results.NotAvailable, -1
}

// askBatch asks the model about a group of pages, then pins a non-N/A answer
// to the single page within the batch that reproduces it.
func (a *Answerer) askBatch(ctx context.Context, q questions.Question, pages []string, idxs []int) (string, int, bool) {
	value, err := a.llm.Answer(ctx, q.Text, buildContext(pages, idxs), q.Kind)
	if err != nil {
		a.log.Warn("llm answer failed", "err", err)
		return "", -1, false
	}
	if value == "" || value == results.NotAvailable {
		return "", -1, false
	}
	for _, idx := range idxs {
		pageValue, err := a.llm.Answer(ctx, q.Text, pages[idx], q.Kind)
		if err == nil && pageValue == value {
			return value, idx, true
		}
	}
	return value, -1, true
}

// Keyword families used to pick likely pages before a full scan. A family
// applies only when its trigger word appears in the question.
var keywordFamilies = []struct {
	trigger  string
	keywords []string
}{
	{"financial", []string{"financial statements", "balance sheet", "income statement", "cash flow", "financial results"}},
	{"leadership", []string{"board of directors", "executive officers", "management", "leadership"}},
	{"risk", []string{"risk factors", "risks", "uncertainties"}},
}

func priorityPages(question string, pages []string) []int {
	questionLower := strings.ToLower(question)
	var idxs []int
	for i, page := range pages {
		pageLower := strings.ToLower(page)
		for _, family := range keywordFamilies {
			if !strings.Contains(questionLower, family.trigger) {
				continue
			}
			if containsKeyword(pageLower, family.keywords) {
				idxs = append(idxs, i)
				break
			}
		}
	}
	return idxs
}

func containsKeyword(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func containsAny(set map[int]bool, start, end int) bool {
	for i := start; i < end; i++ {
		if set[i] {
			return true
		}
	}
	return false
}

// buildContext assembles the prompt context for a group of pages, labelling
// each with its zero-based page index.
func buildContext(pages []string, idxs []int) string {
	var builder strings.Builder
	for i, idx := range idxs {
		if i > 0 {
			builder.WriteString("\n\n")
		}
		fmt.Fprintf(&builder, "Page %d: %s", idx, pages[idx])
	}
	return builder.String()
}

// pause waits for the configured inter-call delay, or until ctx is done.
func (a *Answerer) pause(ctx context.Context) {
	if a.opts.Delay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(a.opts.Delay):
	}
}

// truncate limits text to maxLen characters, cutting at a word boundary.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if idx := strings.LastIndex(s[:maxLen], " "); idx > 0 {
		return s[:idx] + "..."
	}
	return s[:maxLen] + "..."
}
