package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/Van0SS/rag-challenge-2/internal/answerer"
	"github.com/Van0SS/rag-challenge-2/internal/app"
	"github.com/Van0SS/rag-challenge-2/internal/questions"
	"github.com/Van0SS/rag-challenge-2/internal/results"
)

func main() {
	pdfDir := flag.String("pdf-dir", "", "directory containing PDF files (overrides PDF_DIR)")
	pdfMeta := flag.String("pdf-meta", "", "path to the PDF metadata JSON file (overrides PDF_META)")
	questionsPath := flag.String("questions", "", "path to the questions JSON file (overrides QUESTIONS)")
	output := flag.String("output", "", "path to save the answers to (overrides OUTPUT)")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")
	singleQuestion := flag.Int("single-question", -1, "process only the question at this zero-based index")
	flag.Parse()

	deps, err := app.Build(app.Overrides{
		PDFDir:        *pdfDir,
		PDFMetaPath:   *pdfMeta,
		QuestionsPath: *questionsPath,
		OutputPath:    *output,
		LogLevel:      *logLevel,
	})
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}

	qs, err := questions.Load(deps.Config.QuestionsPath)
	if err != nil {
		deps.Log.Error("failed to load questions", "err", err)
		os.Exit(1)
	}

	a := answerer.New(deps.Meta, deps.LLM, deps.Extractor, deps.Log, answerer.Options{
		PDFDir:        deps.Config.PDFDir,
		Delay:         time.Duration(deps.Config.CallDelayMS) * time.Millisecond,
		PageBatchSize: deps.Config.PageBatchSize,
	})

	ctx := context.Background()
	var set results.AnswerSet
	if *singleQuestion >= 0 {
		q, err := questions.Select(qs, *singleQuestion)
		if err != nil {
			deps.Log.Error("invalid question index", "err", err)
			os.Exit(1)
		}
		deps.Log.Info("processing single question", "index", *singleQuestion, "text", q.Text)
		set = results.AnswerSet{Answers: []results.Answer{a.ProcessQuestion(ctx, q)}}
	} else {
		set = a.ProcessAll(ctx, qs)
	}

	if err := results.Write(deps.Config.OutputPath, set); err != nil {
		deps.Log.Error("failed to write results", "err", err)
		os.Exit(1)
	}
	deps.Log.Info("results saved", "path", deps.Config.OutputPath, "answers", len(set.Answers))
}
