package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"github.com/Van0SS/rag-challenge-2/internal/config"
	"github.com/Van0SS/rag-challenge-2/internal/llm"
	"github.com/Van0SS/rag-challenge-2/internal/logger"
	"github.com/Van0SS/rag-challenge-2/internal/metadata"
	"github.com/Van0SS/rag-challenge-2/internal/pdftext"
)

// Overrides are CLI flag values that take precedence over the environment.
// Empty fields leave the env value in place.
type Overrides struct {
	PDFDir        string
	PDFMetaPath   string
	QuestionsPath string
	OutputPath    string
	LogLevel      string
}

// Deps bundles the runtime dependencies of the answer batch.
type Deps struct {
	Config    config.Config
	Log       *slog.Logger
	Meta      *metadata.Store
	LLM       llm.Client
	Extractor pdftext.Extractor
}

// LookupDeps is the slimmer bundle for the findcompany tool, which never
// talks to the LLM.
type LookupDeps struct {
	Config config.Config
	Log    *slog.Logger
	Meta   *metadata.Store
}

// Build loads env, config, and all components for the answer batch.
func Build(o Overrides) (Deps, error) {
	cfg, log, err := loadConfig(o)
	if err != nil {
		return Deps{}, err
	}
	meta, err := metadata.Load(cfg.PDFMetaPath)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to load pdf metadata: %w", err)
	}
	if cfg.OpenAIKey == "" {
		return Deps{}, fmt.Errorf("OPENAI_API_KEY is required")
	}
	client, err := llm.NewOpenAIClient(cfg.OpenAIKey, openai.ChatModel(cfg.LLMModel))
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize OpenAI client: %w", err)
	}
	log.Info("using OpenAI client", "model", cfg.LLMModel)
	return Deps{
		Config:    cfg,
		Log:       log,
		Meta:      meta,
		LLM:       client,
		Extractor: pdftext.NewPDFExtractor(),
	}, nil
}

// BuildLookup loads env, config, and the metadata store only.
func BuildLookup(o Overrides) (LookupDeps, error) {
	cfg, log, err := loadConfig(o)
	if err != nil {
		return LookupDeps{}, err
	}
	meta, err := metadata.Load(cfg.PDFMetaPath)
	if err != nil {
		return LookupDeps{}, fmt.Errorf("failed to load pdf metadata: %w", err)
	}
	return LookupDeps{Config: cfg, Log: log, Meta: meta}, nil
}

func loadConfig(o Overrides) (config.Config, *slog.Logger, error) {
	// A .env file is optional; real env vars win either way.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return config.Config{}, nil, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg := config.Load()
	applyOverrides(&cfg, o)
	cfg.PDFDir = expandHome(cfg.PDFDir)
	return cfg, logger.New(cfg.LogLevel), nil
}

func applyOverrides(cfg *config.Config, o Overrides) {
	if o.PDFDir != "" {
		cfg.PDFDir = o.PDFDir
	}
	if o.PDFMetaPath != "" {
		cfg.PDFMetaPath = o.PDFMetaPath
	}
	if o.QuestionsPath != "" {
		cfg.QuestionsPath = o.QuestionsPath
	}
	if o.OutputPath != "" {
		cfg.OutputPath = o.OutputPath
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
