package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
)

// Config holds runtime configuration for the question answering tools.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Input/output paths. CLI flags may override these.
	PDFDir        string `env:"PDF_DIR" envDefault:"~/Downloads/pdfs"`
	PDFMetaPath   string `env:"PDF_META" envDefault:"pdf-meta.json"`
	QuestionsPath string `env:"QUESTIONS" envDefault:"questions.json"`
	OutputPath    string `env:"OUTPUT" envDefault:"answers.json"`

	// LLM
	OpenAIKey string `env:"OPENAI_API_KEY"`
	LLMModel  string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`

	// CallDelayMS is the fixed pause after each question to stay under the
	// provider's rate limits. Tunable rather than adaptive.
	CallDelayMS int `env:"CALL_DELAY_MS" envDefault:"500"`

	// PageBatchSize is how many PDF pages go into a single LLM call.
	PageBatchSize int `env:"PAGE_BATCH_SIZE" envDefault:"5"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
