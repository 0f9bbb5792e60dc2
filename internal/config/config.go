// Package config reads toyvox settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/abhisek/toyvox/internal/questions"
)

type Config struct {
	DBPath   string `env:"TOYVOX_DB"`
	LogLevel string `env:"TOYVOX_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"TOYVOX_LOG_FILE"`

	// Optional YAML files replacing the embedded data.
	CatalogFile   string `env:"TOYVOX_CATALOG_FILE"`
	QuestionsFile string `env:"TOYVOX_QUESTIONS_FILE"`

	TriviaCategory   string `env:"TOYVOX_TRIVIA_CATEGORY"`
	TriviaDifficulty string `env:"TOYVOX_TRIVIA_DIFFICULTY"`
	TriviaQuestions  int    `env:"TOYVOX_TRIVIA_QUESTIONS" envDefault:"10"`
	QuestionSeconds  int    `env:"TOYVOX_QUESTION_SECONDS" envDefault:"20"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that env cannot type-check on its own.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("TOYVOX_LOG_LEVEL: %w", err)
	}
	if _, ok := questions.ParseCategory(c.TriviaCategory); !ok {
		return fmt.Errorf("TOYVOX_TRIVIA_CATEGORY: unknown category %q", c.TriviaCategory)
	}
	if _, ok := questions.ParseDifficulty(c.TriviaDifficulty); !ok {
		return fmt.Errorf("TOYVOX_TRIVIA_DIFFICULTY: unknown difficulty %q", c.TriviaDifficulty)
	}
	if c.TriviaQuestions <= 0 {
		return fmt.Errorf("TOYVOX_TRIVIA_QUESTIONS must be positive, got %d", c.TriviaQuestions)
	}
	if c.QuestionSeconds <= 0 {
		return fmt.Errorf("TOYVOX_QUESTION_SECONDS must be positive, got %d", c.QuestionSeconds)
	}
	return nil
}

// Difficulty returns the trivia difficulty filter; empty means any.
func (c *Config) Difficulty() questions.Difficulty {
	d, _ := questions.ParseDifficulty(c.TriviaDifficulty)
	return d
}

// Category returns the trivia category filter; empty means any.
func (c *Config) Category() questions.Category {
	cat, _ := questions.ParseCategory(c.TriviaCategory)
	return cat
}
