package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/toyvox/internal/questions"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"TOYVOX_DB", "TOYVOX_LOG_LEVEL", "TOYVOX_LOG_FILE", "TOYVOX_CATALOG_FILE",
		"TOYVOX_QUESTIONS_FILE", "TOYVOX_TRIVIA_CATEGORY", "TOYVOX_TRIVIA_DIFFICULTY", "TOYVOX_TRIVIA_QUESTIONS",
		"TOYVOX_QUESTION_SECONDS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10, cfg.TriviaQuestions)
	assert.Equal(t, 20, cfg.QuestionSeconds)
	assert.Empty(t, cfg.DBPath)
	assert.Equal(t, questions.Difficulty(""), cfg.Difficulty())
	assert.Equal(t, questions.Category(""), cfg.Category())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOYVOX_DB", "/tmp/x.db")
	t.Setenv("TOYVOX_LOG_LEVEL", "debug")
	t.Setenv("TOYVOX_TRIVIA_DIFFICULTY", "hard")
	t.Setenv("TOYVOX_TRIVIA_QUESTIONS", "5")
	t.Setenv("TOYVOX_TRIVIA_CATEGORY", "science")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, questions.DifficultyHard, cfg.Difficulty())
	assert.Equal(t, 5, cfg.TriviaQuestions)
	assert.Equal(t, questions.CategoryScience, cfg.Category())
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"TOYVOX_LOG_LEVEL", "loud"},
		{"TOYVOX_TRIVIA_CATEGORY", "sports"},
		{"TOYVOX_TRIVIA_DIFFICULTY", "impossible"},
		{"TOYVOX_TRIVIA_QUESTIONS", "0"},
		{"TOYVOX_TRIVIA_QUESTIONS", "many"},
		{"TOYVOX_QUESTION_SECONDS", "-4"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
