// Package questions is the static trivia question bank.
package questions

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/abhisek/toyvox/internal/datafile"
	"github.com/abhisek/toyvox/internal/rng"
)

//go:embed questions.yaml
var defaultBank []byte

var (
	// ErrDuplicateID is returned when two questions share an identifier.
	ErrDuplicateID = errors.New("duplicate question id")

	// ErrInvalidQuestion is returned for structurally invalid questions.
	ErrInvalidQuestion = errors.New("invalid question")
)

// Bank is an immutable list of questions.
type Bank struct {
	questions []Question
}

type bankFile struct {
	Questions []struct {
		ID         string   `yaml:"id"`
		Prompt     string   `yaml:"prompt"`
		Options    []string `yaml:"options"`
		Correct    int      `yaml:"correct"`
		Category   string   `yaml:"category"`
		Difficulty string   `yaml:"difficulty"`
		Character  string   `yaml:"character"`
	} `yaml:"questions"`
}

// Default returns the bank embedded in the binary.
func Default() (*Bank, error) {
	return Parse("embedded questions.yaml", defaultBank)
}

// Load reads a bank from a YAML file.
func Load(path string) (*Bank, error) {
	var f bankFile
	if err := datafile.DecodeFile(path, FileSchema, &f); err != nil {
		return nil, err
	}
	return fromFile(f)
}

// Parse decodes a bank from YAML bytes.
func Parse(source string, data []byte) (*Bank, error) {
	var f bankFile
	if err := datafile.Decode(source, data, FileSchema, &f); err != nil {
		return nil, err
	}
	return fromFile(f)
}

func fromFile(f bankFile) (*Bank, error) {
	qs := make([]Question, 0, len(f.Questions))
	for _, raw := range f.Questions {
		if len(raw.Options) != OptionCount {
			return nil, fmt.Errorf("%w: %s has %d options", ErrInvalidQuestion, raw.ID, len(raw.Options))
		}
		q := Question{
			ID:          raw.ID,
			Prompt:      raw.Prompt,
			Correct:     raw.Correct,
			Category:    Category(raw.Category),
			Difficulty:  Difficulty(raw.Difficulty),
			CharacterID: raw.Character,
		}
		copy(q.Options[:], raw.Options)
		qs = append(qs, q)
	}
	return New(qs)
}

// New builds a bank, validating every question.
func New(qs []Question) (*Bank, error) {
	seen := make(map[string]bool, len(qs))
	for _, q := range qs {
		if q.ID == "" {
			return nil, fmt.Errorf("%w: empty id", ErrInvalidQuestion)
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, q.ID)
		}
		seen[q.ID] = true
		if q.Correct < 0 || q.Correct >= OptionCount {
			return nil, fmt.Errorf("%w: %s correct index %d out of range", ErrInvalidQuestion, q.ID, q.Correct)
		}
	}
	out := make([]Question, len(qs))
	copy(out, qs)
	return &Bank{questions: out}, nil
}

// All returns every question in bank order.
func (b *Bank) All() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Sample draws n distinct questions at random. It returns fewer than n when
// the bank is smaller.
func (b *Bank) Sample(n int, src rng.Source) []Question {
	return rng.Sample(b.questions, n, src)
}

// Filter narrows a bank. Zero-valued fields match everything.
type Filter struct {
	Category   Category
	Difficulty Difficulty
}

// Filter returns the sub-bank matching f.
func (b *Bank) Filter(f Filter) *Bank {
	var out []Question
	for _, q := range b.questions {
		if f.Category != "" && q.Category != f.Category {
			continue
		}
		if f.Difficulty != "" && q.Difficulty != f.Difficulty {
			continue
		}
		out = append(out, q)
	}
	return &Bank{questions: out}
}

// ForCharacter returns the questions tagged with characterID.
func (b *Bank) ForCharacter(characterID string) []Question {
	var out []Question
	for _, q := range b.questions {
		if q.CharacterID == characterID {
			out = append(out, q)
		}
	}
	return out
}
