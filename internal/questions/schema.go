package questions

import "github.com/abhisek/toyvox/internal/datafile"

// FileSchema describes a question bank file.
var FileSchema = &datafile.Schema{
	Name: "question-bank",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"questions"},
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "object",
					"required": []any{"id", "prompt", "options", "correct", "category", "difficulty"},
					"properties": map[string]any{
						"id":     map[string]any{"type": "string", "minLength": 1},
						"prompt": map[string]any{"type": "string", "minLength": 1},
						"options": map[string]any{
							"type":     "array",
							"minItems": OptionCount,
							"maxItems": OptionCount,
							"items":    map[string]any{"type": "string", "minLength": 1},
						},
						"correct": map[string]any{
							"type":    "integer",
							"minimum": 0,
							"maximum": OptionCount - 1,
						},
						"category": map[string]any{
							"enum": []any{"characters", "movies", "general", "science", "nature"},
						},
						"difficulty": map[string]any{
							"enum": []any{"easy", "medium", "hard"},
						},
						"character": map[string]any{"type": "string"},
					},
				},
			},
		},
	},
}
