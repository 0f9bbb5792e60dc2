package catalog

import "github.com/abhisek/toyvox/internal/datafile"

// FileSchema describes a character catalog file.
var FileSchema = &datafile.Schema{
	Name: "character-catalog",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"characters"},
		"properties": map[string]any{
			"characters": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "object",
					"required": []any{"id", "name", "color"},
					"properties": map[string]any{
						"id": map[string]any{
							"type":    "string",
							"pattern": "^[a-z0-9_-]+$",
						},
						"name": map[string]any{
							"type":      "string",
							"minLength": 1,
						},
						"color": map[string]any{
							"type":    "string",
							"pattern": "^#[0-9A-Fa-f]{6}$",
						},
						"franchise": map[string]any{"type": "string"},
						"tagline":   map[string]any{"type": "string"},
					},
				},
			},
		},
	},
}
