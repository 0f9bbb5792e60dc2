// Package catalog holds the read-only character roster that the wheel and
// the collection screen draw from.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/abhisek/toyvox/internal/datafile"
)

//go:embed characters.yaml
var defaultCatalog []byte

// ErrDuplicateID is returned when two characters share an identifier.
var ErrDuplicateID = errors.New("duplicate character id")

// Character is the static metadata of one character.
type Character struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Color     string `yaml:"color"`
	Franchise string `yaml:"franchise"`
	Tagline   string `yaml:"tagline"`
}

// Catalog is an ordered, immutable set of characters.
type Catalog struct {
	order []string
	byID  map[string]Character
}

type catalogFile struct {
	Characters []Character `yaml:"characters"`
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse("embedded characters.yaml", defaultCatalog)
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	var f catalogFile
	if err := datafile.DecodeFile(path, FileSchema, &f); err != nil {
		return nil, err
	}
	return New(f.Characters)
}

// Parse decodes a catalog from YAML bytes.
func Parse(source string, data []byte) (*Catalog, error) {
	var f catalogFile
	if err := datafile.Decode(source, data, FileSchema, &f); err != nil {
		return nil, err
	}
	return New(f.Characters)
}

// New builds a catalog from characters, preserving their order.
func New(chars []Character) (*Catalog, error) {
	c := &Catalog{
		order: make([]string, 0, len(chars)),
		byID:  make(map[string]Character, len(chars)),
	}
	for _, ch := range chars {
		if ch.ID == "" {
			return nil, errors.New("character with empty id")
		}
		if _, dup := c.byID[ch.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, ch.ID)
		}
		c.order = append(c.order, ch.ID)
		c.byID[ch.ID] = ch
	}
	return c, nil
}

// IDs returns all identifiers in catalog order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Exists reports whether id is in the catalog.
func (c *Catalog) Exists(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Get returns the character with the given id.
func (c *Catalog) Get(id string) (Character, bool) {
	ch, ok := c.byID[id]
	return ch, ok
}

// All returns every character in catalog order.
func (c *Catalog) All() []Character {
	out := make([]Character, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Len returns the number of characters.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Name returns the display name for id, or id itself when unknown.
func (c *Catalog) Name(id string) string {
	if ch, ok := c.byID[id]; ok {
		return ch.Name
	}
	return id
}
