package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"tushare/pkg/logging"
)

//go:embed definitions.json
var embeddedDefinitions []byte

// Parameter describes one input accepted by an operation.
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

// OutputField describes one column of an operation's reply.
type OutputField struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DefaultShow bool   `json:"defaultShow"`
	Description string `json:"description"`
}

// Definition is the catalog entry for a single operation.
type Definition struct {
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Category       string        `json:"category"`
	DocID          int           `json:"docId"`
	Parameters     []Parameter   `json:"parameters"`
	OutputFields   []OutputField `json:"outputFields"`
	RequiresPoints *int          `json:"requiresPoints,omitempty"`
}

// RequiredParameters returns the parameters marked as required, in
// declaration order.
func (d *Definition) RequiredParameters() []Parameter {
	var out []Parameter
	for _, p := range d.Parameters {
		if p.Required {
			out = append(out, p)
		}
	}
	return out
}

// Catalog is an immutable, name-indexed set of definitions.
type Catalog struct {
	byName map[string]*Definition
	names  []string
}

// Parse builds a catalog from a JSON object keyed by operation name.
// Entries with names outside [A-Za-z0-9_-] and entries that declare neither
// parameters nor output fields are documentation pages, not operations, and
// are skipped.
func Parse(data []byte) (*Catalog, error) {
	var raw map[string]*Definition
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse operation catalog: %w", err)
	}

	c := &Catalog{byName: make(map[string]*Definition, len(raw))}
	skipped := 0
	for key, def := range raw {
		if def == nil {
			skipped++
			continue
		}
		if def.Name == "" {
			def.Name = key
		}
		if !isOperationName(def.Name) || (len(def.Parameters) == 0 && len(def.OutputFields) == 0) {
			skipped++
			continue
		}
		c.byName[def.Name] = def
		c.names = append(c.names, def.Name)
	}
	sort.Strings(c.names)

	logging.Debug("Catalog", "Loaded %d operations (%d entries skipped)", len(c.names), skipped)
	return c, nil
}

// NewLoader returns a function that parses data on its first call and
// returns the same result on every later call.
func NewLoader(data []byte) func() (*Catalog, error) {
	return sync.OnceValues(func() (*Catalog, error) {
		return Parse(data)
	})
}

// Default is the lazily loaded catalog of embedded definitions.
var Default = NewLoader(embeddedDefinitions)

func isOperationName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}

// Len reports the number of operations in the catalog.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Find returns the definition with the exact given name.
func (c *Catalog) Find(name string) (*Definition, bool) {
	def, ok := c.byName[name]
	return def, ok
}

// Search returns the definitions whose name or description contains keyword,
// compared case-insensitively. Results are sorted by name.
func (c *Catalog) Search(keyword string) []*Definition {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return nil
	}

	var out []*Definition
	for _, name := range c.names {
		def := c.byName[name]
		if strings.Contains(strings.ToLower(def.Name), needle) ||
			strings.Contains(strings.ToLower(def.Description), needle) {
			out = append(out, def)
		}
	}
	return out
}

// ByCategory returns the definitions of one category sorted by name.
// Category names are compared case-insensitively.
func (c *Catalog) ByCategory(category string) []*Definition {
	var out []*Definition
	for _, name := range c.names {
		def := c.byName[name]
		if strings.EqualFold(def.Category, category) {
			out = append(out, def)
		}
	}
	return out
}

// CategoryCounts returns the number of operations per category.
func (c *Catalog) CategoryCounts() map[string]int {
	counts := make(map[string]int)
	for _, def := range c.byName {
		counts[def.Category]++
	}
	return counts
}

// Categories returns the categories present in the catalog. Known categories
// come first in display order, followed by any others sorted by name.
func (c *Catalog) Categories() []string {
	counts := c.CategoryCounts()

	out := make([]string, 0, len(counts))
	seen := make(map[string]bool, len(counts))
	for _, cat := range displayOrder {
		if counts[cat] > 0 {
			out = append(out, cat)
			seen[cat] = true
		}
	}

	var rest []string
	for cat := range counts {
		if !seen[cat] {
			rest = append(rest, cat)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}
