package skills

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/talentsift/resume-parser/internal/nlp"
)

//go:embed data/taxonomy.json
var embeddedTaxonomy []byte

// Entry is one canonical taxonomy skill.
type Entry struct {
	Name     string
	Category string
}

// Taxonomy is the curated, immutable set of recognized skills. Canonical and
// alias lookups are keyed by normalized form. Built once, never mutated.
type Taxonomy struct {
	canonical map[string]Entry  // normalized canonical -> entry
	aliases   map[string]string // normalized alias -> canonical name
}

type taxonomyFile struct {
	Version    int                 `json:"version"`
	Categories map[string][]string `json:"categories"`
	Aliases    map[string]string   `json:"aliases"`
}

// buildTaxonomyJSONSchema constrains taxonomy files: a version, non-empty
// category lists, and a string-to-string alias map.
func buildTaxonomyJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"version": map[string]any{"type": "integer", "minimum": 1},
			"categories": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items":    map[string]any{"type": "string", "minLength": 1},
				},
			},
			"aliases": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "string", "minLength": 1},
			},
		},
		"required": []string{"version", "categories"},
	}
}

// ParseTaxonomyJSON validates raw taxonomy JSON against the schema and
// builds the lookup tables.
func ParseTaxonomyJSON(raw []byte) (*Taxonomy, error) {
	if err := nlp.ValidateJSONAgainstSchema(buildTaxonomyJSONSchema(), raw); err != nil {
		return nil, fmt.Errorf("taxonomy schema: %w", err)
	}
	var tf taxonomyFile
	if err := json.Unmarshal(raw, &tf); err != nil {
		return nil, fmt.Errorf("decode taxonomy: %w", err)
	}

	t := &Taxonomy{
		canonical: make(map[string]Entry),
		aliases:   make(map[string]string),
	}
	for category, names := range tf.Categories {
		for _, n := range names {
			t.canonical[NormalizeSkill(n)] = Entry{Name: n, Category: category}
		}
	}
	for alias, canonical := range tf.Aliases {
		key := NormalizeSkill(alias)
		if _, ok := t.canonical[NormalizeSkill(canonical)]; !ok {
			return nil, fmt.Errorf("alias %q points at unknown canonical %q", alias, canonical)
		}
		t.aliases[key] = canonical
	}
	return t, nil
}

// LoadTaxonomyXLSX reads a taxonomy workbook: a "skills" sheet with
// (category, name) rows and an optional "aliases" sheet with
// (alias, canonical) rows.
func LoadTaxonomyXLSX(path string) (*Taxonomy, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	tf := taxonomyFile{
		Version:    1,
		Categories: make(map[string][]string),
		Aliases:    make(map[string]string),
	}

	rows, err := f.GetRows("skills")
	if err != nil {
		return nil, fmt.Errorf("read skills sheet: %w", err)
	}
	for i, row := range rows {
		if i == 0 || len(row) < 2 { // header or short row
			continue
		}
		category := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		if category == "" || name == "" {
			continue
		}
		tf.Categories[category] = append(tf.Categories[category], name)
	}

	if aliasRows, err := f.GetRows("aliases"); err == nil {
		for i, row := range aliasRows {
			if i == 0 || len(row) < 2 {
				continue
			}
			alias := strings.TrimSpace(row[0])
			canonical := strings.TrimSpace(row[1])
			if alias == "" || canonical == "" {
				continue
			}
			tf.Aliases[alias] = canonical
		}
	}

	raw, err := json.Marshal(tf)
	if err != nil {
		return nil, err
	}
	return ParseTaxonomyJSON(raw)
}

// LoadTaxonomy loads a taxonomy from a .json or .xlsx file.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(path), ".xlsx"):
		return LoadTaxonomyXLSX(path)
	case strings.HasSuffix(strings.ToLower(path), ".json"):
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return ParseTaxonomyJSON(raw)
	default:
		return nil, fmt.Errorf("unsupported taxonomy file: %s", path)
	}
}

var (
	defaultOnce sync.Once
	defaultTax  *Taxonomy
	defaultErr  error
)

// DefaultTaxonomy returns the embedded taxonomy, built once per process.
func DefaultTaxonomy() *Taxonomy {
	defaultOnce.Do(func() {
		defaultTax, defaultErr = ParseTaxonomyJSON(embeddedTaxonomy)
		if defaultErr != nil {
			// The embedded file ships with the binary; failing to parse it
			// is a build defect, not a runtime condition.
			panic(fmt.Sprintf("embedded taxonomy invalid: %v", defaultErr))
		}
	})
	return defaultTax
}

// Canonical returns the taxonomy entry for a normalized key.
func (t *Taxonomy) Canonical(key string) (Entry, bool) {
	e, ok := t.canonical[key]
	return e, ok
}

// Alias resolves a normalized alias to its canonical entry.
func (t *Taxonomy) Alias(key string) (Entry, bool) {
	canonical, ok := t.aliases[key]
	if !ok {
		return Entry{}, false
	}
	return t.canonical[NormalizeSkill(canonical)], true
}

// CanonicalKeys returns every normalized canonical key, sorted. Callers
// that scan the keys rely on the stable order for reproducible output.
func (t *Taxonomy) CanonicalKeys() []string {
	keys := make([]string, 0, len(t.canonical))
	for k := range t.canonical {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the number of canonical entries.
func (t *Taxonomy) Len() int {
	return len(t.canonical)
}

// Entries returns every canonical entry sorted by name.
func (t *Taxonomy) Entries() []Entry {
	entries := make([]Entry, 0, len(t.canonical))
	for _, e := range t.canonical {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// AliasNames returns the alias-to-canonical map keyed by normalized alias.
// The map is a copy.
func (t *Taxonomy) AliasNames() map[string]string {
	out := make(map[string]string, len(t.aliases))
	for alias, canonical := range t.aliases {
		out[alias] = canonical
	}
	return out
}
