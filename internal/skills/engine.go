// Package skills canonicalizes raw resume phrases against a curated
// taxonomy with alias and fuzzy matching. The rule-based path is complete on
// its own; embedding-based re-mapping is an additive enhancement used only
// when an embedder is loaded.
package skills

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/agext/levenshtein"

	"github.com/talentsift/resume-parser/internal/nlp"
)

// SourceTier orders candidate origins by trustworthiness.
type SourceTier int

const (
	TierDocument   SourceTier = iota // whole-document scan
	TierExperience                   // experience-section content
	TierSection                      // explicit skills section
)

func (t SourceTier) String() string {
	switch t {
	case TierSection:
		return "skills-section"
	case TierExperience:
		return "experience"
	default:
		return "document"
	}
}

// tierBase is the base score per source tier on the 0-100 scale.
var tierBase = map[SourceTier]int{
	TierSection:    100,
	TierExperience: 80,
	TierDocument:   60,
}

// AcceptanceThreshold is the minimum score a candidate needs to survive.
const AcceptanceThreshold = 70

const embeddingSimilarityThreshold = 0.78

// Skill is one accepted, canonicalized skill.
type Skill struct {
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Source   string  `json:"source"`
	Score    int     `json:"score"`
}

// Source is one text body to mine for candidates.
type Source struct {
	Text string
	Tier SourceTier
}

// Engine matches candidate phrases against the taxonomy.
type Engine struct {
	tax    *Taxonomy
	logger *slog.Logger

	embedMu   sync.Mutex
	embedKeys []string
	embedVecs [][]float32
}

func NewEngine(tax *Taxonomy, logger *slog.Logger) *Engine {
	if tax == nil {
		tax = DefaultTaxonomy()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{tax: tax, logger: logger}
}

var reSkillSplit = regexp.MustCompile(`[,;|\x{2022}\n]| - `)

// Extract mines every source, canonicalizes candidates, applies the reject
// filter and threshold, and deduplicates the survivors.
func (e *Engine) Extract(ctx context.Context, sources []Source) []Skill {
	accepted := make(map[string]Skill) // normalized key -> skill
	fromTaxonomy := make(map[string]bool)

	var nearMisses []string

	for _, src := range sources {
		for _, phrase := range e.candidatePhrases(src) {
			key := NormalizeSkill(phrase)
			if RejectSkill(key) {
				continue
			}
			skill, matched, direct := e.match(key, src.Tier)
			if !matched {
				if src.Tier == TierSection {
					nearMisses = append(nearMisses, key)
				}
				continue
			}
			e.accept(accepted, fromTaxonomy, skill, direct)
		}
	}

	// Optional embedding pass over unmatched skills-section tokens.
	if emb := nlp.Embeddings(); emb != nil && len(nearMisses) > 0 {
		for _, skill := range e.remapNearMisses(ctx, emb, nearMisses) {
			e.accept(accepted, fromTaxonomy, skill, true)
		}
	}

	return dedupe(accepted, fromTaxonomy)
}

// candidatePhrases splits delimited lists and, for the lower tiers, walks
// word n-grams so free text still surfaces known taxonomy terms.
func (e *Engine) candidatePhrases(src Source) []string {
	var out []string
	for _, p := range reSkillSplit.Split(src.Text, -1) {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if src.Tier != TierSection {
		out = append(out, e.knownNGrams(src.Text)...)
	}
	return out
}

// knownNGrams scans 1-3 word windows for direct taxonomy or alias hits.
func (e *Engine) knownNGrams(text string) []string {
	words := strings.Fields(text)
	var out []string
	for n := 3; n >= 1; n-- {
		for i := 0; i+n <= len(words); i++ {
			phrase := strings.Join(words[i:i+n], " ")
			key := NormalizeSkill(phrase)
			if key == "" {
				continue
			}
			if _, ok := e.tax.Canonical(key); ok {
				out = append(out, phrase)
				continue
			}
			if _, ok := e.tax.Alias(key); ok {
				out = append(out, phrase)
			}
		}
	}
	return out
}

// match resolves a key through the alias table, the taxonomy, a
// small-edit-distance pass, and finally the compound-phrase rule. The
// "direct" flag marks taxonomy-backed results, which the substring dedup
// rule exempts.
func (e *Engine) match(key string, tier SourceTier) (Skill, bool, bool) {
	base := tierBase[tier]

	if entry, ok := e.tax.Alias(key); ok {
		return e.scored(entry, tier, base+25), true, true
	}
	if entry, ok := e.tax.Canonical(key); ok {
		return e.scored(entry, tier, base+25), true, true
	}

	// Single-edit typos land on the nearest taxonomy key.
	if len(key) >= 4 {
		for _, ck := range e.tax.CanonicalKeys() {
			if abs(len(ck)-len(key)) > 1 {
				continue
			}
			if levenshtein.Distance(key, ck, nil) == 1 {
				entry, _ := e.tax.Canonical(ck)
				return e.scored(entry, tier, base+10), true, true
			}
		}
	}

	if display, ok := CompoundSkill(key); ok {
		return Skill{Name: display, Source: tier.String(), Score: clamp(base + 10)}, true, false
	}
	return Skill{}, false, false
}

func (e *Engine) scored(entry Entry, tier SourceTier, score int) Skill {
	return Skill{Name: entry.Name, Category: entry.Category, Source: tier.String(), Score: clamp(score)}
}

func (e *Engine) accept(accepted map[string]Skill, fromTaxonomy map[string]bool, s Skill, direct bool) {
	if s.Score < AcceptanceThreshold {
		return
	}
	key := NormalizeSkill(s.Name)
	if prev, ok := accepted[key]; ok && prev.Score >= s.Score {
		return
	}
	accepted[key] = s
	if direct {
		fromTaxonomy[key] = true
	}
}

// remapNearMisses embeds unmatched tokens and maps each onto the closest
// canonical entry above the similarity threshold.
func (e *Engine) remapNearMisses(ctx context.Context, emb nlp.Embedder, tokens []string) []Skill {
	if err := e.ensureCanonicalEmbeddings(ctx, emb); err != nil {
		e.logger.Warn("skills.embed.canonical_failed", "error", err)
		return nil
	}
	vecs, err := emb.Embed(ctx, tokens)
	if err != nil {
		e.logger.Warn("skills.embed.tokens_failed", "error", err)
		return nil
	}

	var out []Skill
	for i, tok := range tokens {
		bestIdx, bestSim := -1, 0.0
		for j, cv := range e.embedVecs {
			if sim := nlp.CosineSimilarity(vecs[i], cv); sim > bestSim {
				bestIdx, bestSim = j, sim
			}
		}
		if bestIdx < 0 || bestSim < embeddingSimilarityThreshold {
			continue
		}
		entry, _ := e.tax.Canonical(e.embedKeys[bestIdx])
		e.logger.Debug("skills.embed.remap", "token", tok, "canonical", entry.Name, "similarity", bestSim)
		out = append(out, e.scored(entry, TierSection, tierBase[TierSection]))
	}
	return out
}

func (e *Engine) ensureCanonicalEmbeddings(ctx context.Context, emb nlp.Embedder) error {
	e.embedMu.Lock()
	defer e.embedMu.Unlock()
	if e.embedVecs != nil {
		return nil
	}
	keys := e.tax.CanonicalKeys()
	sort.Strings(keys)
	vecs, err := emb.Embed(ctx, keys)
	if err != nil {
		return err
	}
	e.embedKeys = keys
	e.embedVecs = vecs
	return nil
}

// dedupe drops a skill whose normalized key is a strict substring of
// another accepted key, keeping the longer, more specific form. Entries
// backed directly by the taxonomy are exempt: the taxonomy deliberately
// carries both "SAP" and "SAP SuccessFactors".
func dedupe(accepted map[string]Skill, fromTaxonomy map[string]bool) []Skill {
	keys := make([]string, 0, len(accepted))
	for k := range accepted {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	drop := make(map[string]bool)
	for _, a := range keys {
		if fromTaxonomy[a] {
			continue
		}
		for _, b := range keys {
			if a == b || drop[b] {
				continue
			}
			if strings.Contains(b, a) {
				drop[a] = true
				break
			}
		}
	}

	out := make([]Skill, 0, len(accepted))
	for _, k := range keys {
		if !drop[k] {
			out = append(out, accepted[k])
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func clamp(score int) int {
	if score > 100 {
		return 100
	}
	return score
}
