// Package taxonomy classifies free-text product titles and legacy category
// strings into one canonical category of a fixed, ordered taxonomy.
//
// Classification is a single greedy pass: sentinel values short-circuit to the
// fallback category, exact category names or identifiers are returned as is,
// and otherwise rules are scanned in priority order and the first keyword hit
// wins. A Taxonomy is immutable after New and safe for concurrent use.
package taxonomy

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultFallback is the catch-all category returned when nothing matches.
const DefaultFallback = "Other"

// Reason describes which step of the classification produced a Match.
type Reason string

const (
	// ReasonSentinel means the input was empty or a known "no category" value.
	ReasonSentinel Reason = "sentinel"
	// ReasonDirect means the input named a canonical category or its identifier.
	ReasonDirect Reason = "direct"
	// ReasonKeyword means a rule keyword matched the input.
	ReasonKeyword Reason = "keyword"
	// ReasonFallback means no rule matched.
	ReasonFallback Reason = "fallback"
)

// ErrInvalidTaxonomy is returned by New and Load for malformed configurations.
var ErrInvalidTaxonomy = errors.New("invalid taxonomy")

// Rule maps one canonical category to its ordered keywords.
type Rule struct {
	// Name is the canonical category name returned on a match.
	Name string `yaml:"name"`
	// Keywords are matched in the given order. They are lowercased on load.
	Keywords []string `yaml:"keywords"`
}

// Config is the declarative form of a taxonomy. Rules are evaluated in slice
// order, so the order of Rules is part of the contract.
type Config struct {
	// Version identifies the rule set. It is stamped on recategorization jobs so
	// a new rule set triggers a new pass over the catalog.
	Version string `yaml:"version"`
	// Fallback is the category returned when nothing matches. Defaults to "Other".
	Fallback string `yaml:"fallback"`
	// Rules is the ordered list of category rules, most specific first.
	Rules []Rule `yaml:"rules"`
	// WholeWord lists short or ambiguous keywords that must match a whole word.
	// When nil, DefaultWholeWord is used.
	WholeWord []string `yaml:"wholeWord"`
	// Sentinels lists values treated as "no category". The empty string is
	// always a sentinel. When nil, DefaultSentinels is used.
	Sentinels []string `yaml:"sentinels"`
}

// Match is the outcome of a classification together with the evidence for it.
type Match struct {
	// Category is the canonical category name.
	Category string `json:"category"`
	// Reason tells which classification step decided the category.
	Reason Reason `json:"reason"`
	// Keyword is the matched keyword when Reason is ReasonKeyword.
	Keyword string `json:"keyword,omitempty"`
}

// Taxonomy is a validated, immutable rule table.
type Taxonomy struct {
	version   string
	fallback  string
	rules     []Rule
	wholeWord map[string]struct{}
	sentinels map[string]struct{}
	// direct maps lowercased display names and identifiers to canonical names.
	direct map[string]string
}

// New validates cfg and builds a Taxonomy from it.
func New(cfg Config) (*Taxonomy, error) {
	t := &Taxonomy{
		version:   strings.TrimSpace(cfg.Version),
		fallback:  strings.TrimSpace(cfg.Fallback),
		rules:     make([]Rule, 0, len(cfg.Rules)),
		wholeWord: make(map[string]struct{}),
		sentinels: map[string]struct{}{"": {}},
		direct:    make(map[string]string),
	}
	if t.fallback == "" {
		t.fallback = DefaultFallback
	}
	if len(cfg.Rules) == 0 {
		return nil, fmt.Errorf("%w: no rules", ErrInvalidTaxonomy)
	}

	wholeWord := cfg.WholeWord
	if wholeWord == nil {
		wholeWord = DefaultWholeWord
	}
	for _, w := range wholeWord {
		t.wholeWord[normalize(w)] = struct{}{}
	}

	sentinels := cfg.Sentinels
	if sentinels == nil {
		sentinels = DefaultSentinels
	}
	for _, s := range sentinels {
		t.sentinels[normalize(s)] = struct{}{}
	}

	if err := t.addDirect(t.fallback); err != nil {
		return nil, err
	}

	for i, r := range cfg.Rules {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: rule %d has no name", ErrInvalidTaxonomy, i)
		}
		if strings.EqualFold(name, t.fallback) {
			return nil, fmt.Errorf("%w: fallback %q must not have keywords", ErrInvalidTaxonomy, name)
		}
		if len(r.Keywords) == 0 {
			return nil, fmt.Errorf("%w: rule %q has no keywords", ErrInvalidTaxonomy, name)
		}
		if err := t.addDirect(name); err != nil {
			return nil, err
		}

		keywords := make([]string, 0, len(r.Keywords))
		for _, k := range r.Keywords {
			k = normalize(k)
			if k == "" {
				return nil, fmt.Errorf("%w: rule %q has an empty keyword", ErrInvalidTaxonomy, name)
			}
			keywords = append(keywords, k)
		}
		t.rules = append(t.rules, Rule{Name: name, Keywords: keywords})
	}

	return t, nil
}

// addDirect registers a canonical name under its lowercased display name and
// its identifier, rejecting collisions with names already registered.
func (t *Taxonomy) addDirect(name string) error {
	display := normalize(name)
	if existing, ok := t.direct[display]; ok {
		return fmt.Errorf("%w: duplicate category %q (already %q)", ErrInvalidTaxonomy, name, existing)
	}
	id := Identifier(name)
	if existing, ok := t.direct[id]; ok {
		return fmt.Errorf("%w: identifier %q of %q collides with %q", ErrInvalidTaxonomy, id, name, existing)
	}

	t.direct[display] = name
	t.direct[id] = name

	return nil
}

// Identifier returns the machine-readable identifier of a category name:
// lowercased with spaces replaced by hyphens.
func Identifier(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// Version returns the rule set version.
func (t *Taxonomy) Version() string { return t.version }

// Fallback returns the catch-all category name.
func (t *Taxonomy) Fallback() string { return t.fallback }

// Categories returns every canonical category in priority order, fallback last.
func (t *Taxonomy) Categories() []string {
	out := make([]string, 0, len(t.rules)+1)
	for _, r := range t.rules {
		out = append(out, r.Name)
	}

	return append(out, t.fallback)
}

// Rules returns a copy of the ordered rule table.
func (t *Taxonomy) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	for i, r := range t.rules {
		out[i] = Rule{Name: r.Name, Keywords: append([]string(nil), r.Keywords...)}
	}

	return out
}

// Canonical reports the canonical name for a display name or identifier.
func (t *Taxonomy) Canonical(name string) (string, bool) {
	c, ok := t.direct[normalize(name)]

	return c, ok
}

// Classify returns the canonical category for text. It never fails; inputs
// that match nothing yield the fallback category.
func (t *Taxonomy) Classify(text string) string {
	return t.Explain(text).Category
}

// Explain classifies text and reports how the category was chosen.
func (t *Taxonomy) Explain(text string) Match {
	s := normalize(text)

	if _, ok := t.sentinels[s]; ok {
		return Match{Category: t.fallback, Reason: ReasonSentinel}
	}

	if c, ok := t.direct[s]; ok {
		return Match{Category: c, Reason: ReasonDirect}
	}

	for _, r := range t.rules {
		for _, k := range r.Keywords {
			if t.matches(s, k) {
				return Match{Category: r.Name, Reason: ReasonKeyword, Keyword: k}
			}
		}
	}

	return Match{Category: t.fallback, Reason: ReasonFallback}
}

// ClassifyProduct classifies a product from its title and its legacy category
// string. The title decides first; the whole legacy string is scanned only
// when the title alone falls back.
func (t *Taxonomy) ClassifyProduct(title, legacyCategory string) Match {
	m := t.Explain(title)
	if m.Category != t.fallback || m.Reason == ReasonDirect {
		return m
	}

	if legacy := t.Explain(legacyCategory); legacy.Reason != ReasonSentinel {
		return legacy
	}

	return m
}

func (t *Taxonomy) matches(text, keyword string) bool {
	if _, ok := t.wholeWord[keyword]; ok {
		return containsWord(text, keyword)
	}

	return strings.Contains(text, keyword)
}
