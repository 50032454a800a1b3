package engine

import (
	"strings"
	"unicode"

	"orchidbreed/domain/breeding"
)

// ProfilePatch is the partial profile a NoteExtractor derives from free text.
// Nil or empty fields leave the builder's defaults in place.
type ProfilePatch struct {
	Ploidy        *breeding.Ploidy
	Fertility     *breeding.Fertility
	BreedingGroup *breeding.BreedingGroup
	BloomSeasons  []breeding.Season
	Barriers      []breeding.Barrier
}

// NoteExtractor reads cultivation notes and reports what they say about a specimen.
type NoteExtractor interface {
	Extract(notes string) ProfilePatch
}

// KeywordRule maps a set of phrases to a value.
type KeywordRule[T any] struct {
	Value    T
	Keywords []string
}

// KeywordTable drives KeywordExtractor. Single-valued fields take the first matching
// rule in table order; set-valued fields collect every matching rule.
type KeywordTable struct {
	Ploidy        []KeywordRule[breeding.Ploidy]
	Fertility     []KeywordRule[breeding.Fertility]
	BreedingGroup []KeywordRule[breeding.BreedingGroup]
	Seasons       []KeywordRule[breeding.Season]
	Barriers      []KeywordRule[breeding.Barrier]
}

// DefaultKeywordTable returns the built-in keyword table.
func DefaultKeywordTable() KeywordTable {
	return KeywordTable{
		Ploidy: []KeywordRule[breeding.Ploidy]{
			{Value: breeding.PloidyTetraploid, Keywords: []string{"tetraploid", "4n"}},
			{Value: breeding.PloidyTriploid, Keywords: []string{"triploid", "3n"}},
		},
		// semi-fertile phrases must precede "sterile" since "semi-sterile" contains it
		Fertility: []KeywordRule[breeding.Fertility]{
			{Value: breeding.FertilitySemiFertile, Keywords: []string{
				"semi-fertile", "semi fertile", "semi-sterile", "semi sterile",
				"partially fertile", "reduced fertility", "low fertility",
			}},
			{Value: breeding.FertilitySterile, Keywords: []string{"sterile", "infertile", "does not set seed"}},
		},
		BreedingGroup: []KeywordRule[breeding.BreedingGroup]{
			{Value: breeding.GroupMiniature, Keywords: []string{"miniature", "compact", "dwarf"}},
			{Value: breeding.GroupComplex, Keywords: []string{"complex hybrid", "multigeneric", "intergeneric hybrid"}},
			{Value: breeding.GroupSpecies, Keywords: []string{"species", "wild collected", "wild-collected", "jungle collected"}},
		},
		Seasons: []KeywordRule[breeding.Season]{
			{Value: breeding.SeasonSpring, Keywords: []string{"spring"}},
			{Value: breeding.SeasonSummer, Keywords: []string{"summer"}},
			{Value: breeding.SeasonFall, Keywords: []string{"fall", "autumn"}},
			{Value: breeding.SeasonWinter, Keywords: []string{"winter"}},
		},
		Barriers: []KeywordRule[breeding.Barrier]{
			{Value: breeding.BarrierDifficultCultivation, Keywords: []string{"difficult", "challenging", "finicky", "demanding"}},
			{Value: breeding.BarrierLimitedAvailability, Keywords: []string{"rare", "limited availability", "scarce", "hard to find"}},
			{Value: breeding.BarrierSlowGrowth, Keywords: []string{"slow growing", "slow-growing", "slow grower", "slow growth"}},
		},
	}
}

// KeywordExtractor is a NoteExtractor backed by a KeywordTable.
type KeywordExtractor struct {
	table KeywordTable
}

// NewKeywordExtractor creates an extractor for the given table.
func NewKeywordExtractor(table KeywordTable) *KeywordExtractor {
	return &KeywordExtractor{table: table}
}

// Extract scans notes for every keyword in the table.
func (x *KeywordExtractor) Extract(notes string) ProfilePatch {
	text := strings.ToLower(notes)
	if strings.TrimSpace(text) == "" {
		return ProfilePatch{}
	}

	var patch ProfilePatch
	if v, ok := firstMatch(text, x.table.Ploidy); ok {
		patch.Ploidy = &v
	}
	if v, ok := firstMatch(text, x.table.Fertility); ok {
		patch.Fertility = &v
	}
	if v, ok := firstMatch(text, x.table.BreedingGroup); ok {
		patch.BreedingGroup = &v
	}
	patch.BloomSeasons = allMatches(text, x.table.Seasons)
	patch.Barriers = allMatches(text, x.table.Barriers)
	return patch
}

func firstMatch[T any](text string, rules []KeywordRule[T]) (T, bool) {
	for _, rule := range rules {
		if matchesAny(text, rule.Keywords) {
			return rule.Value, true
		}
	}
	var zero T
	return zero, false
}

func allMatches[T any](text string, rules []KeywordRule[T]) []T {
	var out []T
	for _, rule := range rules {
		if matchesAny(text, rule.Keywords) {
			out = append(out, rule.Value)
		}
	}
	return out
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if containsPhrase(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// containsPhrase reports whether phrase occurs in text bounded by non-alphanumerics,
// so "fall" does not match "rainfall".
func containsPhrase(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	for start := 0; start <= len(text)-len(phrase); {
		idx := strings.Index(text[start:], phrase)
		if idx < 0 {
			return false
		}
		i := start + idx
		end := i + len(phrase)
		if boundaryBefore(text, i) && boundaryAfter(text, end) {
			return true
		}
		start = i + 1
	}
	return false
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r := rune(text[i-1])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	r := rune(text[end])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
