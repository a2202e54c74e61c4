package keyword

import (
	"regexp"
	"sort"
)

// Extractor produces representative tokens for a set of report texts. It is
// an interface so the frequency heuristic can be replaced by a real NLP
// backend without touching callers.
type Extractor interface {
	Extract(texts []string) []string
}

// TopN is how many keywords an extraction returns at most.
const TopN = 5

// hangulToken matches runs of two or more Hangul syllables.
var hangulToken = regexp.MustCompile(`[가-힣]{2,}`)

// stopwords are common filler words (and the emotion slang labels themselves)
// that carry no signal as keywords.
var stopwords = map[string]struct{}{
	"개무섭": {}, "개짜증": {}, "개웃김": {},
	"그냥": {}, "정말": {}, "너무": {}, "완전": {}, "진짜": {},
	"아니": {}, "이거": {}, "그거": {}, "저거": {},
	"이런": {}, "그런": {}, "저런": {},
}

// FrequencyExtractor counts Hangul token frequency and returns the top
// tokens. Naive by design: no stemming, no POS tagging. Good enough for the
// flavor tags the UI shows, not for analytics of record.
type FrequencyExtractor struct{}

// NewExtractor returns the default frequency extractor.
func NewExtractor() *FrequencyExtractor {
	return &FrequencyExtractor{}
}

// Extract tokenizes all texts, drops stopwords, counts frequency and returns
// up to TopN tokens ordered by count descending. Frequency ties keep
// first-encountered order. Empty or stopword-only input yields an empty
// slice, never an error.
func (e *FrequencyExtractor) Extract(texts []string) []string {
	counts := make(map[string]int)
	var order []string

	for _, text := range texts {
		for _, token := range hangulToken.FindAllString(text, -1) {
			if _, skip := stopwords[token]; skip {
				continue
			}
			if _, seen := counts[token]; !seen {
				order = append(order, token)
			}
			counts[token]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > TopN {
		order = order[:TopN]
	}
	return order
}
