package district

import (
	"sort"
	"strings"
)

// Classifier maps a free-text address to a district bucket name. It exists as
// an interface so the substring heuristic can later be swapped for a real
// geocoder without touching the aggregation code.
type Classifier interface {
	Classify(address string) string
}

// aliases maps well-known landmarks and neighborhood names to their district.
// Checked only after the catalog itself produced no match.
var aliases = []struct {
	Area     string
	District string
}{
	{"강남역", "강남구"},
	{"홍대입구", "마포구"},
	{"신촌", "서대문구"},
	{"이태원", "용산구"},
	{"명동", "중구"},
	{"여의도", "영등포구"},
	{"잠실", "송파구"},
	{"건대", "광진구"},
}

// classifyOrder walks the catalog in Hangul alphabetical order of the short
// names. That puts 중구 second-to-last, so its single-syllable suffix-trimmed
// variant "중" cannot shadow districts whose dong names contain 중
// (중계동 in 노원구, 중곡동 in 광진구).
var classifyOrder = func() []*District {
	ordered := make([]*District, len(Catalog))
	for i := range Catalog {
		ordered[i] = &Catalog[i]
	}
	sort.Slice(ordered, func(a, b int) bool {
		return ordered[a].ShortName < ordered[b].ShortName
	})
	return ordered
}()

// SubstringClassifier implements the alphabetical-order substring heuristic.
// It is intentionally not a geocoder: unmatched but valid addresses silently
// land in the OtherBucket.
type SubstringClassifier struct{}

// NewClassifier returns the default substring classifier.
func NewClassifier() *SubstringClassifier {
	return &SubstringClassifier{}
}

// Classify returns the short name of the first district whose name (or name
// minus the "구" suffix) occurs in the address, then consults the alias
// table, and falls back to OtherBucket. An address containing several
// district names resolves to the first one in the alphabetical scan order.
func (c *SubstringClassifier) Classify(address string) string {
	if address == "" {
		return OtherBucket
	}

	for _, d := range classifyOrder {
		if strings.Contains(address, d.ShortName) ||
			strings.Contains(address, strings.TrimSuffix(d.ShortName, "구")) {
			return d.ShortName
		}
	}

	for _, a := range aliases {
		if strings.Contains(address, a.Area) {
			return a.District
		}
	}

	return OtherBucket
}
