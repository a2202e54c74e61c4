package summarize

import (
	"fmt"
	"strings"
)

// EmptySummary is shown when a bucket somehow has no reports at all.
const EmptySummary = "제보가 없습니다."

// KeywordSummary is the deterministic local substitute used when the external
// summarizer is unavailable: the top three keywords plus the report count, or
// a plain count line when keyword extraction found nothing.
func KeywordSummary(keywords []string, reportCount int) string {
	if reportCount == 0 {
		return EmptySummary
	}

	top := keywords
	if len(top) > 3 {
		top = top[:3]
	}
	if len(top) == 0 {
		return fmt.Sprintf("%d개의 제보가 접수되었습니다.", reportCount)
	}

	return fmt.Sprintf("주요 이슈: %s 등 %d개 제보 접수", strings.Join(top, ", "), reportCount)
}
