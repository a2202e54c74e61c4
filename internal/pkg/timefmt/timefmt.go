// Package timefmt renders timestamps the way the Korean UI expects them.
package timefmt

import (
	"fmt"
	"time"
)

// Date renders a time as "2006년 1월 02일".
func Date(t time.Time) string {
	return fmt.Sprintf("%d년 %d월 %02d일", t.Year(), int(t.Month()), t.Day())
}

// Ago renders the distance between now and t as a Korean relative phrase.
// Future timestamps (clock skew) render as "방금 전".
func Ago(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "방금 전"
	case d < time.Hour:
		return fmt.Sprintf("%d분 전", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d시간 전", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%d일 전", int(d.Hours()/24))
	default:
		return Date(t)
	}
}
