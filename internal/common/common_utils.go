package common

import (
	"fmt"
	"strings"
	"time"
)

func GetResponseTime(init time.Time) string {
	timeDiff := time.Since(init).Milliseconds()
	return fmt.Sprintf("%dms", timeDiff)
}

// NormalizeIATA trims and uppercases an airport code.
func NormalizeIATA(iata string) string {
	return strings.ToUpper(strings.TrimSpace(iata))
}

// ValidIATA reports whether a code is exactly three letters.
func ValidIATA(iata string) bool {
	if len(iata) != 3 {
		return false
	}
	for _, c := range iata {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}
