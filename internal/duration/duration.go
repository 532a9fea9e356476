// Package duration converts the short duration tokens used by focus
// sessions ("25m", "1h", "90s") to and from clock-style strings.
package duration

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var tokenPattern = regexp.MustCompile(`^(\d+)([mhs])?$`)

// Parse returns the duration a token names. A bare number counts minutes.
// Tokens that do not match, or name more time than a time.Duration holds,
// yield zero.
func Parse(token string) time.Duration {
	match := tokenPattern.FindStringSubmatch(strings.ToLower(token))
	if match == nil {
		return 0
	}

	value, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0
	}

	unit := time.Minute
	switch match[2] {
	case "h":
		unit = time.Hour
	case "s":
		unit = time.Second
	}

	if value > math.MaxInt64/int64(unit) {
		return 0
	}
	return time.Duration(value) * unit
}

// ParseMillis is Parse expressed in milliseconds.
func ParseMillis(token string) int64 {
	return Parse(token).Milliseconds()
}

// Format renders d as MM:SS, or H:MM:SS from one hour up. Sub-second
// remainders are dropped and non-positive values render as 00:00.
func Format(d time.Duration) string {
	if d <= 0 {
		return "00:00"
	}

	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func FormatMillis(ms int64) string {
	return Format(time.Duration(ms) * time.Millisecond)
}
