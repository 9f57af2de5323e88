package helpers

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// InterventionTimeLayout is the wire format for intervention timestamps
const InterventionTimeLayout = "2006-01-02 15:04"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		// Use the global logger here, the configured one may not exist yet.
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// FormatTimestamp renders t in UTC using InterventionTimeLayout
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(InterventionTimeLayout)
}

// FormatDecimal renders f as the shortest decimal that keeps at least one
// fractional digit, so 2 becomes "2.0" and 0.25 stays "0.25".
func FormatDecimal(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	// NaN and ±Inf have no fractional form
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
