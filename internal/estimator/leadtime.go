package estimator

import (
	"regexp"
	"strconv"
)

// DefaultLeadTimeDays applies when a description carries no usable marker.
const DefaultLeadTimeDays = 3

// MaxLeadTimeDays bounds a parsed marker; larger values fall back to the default.
const MaxLeadTimeDays = 3650

var leadTimeMarker = regexp.MustCompile(`T\+(\d+)`)

// ParseLeadTime extracts the delivery lead time from a "T+<days>" marker in a
// product description. The first marker wins; a missing, unparsable or
// out of range marker yields fallback.
func ParseLeadTime(description string, fallback int) int {
	m := leadTimeMarker.FindStringSubmatch(description)
	if m == nil {
		return fallback
	}
	days, err := strconv.Atoi(m[1])
	if err != nil || days > MaxLeadTimeDays {
		return fallback
	}
	return days
}
