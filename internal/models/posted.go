package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Minutes per recognised posting unit
var timeUnits = map[string]int{
	"minute": 1,
	"hour":   60,
	"day":    1440,
	"week":   10080,
}

// ParseError describes a posted value that could not be converted to minutes
type ParseError struct {
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid posted time %q: %s", e.Raw, e.Reason)
}

// ParsePosted converts a relative posting age such as "3 hours" or "1 week"
// into minutes. A single trailing "s" on the unit is ignored. Values whose
// minute count does not fit in an int are rejected.
func ParsePosted(raw string) (int, error) {
	parts := strings.Fields(raw)
	if len(parts) != 2 {
		return 0, &ParseError{Raw: raw, Reason: "expected \"<number> <unit>\""}
	}

	value, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &ParseError{Raw: raw, Reason: "value is not an integer"}
	}

	unit := strings.ToLower(strings.TrimSuffix(parts[1], "s"))
	minutes, ok := timeUnits[unit]
	if !ok {
		return 0, &ParseError{Raw: raw, Reason: fmt.Sprintf("unknown unit %q", parts[1])}
	}

	if value > math.MaxInt/minutes || value < math.MinInt/minutes {
		return 0, &ParseError{Raw: raw, Reason: "value out of range"}
	}
	return value * minutes, nil
}

// PostedMinutes parses the job's posted value
func (j Job) PostedMinutes() (int, error) {
	return ParsePosted(j.Posted)
}
