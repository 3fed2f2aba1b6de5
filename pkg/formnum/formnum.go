package formnum

import (
	"fmt"
	"regexp"
	"strconv"
)

const prefix = "TVC"

var re = regexp.MustCompile(`^` + prefix + `-(\d{4})-(\d{4,})$`)

// Format renders the human-readable form number for a year and sequence,
// zero-padded to 4 digits: Format(2026, 1) == "TVC-2026-0001".
func Format(year, seq int) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, seq)
}

// Prefix returns the shared prefix of every form number in a year,
// e.g. "TVC-2026-". Useful for LIKE queries.
func Prefix(year int) string {
	return fmt.Sprintf("%s-%d-", prefix, year)
}

// Parse extracts the year and sequence from a form number.
func Parse(number string) (year, seq int, err error) {
	m := re.FindStringSubmatch(number)
	if m == nil {
		return 0, 0, fmt.Errorf("malformed form number %q", number)
	}
	year, _ = strconv.Atoi(m[1])
	seq, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed sequence in %q", number)
	}
	return year, seq, nil
}
