package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the publication date format of the site content (ISO 8601)
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned for dates not in YYYY-MM-DD form
var ErrInvalidDate = errors.New("invalid date format: expected YYYY-MM-DD")

// ParseDate parses a YYYY-MM-DD date as midnight UTC
func ParseDate(dateStr string) (time.Time, error) {
	parsedTime, err := time.Parse(DateLayout, strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, dateStr)
	}
	return parsedTime, nil
}
