package codec

import (
	"fmt"
	"regexp"
	"time"

	"cloud.google.com/go/civil"
)

const (
	// TimeLayout is the ISO-8601 local date-time written to the "time" field.
	// The fraction is trimmed of trailing zeros and omitted when zero.
	TimeLayout = "2006-01-02T15:04:05.999999999"

	minuteLayout = "2006-01-02T15:04"
)

// time.Parse accepts single-digit hours and other shapes the layout does not
// spell out, so the string is checked against the strict form first.
var localDateTime = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}(:\d{2}(\.\d{1,9})?)?$`)

// FormatTime renders dt in TimeLayout.
func FormatTime(dt civil.DateTime) string {
	return dt.In(time.UTC).Format(TimeLayout)
}

// ParseTime parses a local date-time written by FormatTime. The seconds-less
// form 2006-01-02T15:04 is accepted as well.
func ParseTime(s string) (civil.DateTime, error) {
	if !localDateTime.MatchString(s) {
		return civil.DateTime{}, fmt.Errorf("%w: time %q is not an ISO local date-time", ErrParse, s)
	}
	layout := TimeLayout
	if len(s) == len(minuteLayout) {
		layout = minuteLayout
	}
	t, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil {
		return civil.DateTime{}, fmt.Errorf("%w: time %q: %v", ErrParse, s, err)
	}
	return civil.DateTimeOf(t), nil
}
