package services

import "time"

// dateTimeLayout is the fixed textual form every stored date-time uses.
const dateTimeLayout = "2006-01-02 15:04:05"

// dateTimeInputs are the accepted caller-supplied forms, tried in order.
// The offset-free layouts are interpreted in the server's local time zone.
var dateTimeInputs = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	dateTimeLayout,
	"2006-01-02",
}

// NormalizeDateTime reformats a caller-supplied date-time into the fixed
// "YYYY-MM-DD HH:MM:SS" form in local time. Values already in that form pass
// through unchanged; values that parse under no accepted layout are returned
// verbatim, matching the lenient behavior callers rely on.
func NormalizeDateTime(value string) string {
	for _, layout := range dateTimeInputs {
		t, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			return t.In(time.Local).Format(dateTimeLayout)
		}
	}
	return value
}

// NormalizeOptionalDateTime normalizes a nullable date-time, keeping nil as nil.
func NormalizeOptionalDateTime(value *string) *string {
	if value == nil {
		return nil
	}
	normalized := NormalizeDateTime(*value)
	return &normalized
}
