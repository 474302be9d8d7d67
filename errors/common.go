package errors

import "fmt"

func EmptyParamErr(field string) error {
	ve := ValidationErrs()
	ve.Add(field, "cannot be empty")
	return E(Invalid, "validation failed", ve.Err())
}

// UnknownValueErr returns a formatted error for a value outside a closed set
func UnknownValueErr(field, value string) error {
	return E(Invalid, fmt.Sprintf("unknown %s %q", field, value), nil)
}

// SinkErr returns a formatted error for a failed delivery to an external sink
func SinkErr(sink string, count int, err error) error {
	return E(Unavailable, fmt.Sprintf("delivery of %d records to %s failed", count, sink), err)
}
