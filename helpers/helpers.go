package helpers

import (
	// Go Internal Packages
	"encoding/json"
	"io"
)

// FprintStruct writes v to w as indented JSON followed by a newline
func FprintStruct(w io.Writer, v any) error {
	res, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(res, '\n'))
	return err
}
