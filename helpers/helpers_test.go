package helpers

import (
	// Go Internal Packages
	"bytes"
	"testing"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFprintStruct(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FprintStruct(&buf, struct {
		ID string `json:"id"`
	}{ID: "tx-1"}))
	assert.Equal(t, "{\n  \"id\": \"tx-1\"\n}\n", buf.String())

	assert.Error(t, FprintStruct(&buf, make(chan int)))
}
