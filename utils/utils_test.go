package utils

import (
	// Go Internal Packages
	"testing"

	// External Packages
	"github.com/stretchr/testify/assert"
)

func TestJoinInt32Slice(t *testing.T) {
	assert.Equal(t, "", JoinInt32Slice(nil))
	assert.Equal(t, "0,2,5", JoinInt32Slice([]int32{5, 0, 2, 5, 0}))
}
