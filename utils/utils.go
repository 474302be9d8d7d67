package utils

import (
	// Go Internal Packages
	"slices"
	"strconv"
	"strings"
)

// JoinInt32Slice joins the values in ascending order without duplicates
func JoinInt32Slice(ints []int32) string {
	sorted := slices.Compact(slices.Sorted(slices.Values(ints)))
	strs := make([]string, len(sorted))
	for i, v := range sorted {
		strs[i] = strconv.FormatInt(int64(v), 10)
	}
	return strings.Join(strs, ",")
}
