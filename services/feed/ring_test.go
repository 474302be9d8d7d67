package feed

import (
	// Go Internal Packages
	"fmt"
	"testing"

	// Local Packages
	models "fraud-dash/models"

	// External Packages
	"github.com/stretchr/testify/assert"
)

func rec(id string) models.Transaction {
	return models.Transaction{ID: id}
}

func ids(records []models.Transaction) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestRingPushKeepsNewestFirst(t *testing.T) {
	r := NewRing(3)
	for i := 1; i <= 5; i++ {
		r.Push(rec(fmt.Sprint(i)))
	}
	assert.Equal(t, []string{"5", "4", "3"}, ids(r.Snapshot()))
	assert.Equal(t, 3, r.Len())
}

func TestRingResetTruncatesFromTheBack(t *testing.T) {
	r := NewRing(2)
	r.Reset([]models.Transaction{rec("a"), rec("b"), rec("c")})
	assert.Equal(t, []string{"a", "b"}, ids(r.Snapshot()))

	r.Clear()
	assert.Empty(t, r.Snapshot())
}

func TestRingSnapshotIsACopy(t *testing.T) {
	r := NewRing(2)
	r.Push(rec("a"))
	snap := r.Snapshot()
	snap[0].ID = "mutated"
	assert.Equal(t, "a", r.Snapshot()[0].ID)
}
