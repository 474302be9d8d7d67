package generator

import (
	// Go Internal Packages
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	// Local Packages
	models "fraud-dash/models"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed floats and answers IntN with a constant clamped to n.
type scriptedSource struct {
	floats []float64
	intVal int
}

func (s *scriptedSource) Float64() float64 {
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

func (s *scriptedSource) IntN(n int) int {
	if s.intVal >= n {
		return n - 1
	}
	return s.intVal
}

func TestGenerateRecordProperties(t *testing.T) {
	opts := DefaultOptions()
	g := NewSeeded(42, opts)

	for i := 0; i < 5000; i++ {
		rec := g.Generate()

		require.GreaterOrEqual(t, rec.RiskScore, 0.0)
		require.Less(t, rec.RiskScore, 100.0)
		require.GreaterOrEqual(t, rec.Amount, opts.AmountMin)
		require.LessOrEqual(t, rec.Amount, opts.AmountMax)
		require.Contains(t, Merchants, rec.Merchant)
		require.Contains(t, Locations, rec.Location)
		require.Regexp(t, `^\*\*\*\*-\*\*\*\*-\*\*\*\*-[1-9]\d{3}$`, rec.CardNumber)
		require.True(t, strings.HasPrefix(rec.UserID, "user_"))
		n, err := strconv.Atoi(strings.TrimPrefix(rec.UserID, "user_"))
		require.NoError(t, err)
		require.True(t, n >= 0 && n < opts.UserIDMax)
		require.False(t, rec.Timestamp.IsZero())

		switch {
		case rec.RiskScore >= 80:
			require.Equal(t, models.StatusBlocked, rec.Status)
		case rec.RiskScore >= 60:
			require.Equal(t, models.StatusFlagged, rec.Status)
		default:
			require.Equal(t, models.StatusApproved, rec.Status)
		}
	}
}

func TestGenerateIDsAreDistinct(t *testing.T) {
	g := NewSeeded(0, DefaultOptions())
	seen := make(map[string]struct{}, 1000)
	for _, rec := range g.Batch(1000) {
		_, dup := seen[rec.ID]
		require.False(t, dup, "duplicate id %s", rec.ID)
		seen[rec.ID] = struct{}{}
	}
}

func TestGenerateScriptedScores(t *testing.T) {
	cases := []struct {
		draw  float64
		score float64
		want  models.Status
	}{
		{0.825, 82.5, models.StatusBlocked},
		{0.61, 61.0, models.StatusFlagged},
		{0.599, 59.9, models.StatusApproved},
	}
	for _, c := range cases {
		t.Run(fmt.Sprint(c.score), func(t *testing.T) {
			g := New(&scriptedSource{floats: []float64{c.draw}, intVal: 3}, DefaultOptions())
			rec := g.Generate()
			assert.InDelta(t, c.score, rec.RiskScore, 1e-9)
			assert.Equal(t, c.want, rec.Status)
		})
	}
}

func TestGenerateScriptedFields(t *testing.T) {
	at := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	g := New(&scriptedSource{floats: []float64{0.1}, intVal: 3}, DefaultOptions(),
		WithIDs(func() string { return "tx-1" }),
		WithClock(func() time.Time { return at }),
	)

	rec := g.Generate()
	assert.Equal(t, models.Transaction{
		ID:         "tx-1",
		Amount:     13,
		Merchant:   "Best Buy",
		Location:   "Houston, TX",
		CardNumber: "****-****-****-1003",
		RiskScore:  rec.RiskScore,
		Status:     models.StatusApproved,
		Timestamp:  at,
		UserID:     "user_3",
	}, rec)
}

func TestGenerateClampsOutOfRangeSource(t *testing.T) {
	g := New(&scriptedSource{floats: []float64{1.0, -0.2}}, DefaultOptions())

	high := g.Generate()
	assert.Less(t, high.RiskScore, 100.0)
	assert.Equal(t, models.StatusBlocked, high.Status)

	low := g.Generate()
	assert.Equal(t, 0.0, low.RiskScore)
	assert.Equal(t, models.StatusApproved, low.Status)
}

func TestSeededGeneratorsAreReproducible(t *testing.T) {
	fixed := func() time.Time { return time.Unix(0, 0) }
	ids := func() string { return "x" }
	a := NewSeeded(7, DefaultOptions(), WithClock(fixed), WithIDs(ids)).Batch(20)
	b := NewSeeded(7, DefaultOptions(), WithClock(fixed), WithIDs(ids)).Batch(20)
	assert.Equal(t, a, b)
}
