package models

import (
	// Go Internal Packages
	"testing"
	"time"

	// External Packages
	"github.com/stretchr/testify/assert"
)

func TestStatusForScore(t *testing.T) {
	cases := []struct {
		score float64
		want  Status
	}{
		{0, StatusApproved},
		{59.9, StatusApproved},
		{59.999999, StatusApproved},
		{60, StatusFlagged},
		{61.0, StatusFlagged},
		{79.999999, StatusFlagged},
		{80, StatusBlocked},
		{82.5, StatusBlocked},
		{99.999999, StatusBlocked},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, StatusForScore(c.score), "score %v", c.score)
	}
}

func TestStatusForScoreMonotonic(t *testing.T) {
	rank := map[Status]int{StatusApproved: 0, StatusFlagged: 1, StatusBlocked: 2}
	prev := StatusForScore(0)
	for s := 0.0; s < 100; s += 0.05 {
		cur := StatusForScore(s)
		assert.GreaterOrEqual(t, rank[cur], rank[prev], "score %v", s)
		prev = cur
	}
}

func TestStatusDisplay(t *testing.T) {
	for _, s := range AllStatuses {
		assert.NotEqual(t, ToneMuted, s.Tone(), string(s))
		assert.NotEqual(t, "Unknown", s.Label(), string(s))
	}
	assert.Equal(t, ToneMuted, Status("refunded").Tone())
	assert.Equal(t, "High Risk", StatusBlocked.Label())
}

func TestToneTablesCoverEveryMember(t *testing.T) {
	for _, s := range AllComplianceStatuses {
		assert.NotEqual(t, ToneMuted, s.Tone(), string(s))
	}
	for _, l := range AllLevels {
		assert.NotEqual(t, ToneMuted, l.Tone(), string(l))
	}
	for _, s := range AllPerformanceStatuses {
		assert.NotEqual(t, ToneMuted, s.Tone(), string(s))
	}
	for _, s := range AllFindingStatuses {
		assert.NotEqual(t, ToneMuted, s.Tone(), string(s))
	}
	for _, tr := range AllTrends {
		assert.NotEqual(t, ToneMuted, tr.Tone(), string(tr))
	}
	assert.Equal(t, ToneAccent, ModelProduction.Tone())
	assert.Equal(t, ToneWarning, ModelStaging.Tone())
	assert.Equal(t, ToneMuted, ModelArchived.Tone())
}

func TestTransform(t *testing.T) {
	ts := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	tx := Transaction{
		ID: "abc", Amount: 120, Merchant: "Shell", Location: "Chicago, IL",
		CardNumber: "****-****-****-4242", RiskScore: 65.2, Status: StatusFlagged,
		Timestamp: ts, UserID: "user_7",
	}
	doc := tx.Transform(ts.Add(time.Minute))

	assert.Equal(t, "abc", doc.ID)
	assert.Equal(t, StatusFlagged, doc.Status)
	assert.Equal(t, ts, doc.Timestamp)
	assert.Equal(t, ts.Add(time.Minute), doc.ArchivedAt)
	assert.True(t, tx.Reviewable())
}
