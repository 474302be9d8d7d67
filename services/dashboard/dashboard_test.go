package dashboard

import (
	// Go Internal Packages
	"testing"

	// Local Packages
	errors "fraud-dash/errors"
	models "fraud-dash/models"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetVerdict(t *testing.T) {
	c := NewCatalog()

	for _, m := range c.ModelMetrics.Performance {
		ok, text := TargetVerdict(m)
		assert.True(t, ok, m.Metric)
		if m.Inverse {
			assert.Equal(t, "✓ Below target", text)
		} else {
			assert.Equal(t, "✓ Above target", text)
		}
	}

	ok, text := TargetVerdict(PerformanceMetric{Metric: "False Positive Rate", Value: 6, Target: 5, Inverse: true})
	assert.False(t, ok)
	assert.Equal(t, "⚠ Above target", text)

	ok, text = TargetVerdict(PerformanceMetric{Metric: "Recall", Value: 85, Target: 85})
	assert.False(t, ok)
	assert.Equal(t, "⚠ Below target", text)
}

func TestDistribution(t *testing.T) {
	records := []models.Transaction{
		{Status: models.StatusBlocked},
		{Status: models.StatusApproved},
		{Status: models.StatusApproved},
		{Status: models.StatusFlagged},
	}

	bands := Distribution(records)
	require.Len(t, bands, 3)
	assert.Equal(t, RiskBand{Label: "High Risk", Count: 1, Percent: 25, Tone: models.ToneDestructive}, bands[0])
	assert.Equal(t, RiskBand{Label: "Medium Risk", Count: 1, Percent: 25, Tone: models.ToneWarning}, bands[1])
	assert.Equal(t, RiskBand{Label: "Approved", Count: 2, Percent: 50, Tone: models.ToneAccent}, bands[2])
}

func TestDistributionOfEmptyFeed(t *testing.T) {
	for _, b := range Distribution(nil) {
		assert.Zero(t, b.Count)
		assert.Zero(t, b.Percent)
	}
}

func TestParseReportKind(t *testing.T) {
	for _, k := range AllReportKinds {
		got, err := ParseReportKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
		assert.NotEqual(t, string(k), k.Title())
	}

	_, err := ParseReportKind("tax-return")
	require.Error(t, err)
	assert.Equal(t, errors.Invalid, errors.KindOf(err))
}

func TestComplianceTables(t *testing.T) {
	c := NewCatalog()

	assert.Len(t, c.Compliance.Standards, 4)
	for _, s := range c.Compliance.Standards {
		assert.LessOrEqual(t, s.Met, s.Requirements, s.Standard)
	}
	assert.InDelta(t, 93.33, RequirementsPercent(c.Compliance.Standards[2]), 0.01)
	assert.Zero(t, RequirementsPercent(ComplianceStandard{}))
	assert.Equal(t, models.ToneWarning, c.Compliance.Standards[3].Status.Tone())
	assert.Equal(t, models.ToneDestructive, c.Compliance.Findings[2].Severity.Tone())
}
