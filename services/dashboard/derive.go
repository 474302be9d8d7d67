package dashboard

import (
	// Local Packages
	errors "fraud-dash/errors"
	models "fraud-dash/models"
)

// ReportKind names a downloadable compliance document.
type ReportKind string

const (
	ReportPCIDSS          ReportKind = "pci-dss"
	ReportSOX             ReportKind = "sox"
	ReportGDPR            ReportKind = "gdpr"
	ReportFraudStatistics ReportKind = "fraud-statistics"
	ReportAuditTrail      ReportKind = "audit-trail"
	ReportFull            ReportKind = "full"
)

var AllReportKinds = []ReportKind{
	ReportPCIDSS, ReportSOX, ReportGDPR, ReportFraudStatistics, ReportAuditTrail, ReportFull,
}

func (k ReportKind) Title() string {
	switch k {
	case ReportPCIDSS:
		return "PCI DSS Report"
	case ReportSOX:
		return "SOX Documentation"
	case ReportGDPR:
		return "GDPR Assessment"
	case ReportFraudStatistics:
		return "Fraud Statistics"
	case ReportAuditTrail:
		return "Audit Trail"
	case ReportFull:
		return "Full Report"
	}
	return string(k)
}

func ParseReportKind(s string) (ReportKind, error) {
	for _, k := range AllReportKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", errors.UnknownValueErr("report", s)
}

// TargetVerdict tells whether the metric meets its target. Inverse metrics
// (lower is better) meet it when strictly below, the others when strictly above.
func TargetVerdict(m PerformanceMetric) (bool, string) {
	if m.Inverse {
		if m.Value < m.Target {
			return true, "✓ Below target"
		}
		return false, "⚠ Above target"
	}
	if m.Value > m.Target {
		return true, "✓ Above target"
	}
	return false, "⚠ Below target"
}

// RequirementsPercent is the share of requirements met, 0 when none are defined.
func RequirementsPercent(s ComplianceStandard) float64 {
	if s.Requirements == 0 {
		return 0
	}
	return float64(s.Met) / float64(s.Requirements) * 100
}

// Distribution counts the records of a feed snapshot per status, in
// blocked, flagged, approved order.
func Distribution(records []models.Transaction) []RiskBand {
	counts := make(map[models.Status]int, len(models.AllStatuses))
	for _, r := range records {
		counts[r.Status]++
	}

	order := []models.Status{models.StatusBlocked, models.StatusFlagged, models.StatusApproved}
	bands := make([]RiskBand, 0, len(order))
	for _, s := range order {
		band := RiskBand{Label: s.Label(), Count: counts[s], Tone: s.Tone()}
		if len(records) > 0 {
			band.Percent = float64(counts[s]) / float64(len(records)) * 100
		}
		bands = append(bands, band)
	}
	return bands
}
