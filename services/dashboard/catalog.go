// Package dashboard holds the static tables shown on the dashboard tabs and
// the few derived values computed from them or from the live feed.
package dashboard

import (
	// Local Packages
	models "fraud-dash/models"
)

type AlertStat struct {
	Label    string      `json:"label"`
	Value    float64     `json:"value"`
	Suffix   string      `json:"suffix,omitempty"`
	Tone     models.Tone `json:"tone"`
	Progress float64     `json:"progress"`
}

type RiskBand struct {
	Label   string      `json:"label"`
	Count   int         `json:"count"`
	Percent float64     `json:"percent"`
	Tone    models.Tone `json:"tone"`
}

type Overview struct {
	AlertStats        []AlertStat `json:"alert_stats"`
	RiskDistribution  []RiskBand  `json:"risk_distribution"`
	AlertActions      []string    `json:"alert_actions"`
	MonitoringEnabled bool        `json:"monitoring_enabled"`
}

type PerformanceMetric struct {
	Metric  string                   `json:"metric"`
	Value   float64                  `json:"value"`
	Target  float64                  `json:"target"`
	Status  models.PerformanceStatus `json:"status"`
	Inverse bool                     `json:"inverse,omitempty"`
	Unit    string                   `json:"unit,omitempty"`
}

type ModelVersion struct {
	Version    string             `json:"version"`
	Status     models.ModelStatus `json:"status"`
	Accuracy   float64            `json:"accuracy"`
	DeployedAt string             `json:"deployed_at"`
}

type Gauge struct {
	Label   string  `json:"label"`
	Display string  `json:"display"`
	Percent float64 `json:"percent"`
}

type Figure struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type ModelMetrics struct {
	Performance []PerformanceMetric `json:"performance"`
	Versions    []ModelVersion      `json:"versions"`
	Training    []Gauge             `json:"training"`
	TrainingKPI []Figure            `json:"training_kpi"`
	Monitoring  []Gauge             `json:"monitoring"`
	LiveKPI     []Figure            `json:"live_kpi"`
}

type RiskFactor struct {
	Factor      string       `json:"factor"`
	Weight      float64      `json:"weight"`
	Impact      models.Level `json:"impact"`
	Description string       `json:"description"`
}

type GeographicRisk struct {
	Region    string       `json:"region"`
	RiskLevel float64      `json:"risk_level"`
	Incidents int          `json:"incidents"`
	Trend     models.Trend `json:"trend"`
}

type MerchantRisk struct {
	Category    string  `json:"category"`
	RiskScore   float64 `json:"risk_score"`
	Volume      string  `json:"volume"`
	Chargebacks float64 `json:"chargebacks"`
}

type RiskAnalysis struct {
	Factors         []RiskFactor     `json:"factors"`
	Geographic      []GeographicRisk `json:"geographic"`
	Merchants       []MerchantRisk   `json:"merchants"`
	RiskCounts      []RiskBand       `json:"risk_counts"`
	ConfidenceBands []Gauge          `json:"confidence_bands"`
}

type ComplianceStandard struct {
	Standard     string                  `json:"standard"`
	Status       models.ComplianceStatus `json:"status"`
	Score        float64                 `json:"score"`
	LastAudit    string                  `json:"last_audit"`
	NextAudit    string                  `json:"next_audit"`
	Requirements int                     `json:"requirements"`
	Met          int                     `json:"met"`
}

type AuditFinding struct {
	ID          string               `json:"id"`
	Severity    models.Level         `json:"severity"`
	Category    string               `json:"category"`
	Description string               `json:"description"`
	Status      models.FindingStatus `json:"status"`
	DueDate     string               `json:"due_date"`
}

type ReportingMetric struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
	Period string  `json:"period"`
	Suffix string  `json:"suffix,omitempty"`
}

type ReportingSchedule struct {
	Daily   []string `json:"daily"`
	Monthly []string `json:"monthly"`
}

type Compliance struct {
	Standards []ComplianceStandard `json:"standards"`
	Findings  []AuditFinding       `json:"findings"`
	Reporting []ReportingMetric    `json:"reporting"`
	Schedule  ReportingSchedule    `json:"schedule"`
	Reports   []ReportKind         `json:"reports"`
}

// Catalog is the read-only content of every tab.
type Catalog struct {
	Overview     Overview
	ModelMetrics ModelMetrics
	RiskAnalysis RiskAnalysis
	Compliance   Compliance
}

func NewCatalog() *Catalog {
	return &Catalog{
		Overview:     overview(),
		ModelMetrics: modelMetrics(),
		RiskAnalysis: riskAnalysis(),
		Compliance:   compliance(),
	}
}

func overview() Overview {
	return Overview{
		AlertStats: []AlertStat{
			{Label: "High Risk", Value: 23, Tone: models.ToneDestructive, Progress: 85},
			{Label: "Medium Risk", Value: 67, Tone: models.ToneWarning, Progress: 65},
			{Label: "Verified Safe", Value: 1256, Tone: models.ToneAccent, Progress: 95},
			{Label: "Model Accuracy", Value: 98.7, Suffix: "%", Tone: models.TonePrimary, Progress: 95},
		},
		RiskDistribution: []RiskBand{
			{Label: "High Risk", Count: 23, Percent: 15, Tone: models.ToneDestructive},
			{Label: "Medium Risk", Count: 67, Percent: 25, Tone: models.ToneWarning},
			{Label: "Low Risk", Count: 1256, Percent: 85, Tone: models.ToneAccent},
		},
		AlertActions:      []string{"Review Flagged Transactions", "Export Risk Report", "Generate Alert Summary"},
		MonitoringEnabled: true,
	}
}

func modelMetrics() ModelMetrics {
	return ModelMetrics{
		Performance: []PerformanceMetric{
			{Metric: "Accuracy", Value: 98.7, Target: 95, Status: models.PerformanceExcellent},
			{Metric: "Precision", Value: 96.2, Target: 90, Status: models.PerformanceExcellent},
			{Metric: "Recall", Value: 94.8, Target: 85, Status: models.PerformanceExcellent},
			{Metric: "F1-Score", Value: 95.5, Target: 88, Status: models.PerformanceExcellent},
			{Metric: "False Positive Rate", Value: 2.1, Target: 5, Status: models.PerformanceGood, Inverse: true},
			{Metric: "Processing Speed", Value: 87.3, Target: 80, Status: models.PerformanceGood, Unit: "ms"},
		},
		Versions: []ModelVersion{
			{Version: "v3.2.1", Status: models.ModelProduction, Accuracy: 98.7, DeployedAt: "2024-01-15"},
			{Version: "v3.2.0", Status: models.ModelStaging, Accuracy: 98.9, DeployedAt: "2024-01-10"},
			{Version: "v3.1.5", Status: models.ModelArchived, Accuracy: 97.2, DeployedAt: "2023-12-20"},
		},
		Training: []Gauge{
			{Label: "Current Training Epoch", Display: "847/1000", Percent: 84.7},
			{Label: "Data Quality Score", Display: "96.3%", Percent: 96.3},
			{Label: "Feature Engineering", Display: "Complete", Percent: 100},
		},
		TrainingKPI: []Figure{
			{Label: "Training Samples", Value: "2.3M"},
			{Label: "Features", Value: "156"},
		},
		Monitoring: []Gauge{
			{Label: "CPU Usage", Display: "67%", Percent: 67},
			{Label: "Memory Usage", Display: "54%", Percent: 54},
			{Label: "API Throughput", Display: "92%", Percent: 92},
		},
		LiveKPI: []Figure{
			{Label: "Transactions/min", Value: "1,247"},
			{Label: "Avg Response", Value: "23ms"},
		},
	}
}

func riskAnalysis() RiskAnalysis {
	return RiskAnalysis{
		Factors: []RiskFactor{
			{Factor: "Unusual Transaction Amount", Weight: 85, Impact: models.LevelHigh, Description: "Transactions significantly above normal patterns"},
			{Factor: "Geographic Anomaly", Weight: 72, Impact: models.LevelHigh, Description: "Transactions from unusual locations"},
			{Factor: "Velocity Patterns", Weight: 68, Impact: models.LevelMedium, Description: "Rapid successive transactions"},
			{Factor: "Merchant Category Risk", Weight: 56, Impact: models.LevelMedium, Description: "High-risk merchant categories"},
			{Factor: "Time-based Anomalies", Weight: 43, Impact: models.LevelLow, Description: "Transactions at unusual hours"},
			{Factor: "Device Fingerprinting", Weight: 39, Impact: models.LevelLow, Description: "Unknown or suspicious devices"},
		},
		Geographic: []GeographicRisk{
			{Region: "Eastern Europe", RiskLevel: 89, Incidents: 156, Trend: models.TrendIncreasing},
			{Region: "Southeast Asia", RiskLevel: 76, Incidents: 203, Trend: models.TrendStable},
			{Region: "West Africa", RiskLevel: 71, Incidents: 89, Trend: models.TrendDecreasing},
			{Region: "South America", RiskLevel: 62, Incidents: 134, Trend: models.TrendStable},
			{Region: "Middle East", RiskLevel: 58, Incidents: 67, Trend: models.TrendIncreasing},
		},
		Merchants: []MerchantRisk{
			{Category: "Online Gaming", RiskScore: 87, Volume: "High", Chargebacks: 23.4},
			{Category: "Cryptocurrency", RiskScore: 82, Volume: "Medium", Chargebacks: 19.8},
			{Category: "Adult Content", RiskScore: 79, Volume: "Low", Chargebacks: 31.2},
			{Category: "Travel Services", RiskScore: 65, Volume: "High", Chargebacks: 12.7},
			{Category: "Electronics", RiskScore: 34, Volume: "High", Chargebacks: 5.3},
		},
		RiskCounts: []RiskBand{
			{Label: "High Risk Transactions", Count: 23, Tone: models.ToneDestructive},
			{Label: "Medium Risk Transactions", Count: 67, Tone: models.ToneWarning},
			{Label: "Low Risk Transactions", Count: 1256, Tone: models.ToneAccent},
		},
		ConfidenceBands: []Gauge{
			{Label: "High Confidence", Display: "94.2%", Percent: 94.2},
			{Label: "Medium Confidence", Display: "4.8%", Percent: 4.8},
			{Label: "Low Confidence", Display: "1.0%", Percent: 1.0},
		},
	}
}

func compliance() Compliance {
	return Compliance{
		Standards: []ComplianceStandard{
			{Standard: "PCI DSS", Status: models.Compliant, Score: 98, LastAudit: "2024-01-15", NextAudit: "2024-07-15", Requirements: 12, Met: 12},
			{Standard: "SOX", Status: models.Compliant, Score: 96, LastAudit: "2024-01-10", NextAudit: "2024-04-10", Requirements: 8, Met: 8},
			{Standard: "GDPR", Status: models.Compliant, Score: 94, LastAudit: "2024-01-05", NextAudit: "2024-06-05", Requirements: 15, Met: 14},
			{Standard: "CCPA", Status: models.Warning, Score: 87, LastAudit: "2023-12-20", NextAudit: "2024-03-20", Requirements: 10, Met: 9},
		},
		Findings: []AuditFinding{
			{ID: "AUD-001", Severity: models.LevelLow, Category: "Data Retention", Description: "Transaction logs older than 7 years should be archived", Status: models.FindingResolved, DueDate: "2024-02-15"},
			{ID: "AUD-002", Severity: models.LevelMedium, Category: "Access Control", Description: "Admin access requires additional MFA verification", Status: models.FindingInProgress, DueDate: "2024-02-28"},
			{ID: "AUD-003", Severity: models.LevelHigh, Category: "Encryption", Description: "Update encryption standards to AES-256", Status: models.FindingPending, DueDate: "2024-03-15"},
		},
		Reporting: []ReportingMetric{
			{Metric: "Fraud Reports Generated", Value: 156, Period: "This Month"},
			{Metric: "Regulatory Submissions", Value: 23, Period: "This Quarter"},
			{Metric: "Audit Responses", Value: 8, Period: "Pending"},
			{Metric: "Compliance Score", Value: 94.2, Period: "Overall", Suffix: "%"},
		},
		Schedule: ReportingSchedule{
			Daily:   []string{"Fraud detection summary", "Transaction volume analysis", "Risk score distribution"},
			Monthly: []string{"Compliance status update", "Model performance review", "Regulatory submissions"},
		},
		Reports: AllReportKinds,
	}
}
