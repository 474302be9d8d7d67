package models

// Tone is the colour family a value is rendered with.
type Tone string

const (
	ToneDestructive Tone = "destructive"
	ToneWarning     Tone = "warning"
	ToneAccent      Tone = "accent"
	TonePrimary     Tone = "primary"
	ToneMuted       Tone = "muted"
)

type ComplianceStatus string

const (
	Compliant    ComplianceStatus = "compliant"
	Warning      ComplianceStatus = "warning"
	NonCompliant ComplianceStatus = "non-compliant"
)

var AllComplianceStatuses = []ComplianceStatus{Compliant, Warning, NonCompliant}

func (s ComplianceStatus) Tone() Tone {
	switch s {
	case Compliant:
		return ToneAccent
	case Warning:
		return ToneWarning
	case NonCompliant:
		return ToneDestructive
	}
	return ToneMuted
}

// Level is shared by audit finding severity and risk factor impact.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

var AllLevels = []Level{LevelLow, LevelMedium, LevelHigh}

func (l Level) Tone() Tone {
	switch l {
	case LevelHigh:
		return ToneDestructive
	case LevelMedium:
		return ToneWarning
	case LevelLow:
		return ToneAccent
	}
	return ToneMuted
}

type PerformanceStatus string

const (
	PerformanceExcellent PerformanceStatus = "excellent"
	PerformanceGood      PerformanceStatus = "good"
	PerformanceWarning   PerformanceStatus = "warning"
)

var AllPerformanceStatuses = []PerformanceStatus{PerformanceExcellent, PerformanceGood, PerformanceWarning}

func (s PerformanceStatus) Tone() Tone {
	switch s {
	case PerformanceExcellent:
		return ToneAccent
	case PerformanceGood:
		return TonePrimary
	case PerformanceWarning:
		return ToneWarning
	}
	return ToneMuted
}

type ModelStatus string

const (
	ModelProduction ModelStatus = "production"
	ModelStaging    ModelStatus = "staging"
	ModelArchived   ModelStatus = "archived"
)

var AllModelStatuses = []ModelStatus{ModelProduction, ModelStaging, ModelArchived}

// Tone maps archived to muted on purpose, the same colour as the fallback.
func (s ModelStatus) Tone() Tone {
	switch s {
	case ModelProduction:
		return ToneAccent
	case ModelStaging:
		return ToneWarning
	case ModelArchived:
		return ToneMuted
	}
	return ToneMuted
}

type FindingStatus string

const (
	FindingResolved   FindingStatus = "resolved"
	FindingInProgress FindingStatus = "in-progress"
	FindingPending    FindingStatus = "pending"
)

var AllFindingStatuses = []FindingStatus{FindingResolved, FindingInProgress, FindingPending}

func (s FindingStatus) Tone() Tone {
	switch s {
	case FindingResolved:
		return ToneAccent
	case FindingInProgress:
		return ToneWarning
	case FindingPending:
		return ToneDestructive
	}
	return ToneMuted
}

type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendStable     Trend = "stable"
	TrendDecreasing Trend = "decreasing"
)

var AllTrends = []Trend{TrendIncreasing, TrendStable, TrendDecreasing}

func (t Trend) Tone() Tone {
	switch t {
	case TrendIncreasing:
		return ToneDestructive
	case TrendStable:
		return ToneWarning
	case TrendDecreasing:
		return ToneAccent
	}
	return ToneMuted
}
