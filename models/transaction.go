package models

import (
	// Go Internal Packages
	"time"
)

// Status is the display verdict of a synthetic transaction.
type Status string

const (
	StatusApproved Status = "approved"
	StatusFlagged  Status = "flagged"
	StatusBlocked  Status = "blocked"
)

// Risk score thresholds. A score at or above BlockThreshold is blocked, at or
// above FlagThreshold is flagged, anything lower is approved.
const (
	BlockThreshold = 80.0
	FlagThreshold  = 60.0
)

var AllStatuses = []Status{StatusApproved, StatusFlagged, StatusBlocked}

// StatusForScore is a step function of the score with no hysteresis.
func StatusForScore(score float64) Status {
	switch {
	case score >= BlockThreshold:
		return StatusBlocked
	case score >= FlagThreshold:
		return StatusFlagged
	default:
		return StatusApproved
	}
}

// Tone is the display attribute for the status badge.
func (s Status) Tone() Tone {
	switch s {
	case StatusBlocked:
		return ToneDestructive
	case StatusFlagged:
		return ToneWarning
	case StatusApproved:
		return ToneAccent
	}
	return ToneMuted
}

// Label is the badge caption shown next to the score.
func (s Status) Label() string {
	switch s {
	case StatusBlocked:
		return "High Risk"
	case StatusFlagged:
		return "Medium Risk"
	case StatusApproved:
		return "Approved"
	}
	return "Unknown"
}

// Transaction is a synthetic feed record. It is never modified after creation.
type Transaction struct {
	ID         string    `json:"id"`
	Amount     int       `json:"amount"`
	Merchant   string    `json:"merchant"`
	Location   string    `json:"location"`
	CardNumber string    `json:"card_number"`
	RiskScore  float64   `json:"risk_score"`
	Status     Status    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
	UserID     string    `json:"user_id"`
}

// Reviewable reports whether the row offers the Review/Block affordances.
func (t Transaction) Reviewable() bool {
	return t.Status == StatusFlagged
}

type MongoTransaction struct {
	ID         string    `json:"id" bson:"_id"`
	Amount     int       `json:"amount" bson:"amount"`
	Merchant   string    `json:"merchant" bson:"merchant"`
	Location   string    `json:"location" bson:"location"`
	RiskScore  float64   `json:"risk_score" bson:"risk_score"`
	Status     Status    `json:"status" bson:"status"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
	UserID     string    `json:"user_id" bson:"user_id"`
	ArchivedAt time.Time `json:"archived_at" bson:"archived_at"`
}

// Transform drops the masked card number, which is never archived.
func (t *Transaction) Transform(archivedAt time.Time) MongoTransaction {
	return MongoTransaction{
		ID:         t.ID,
		Amount:     t.Amount,
		Merchant:   t.Merchant,
		Location:   t.Location,
		RiskScore:  t.RiskScore,
		Status:     t.Status,
		Timestamp:  t.Timestamp,
		UserID:     t.UserID,
		ArchivedAt: archivedAt,
	}
}
