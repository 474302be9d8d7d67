// Package actions acknowledges the dashboard's operator controls. No action
// changes feed state; a real deployment would forward them to a scoring
// backend, a report export service or a retraining pipeline.
package actions

import (
	// Go Internal Packages
	"context"
	"time"

	// External Packages
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Action string

const (
	ActionReview  Action = "review"
	ActionBlock   Action = "block"
	ActionReport  Action = "report"
	ActionRetrain Action = "retrain"
)

type Acknowledgement struct {
	RequestID  string    `json:"request_id"`
	Action     Action    `json:"action"`
	Target     string    `json:"target,omitempty"`
	Status     string    `json:"status"`
	ReceivedAt time.Time `json:"received_at"`
}

type Hook interface {
	Handle(ctx context.Context, action Action, target string) (Acknowledgement, error)
}

// LoggingHook records the request and acknowledges it.
type LoggingHook struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewLoggingHook(logger *zap.Logger) *LoggingHook {
	return &LoggingHook{logger: logger, now: time.Now}
}

func (h *LoggingHook) Handle(_ context.Context, action Action, target string) (Acknowledgement, error) {
	ack := Acknowledgement{
		RequestID:  uuid.NewString(),
		Action:     action,
		Target:     target,
		Status:     "accepted",
		ReceivedAt: h.now(),
	}
	h.logger.Info("operator action acknowledged",
		zap.String("request_id", ack.RequestID),
		zap.String("action", string(action)),
		zap.String("target", target))
	return ack, nil
}
