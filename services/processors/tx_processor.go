package processors

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"fmt"
	"time"

	// Local Packages
	models "fraud-dash/models"

	// External Packages
	"go.uber.org/zap"
)

type TxRepository interface {
	InsertTransactions(ctx context.Context, txs []interface{}) error
}

// TxProcessor archives published feed records.
type TxProcessor struct {
	Logger *zap.Logger
	TxRepo TxRepository
	now    func() time.Time
}

func NewTxProcessor(logger *zap.Logger, txRepo TxRepository) *TxProcessor {
	return &TxProcessor{TxRepo: txRepo, Logger: logger, now: time.Now}
}

// ProcessRecords decodes the batch and inserts it. Records that do not decode
// or carry no id are returned as rejected for dead-lettering; an insert
// failure fails the whole batch.
func (p *TxProcessor) ProcessRecords(ctx context.Context, records []models.Record) ([]models.Record, error) {
	if len(records) == 0 {
		return nil, nil
	}

	archivedAt := p.now().UTC()
	txs := make([]interface{}, 0, len(records))
	var rejected []models.Record
	for _, record := range records {
		var tx models.Transaction
		if err := json.Unmarshal(record.Value, &tx); err != nil {
			p.Logger.Error("failed to unmarshal transaction", zap.ByteString("key", record.Key), zap.Error(err))
			rejected = append(rejected, record)
			continue
		}
		if tx.ID == "" {
			p.Logger.Warn("rejecting transaction without id", zap.ByteString("key", record.Key))
			rejected = append(rejected, record)
			continue
		}
		txs = append(txs, tx.Transform(archivedAt))
	}

	if len(txs) == 0 {
		return rejected, nil
	}
	if err := p.TxRepo.InsertTransactions(ctx, txs); err != nil {
		return rejected, fmt.Errorf("failed to insert transactions: %w", err)
	}
	return rejected, nil
}
