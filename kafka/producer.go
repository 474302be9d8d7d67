package kafka

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"fmt"

	// Local Packages
	models "fraud-dash/models"

	// External Packages
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

// Producer publishes feed records to a topic, keyed by transaction id.
type Producer struct {
	Client *kgo.Client
	Config *models.ProducerConfig
	Logger *zap.Logger
}

func NewProducer(conf *models.ProducerConfig, metrics *kprom.Metrics, logger *zap.Logger) (*Producer, error) {
	opts := []kgo.Opt{
		kgo.SeedBrokers(conf.Brokers...),    // Connects to Kafka brokers
		kgo.DefaultProduceTopic(conf.Topic), // Every record goes to the feed topic
		kgo.WithHooks(metrics),              // Attaches monitoring hooks
		kgo.RequiredAcks(kgo.LeaderAck()),   // The feed is synthetic, leader ack is enough
		kgo.DisableIdempotentWrite(),        // Required by LeaderAck
		kgo.ProducerLinger(0),               // One record per tick, nothing to batch
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create kafka producer: %w", err)
	}
	return &Producer{Client: client, Config: conf, Logger: logger}, nil
}

func (p *Producer) Name() string {
	return "kafka"
}

// Deliver produces the records synchronously and returns the first failure.
func (p *Producer) Deliver(ctx context.Context, txs []models.Transaction) error {
	records := make([]*kgo.Record, 0, len(txs))
	for _, tx := range txs {
		value, err := json.Marshal(tx)
		if err != nil {
			return fmt.Errorf("failed to marshal transaction %s: %w", tx.ID, err)
		}
		records = append(records, &kgo.Record{Key: []byte(tx.ID), Value: value})
	}

	if err := p.Client.ProduceSync(ctx, records...).FirstErr(); err != nil {
		return err
	}
	p.Logger.Debug("published feed records", zap.Int("count", len(records)), zap.String("topic", p.Config.Topic))
	return nil
}

// Close flushes pending records and closes the client.
func (p *Producer) Close(ctx context.Context) {
	if err := p.Client.Flush(ctx); err != nil {
		p.Logger.Warn("kafka flush interrupted", zap.Error(err))
	}
	p.Client.Close()
}
