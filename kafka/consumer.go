package kafka

import (
	// Go Internal Packages
	"context"
	"errors"
	"fmt"

	// Local Packages
	models "fraud-dash/models"
	utils "fraud-dash/utils"

	// External Packages
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

type Consumer struct {
	Client    *kgo.Client
	Config    *models.ConsumerConfig
	Processor Processor
	DLQ       DeadLetterQueue
	Logger    *zap.Logger
}

// Processor archives a batch and returns the records it could not accept.
type Processor interface {
	ProcessRecords(ctx context.Context, records []models.Record) ([]models.Record, error)
}

type DeadLetterQueue interface {
	Send(ctx context.Context, records []models.Record) error
}

// NewConsumer creates a new consumer in the configured group
// (PS: Must call Poll to start consuming the records)
func NewConsumer(conf *models.ConsumerConfig, logger *zap.Logger, processor Processor, dlq DeadLetterQueue, metrics *kprom.Metrics) (*Consumer, error) {
	c := &Consumer{Config: conf, Processor: processor, DLQ: dlq, Logger: logger}

	opts := []kgo.Opt{
		kgo.SeedBrokers(conf.Brokers...), // Connects to Kafka brokers
		kgo.ConsumerGroup(conf.Name),     // Specifies the consumer group
		kgo.ConsumeTopics(conf.Topic),    // Specifies a single topic to consume
		kgo.WithHooks(metrics),           // Attaches monitoring hooks
		kgo.DisableAutoCommit(),          // Disables auto-commit
		kgo.BlockRebalanceOnPoll(),       // Blocks rebalancing until the poll loop is running
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create kafka consumer: %w", err)
	}

	c.Client = client
	return c, nil
}

// Poll polls for records until the context is canceled. Records the processor
// rejects are dead-lettered and committed so the group does not stall on them.
func (c *Consumer) Poll(ctx context.Context) error {
	defer func() {
		c.Client.AllowRebalance()
		c.Client.Close()
	}()

	consumerName := c.Config.Name
	recordsPerPoll := c.Config.RecordsPerPoll

	for {
		if ctx.Err() != nil {
			c.Logger.Warn("Polling stopped: context canceled")
			return nil
		}

		fetches := c.Client.PollRecords(ctx, recordsPerPoll)
		if fetches.IsClientClosed() {
			return errors.New("kafka client closed")
		}
		if errors.Is(fetches.Err0(), context.Canceled) {
			return nil
		}
		fetches.EachError(func(topic string, partition int32, err error) {
			c.Logger.Error("fetch error", zap.String("topic", topic), zap.Int32("partition", partition), zap.Error(err))
		})

		var partitions []int32
		fetches.EachPartition(func(p kgo.FetchTopicPartition) {
			if len(p.Records) > 0 {
				partitions = append(partitions, p.Partition)
			}
		})

		records := make([]models.Record, len(fetches.Records()))
		for idx, record := range fetches.Records() {
			records[idx] = models.Record{
				Key:   record.Key,
				Value: record.Value,
				Topic: record.Topic,
			}
		}
		if len(records) == 0 {
			c.Client.AllowRebalance()
			continue
		}

		c.Logger.Info(fmt.Sprintf("%s: polled records", consumerName),
			zap.Int("count", len(records)),
			zap.String("partitions", utils.JoinInt32Slice(partitions)))

		if !c.settle(ctx, records) {
			c.Client.AllowRebalance()
			continue
		}

		if err := c.Client.CommitRecords(ctx, fetches.Records()...); err != nil {
			c.Logger.Error("Failed to commit records", zap.Error(err))
		}
		c.Client.AllowRebalance()
	}
}

// settle hands the batch to the processor and dead-letters whatever it could
// not accept. It reports whether the batch may be committed.
func (c *Consumer) settle(ctx context.Context, records []models.Record) bool {
	rejected, err := c.Processor.ProcessRecords(ctx, records)
	if err != nil {
		c.Logger.Error("Failed to process records", zap.Error(err))
		rejected = records
	}
	if len(rejected) == 0 {
		return true
	}

	if err = c.DLQ.Send(ctx, rejected); err != nil {
		c.Logger.Error("Failed to dead-letter records, not committing", zap.Int("count", len(rejected)), zap.Error(err))
		return false
	}
	c.Logger.Warn("Dead-lettered records", zap.Int("count", len(rejected)))
	return true
}
