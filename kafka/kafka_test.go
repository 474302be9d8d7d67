package kafka

import (
	// Go Internal Packages
	"context"
	"sync"
	"testing"
	"time"

	// Local Packages
	models "fraud-dash/models"

	// External Packages
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kfake"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

const testTopic = "feed-transactions"

// newCluster starts an in-process kafka cluster with a single-partition topic.
func newCluster(t *testing.T) []string {
	t.Helper()
	cluster, err := kfake.NewCluster(kfake.NumBrokers(1), kfake.SeedTopics(1, testTopic))
	require.NoError(t, err)
	t.Cleanup(cluster.Close)
	return cluster.ListenAddrs()
}

func newTestProducer(t *testing.T, brokers []string) *Producer {
	t.Helper()
	p, err := NewProducer(&models.ProducerConfig{Brokers: brokers, Topic: testTopic}, kprom.NewMetrics("producer_test"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { p.Close(context.Background()) })
	return p
}

func newTestConsumer(t *testing.T, brokers []string, processor Processor, dlq DeadLetterQueue) *Consumer {
	t.Helper()
	c, err := NewConsumer(&models.ConsumerConfig{
		Brokers:        brokers,
		Name:           "feed-archiver-test",
		Topic:          testTopic,
		RecordsPerPoll: 100,
	}, zap.NewNop(), processor, dlq, kprom.NewMetrics("consumer_test"))
	require.NoError(t, err)
	return c
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// fakeProcessor records every key it sees, fails with err when set and
// rejects the keys listed in reject.
type fakeProcessor struct {
	err    error
	reject map[string]bool

	mu   sync.Mutex
	keys []string
}

func (p *fakeProcessor) ProcessRecords(_ context.Context, records []models.Record) ([]models.Record, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var rejected []models.Record
	for _, r := range records {
		p.keys = append(p.keys, string(r.Key))
		if p.reject[string(r.Key)] {
			rejected = append(rejected, r)
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return rejected, nil
}

func (p *fakeProcessor) seen() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.keys...)
}

type fakeDLQ struct {
	err error

	mu      sync.Mutex
	calls   int
	records []models.Record
}

func (d *fakeDLQ) Send(_ context.Context, records []models.Record) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	if d.err != nil {
		return d.err
	}
	d.records = append(d.records, records...)
	return nil
}

func (d *fakeDLQ) snapshot() (int, []models.Record) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls, append([]models.Record(nil), d.records...)
}

func keys(records []models.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = string(r.Key)
	}
	return out
}
