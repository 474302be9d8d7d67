package kafka

import (
	// Go Internal Packages
	"context"
	"testing"
	"time"

	// Local Packages
	models "fraud-dash/models"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func batch(ks ...string) []models.Record {
	records := make([]models.Record, len(ks))
	for i, k := range ks {
		records[i] = models.Record{Key: []byte(k), Value: []byte(`{"id":"` + k + `"}`), Topic: testTopic}
	}
	return records
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name       string
		processor  *fakeProcessor
		dlq        *fakeDLQ
		wantCommit bool
		wantCalls  int
		wantDLQ    []string
	}{
		{
			name:       "clean batch",
			processor:  &fakeProcessor{},
			dlq:        &fakeDLQ{},
			wantCommit: true,
		},
		{
			name:       "rejected records are dead-lettered",
			processor:  &fakeProcessor{reject: map[string]bool{"b": true}},
			dlq:        &fakeDLQ{},
			wantCommit: true,
			wantCalls:  1,
			wantDLQ:    []string{"b"},
		},
		{
			name:       "failed batch is dead-lettered whole",
			processor:  &fakeProcessor{err: assert.AnError},
			dlq:        &fakeDLQ{},
			wantCommit: true,
			wantCalls:  1,
			wantDLQ:    []string{"a", "b", "c"},
		},
		{
			name:       "dead-letter failure blocks commit",
			processor:  &fakeProcessor{reject: map[string]bool{"c": true}},
			dlq:        &fakeDLQ{err: assert.AnError},
			wantCommit: false,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Consumer{Processor: tt.processor, DLQ: tt.dlq, Logger: zap.NewNop()}

			assert.Equal(t, tt.wantCommit, c.settle(context.Background(), batch("a", "b", "c")))

			calls, records := tt.dlq.snapshot()
			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantDLQ == nil {
				assert.Empty(t, records)
			} else {
				assert.Equal(t, tt.wantDLQ, keys(records))
			}
		})
	}
}

func committedOffset(c *Consumer) int64 {
	offsets := c.Client.CommittedOffsets()
	if offsets == nil {
		return -1
	}
	eo, ok := offsets[testTopic][0]
	if !ok {
		return -1
	}
	return eo.Offset
}

func runPoll(t *testing.T, c *Consumer) (stop func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Poll(ctx) }()

	return func() {
		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Fatal("Poll did not return after cancel")
		}
	}
}

func TestPollDeadLettersFailedBatchAndCommits(t *testing.T) {
	brokers := newCluster(t)
	producer := newTestProducer(t, brokers)
	require.NoError(t, producer.Deliver(testContext(t), []models.Transaction{{ID: "tx-1"}, {ID: "tx-2"}}))

	dlq := &fakeDLQ{}
	c := newTestConsumer(t, brokers, &fakeProcessor{err: assert.AnError}, dlq)
	stop := runPoll(t, c)

	require.Eventually(t, func() bool { return committedOffset(c) == 2 }, 15*time.Second, 20*time.Millisecond)
	stop()

	calls, records := dlq.snapshot()
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"tx-1", "tx-2"}, keys(records))
	assert.Equal(t, testTopic, records[0].Topic)
}

func TestPollDoesNotCommitWhenDeadLetterFails(t *testing.T) {
	brokers := newCluster(t)
	producer := newTestProducer(t, brokers)
	require.NoError(t, producer.Deliver(testContext(t), []models.Transaction{{ID: "tx-1"}, {ID: "tx-2"}}))

	failing := &fakeDLQ{err: assert.AnError}
	first := newTestConsumer(t, brokers, &fakeProcessor{err: assert.AnError}, failing)
	stop := runPoll(t, first)
	require.Eventually(t, func() bool {
		calls, _ := failing.snapshot()
		return calls > 0
	}, 15*time.Second, 20*time.Millisecond)
	stop()

	// the group has no commit, so the next member gets the batch again
	processor := &fakeProcessor{}
	second := newTestConsumer(t, brokers, processor, &fakeDLQ{})
	stop = runPoll(t, second)
	require.Eventually(t, func() bool { return len(processor.seen()) >= 2 }, 15*time.Second, 20*time.Millisecond)
	stop()

	assert.Equal(t, []string{"tx-1", "tx-2"}, processor.seen()[:2])
}
