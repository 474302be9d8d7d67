package config

import (
	// Go Internal Packages
	"os"
	"path/filepath"
	"testing"
	"time"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDefaults(t *testing.T) Config {
	t.Helper()
	k, err := Load("")
	require.NoError(t, err)
	c, err := Unmarshal(k)
	require.NoError(t, err)
	return c
}

func TestDefaultConfigIsValid(t *testing.T) {
	c := loadDefaults(t)

	require.NoError(t, c.Validate())
	assert.Equal(t, "fraud-dash", c.Application)
	assert.Equal(t, 20, c.Feed.Capacity)
	assert.Equal(t, 10, c.Feed.InitialSize)
	assert.Equal(t, 3*time.Second, c.Feed.Interval)
	assert.Equal(t, 10, c.Feed.AmountMin)
	assert.Equal(t, 5009, c.Feed.AmountMax)
	assert.Equal(t, 1000, c.Feed.UserIDMax)
	assert.False(t, c.Feed.PreserveOnRestart)
	assert.Equal(t, 15*time.Second, c.HTTP.ReadTimeout)
	assert.NoError(t, c.ValidateArchiver())
}

func TestFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	body := []byte("feed:\n  capacity: 50\n  interval: \"500ms\"\nredis:\n  enabled: true\n")
	require.NoError(t, os.WriteFile(path, body, 0o600))

	k, err := Load(path)
	require.NoError(t, err)
	c, err := Unmarshal(k)
	require.NoError(t, err)

	assert.Equal(t, 50, c.Feed.Capacity)
	assert.Equal(t, 500*time.Millisecond, c.Feed.Interval)
	assert.Equal(t, 10, c.Feed.InitialSize)
	assert.True(t, c.Redis.Enabled)
}

func TestMissingFileFallsBackToDefaults(t *testing.T) {
	k, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, "fraud-dash", k.String("application"))
}

func TestLoadSecrets(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("REDIS_URI", "cache:6379")
	t.Setenv("IS_PROD_MODE", "true")

	c := loadDefaults(t)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.Kafka.Brokers)
	assert.Equal(t, "cache:6379", c.Redis.URI)
	assert.True(t, c.IsProdMode)
}

func TestValidate(t *testing.T) {
	c := loadDefaults(t)
	c.Application = ""
	c.Feed.Capacity = 5
	c.Feed.AmountMax = 1
	c.Feed.PreserveOnRestart = true

	err := c.Validate()
	require.Error(t, err)
	for _, field := range []string{"application", "feed.initial_size", "feed.amount_max", "feed.preserve_on_restart"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestValidatePublishNeedsTopic(t *testing.T) {
	c := loadDefaults(t)
	c.Kafka.Publish = true
	c.Kafka.Topic = ""

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kafka.topic")
}
