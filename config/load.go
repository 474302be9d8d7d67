package config

import (
	// Go Internal Packages
	"fmt"
	"os"
	"strings"

	// External Packages
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
)

// Load loads the default configuration and overrides it with the config file
// at path. A missing file is not an error, the defaults are used.
func Load(path string) (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(DefaultConfig), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("cannot load default config: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err = k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("cannot load config file %s: %w", path, err)
			}
		}
	}
	return k, nil
}

// Unmarshal decodes the koanf tree and applies the secrets from the environment
func Unmarshal(k *koanf.Koanf) (Config, error) {
	appKonf := Config{}
	if err := k.Unmarshal("", &appKonf); err != nil {
		return appKonf, fmt.Errorf("cannot unmarshal config: %w", err)
	}
	return LoadSecrets(appKonf), nil
}

// LoadSecrets Loads the secret variables and overrides the config
func LoadSecrets(k Config) Config {
	if mongoURI := os.Getenv("MONGO_URI"); mongoURI != "" {
		k.Mongo.URI = mongoURI
	}

	if redisURI := os.Getenv("REDIS_URI"); redisURI != "" {
		k.Redis.URI = redisURI
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		k.Redis.Password = redisPassword
	}

	if kafkaBrokers := os.Getenv("KAFKA_BROKERS"); kafkaBrokers != "" {
		k.Kafka.Brokers = strings.Split(kafkaBrokers, ",")
	}

	if port := os.Getenv("HTTP_PORT"); port != "" {
		k.HTTP.Port = port
	}

	if isProdMode := os.Getenv("IS_PROD_MODE"); isProdMode != "" {
		k.IsProdMode = isProdMode == "true"
	}
	return k
}
