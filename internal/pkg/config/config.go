package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ougirez/perdash/internal/pkg/constants"
	"github.com/spf13/viper"
)

type Config struct {
	API    APIConfig    `mapstructure:"api"`
	Store  StoreConfig  `mapstructure:"store"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

type APIConfig struct {
	BaseURL       string        `mapstructure:"base_url" validate:"required,url"`
	Token         string        `mapstructure:"token"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxRetries    uint64        `mapstructure:"max_retries"`
	RetryInterval time.Duration `mapstructure:"retry_interval" validate:"gte=0"`
	UserAgent     string        `mapstructure:"user_agent" validate:"required"`
}

type StoreConfig struct {
	Driver string   `mapstructure:"driver" validate:"oneof=fs s3 memory"`
	Root   string   `mapstructure:"root" validate:"required_if=Driver fs"`
	S3     S3Config `mapstructure:"s3"`
}

type S3Config struct {
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint" validate:"omitempty,url"`
	PathStyle bool   `mapstructure:"path_style"`
}

type ServerConfig struct {
	Addr         string   `mapstructure:"addr" validate:"required"`
	Secret       string   `mapstructure:"secret"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(constants.ViperAPIBaseURLKey, "https://goadmin.ifrc.org/api/v2/")
	v.SetDefault(constants.ViperAPITokenKey, "")
	v.SetDefault(constants.ViperAPITimeoutKey, 60*time.Second)
	v.SetDefault(constants.ViperAPIMaxRetriesKey, 5)
	v.SetDefault(constants.ViperAPIRetryIntervalKey, 500*time.Millisecond)
	v.SetDefault(constants.ViperAPIUserAgentKey, "IFRC-PER-Data-Fetcher")

	v.SetDefault(constants.ViperStoreDriverKey, "fs")
	v.SetDefault(constants.ViperStoreRootKey, "./data")
	v.SetDefault(constants.ViperStoreS3BucketKey, "")
	v.SetDefault(constants.ViperStoreS3RegionKey, "us-east-1")
	v.SetDefault(constants.ViperStoreS3EndpointKey, "")
	v.SetDefault(constants.ViperStoreS3PathStyleKey, false)

	v.SetDefault(constants.ViperServerAddrKey, ":8080")
	v.SetDefault(constants.ViperSecretKey, "")
	v.SetDefault(constants.ViperServerAllowOriginsKey, []string{"http://localhost:3000"})

	v.SetDefault(constants.ViperLogLevelKey, "info")
	v.SetDefault(constants.ViperLogFormatKey, "json")
}

// Load reads defaults, the optional config file and PERDASH_* env vars into v.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("viper.ReadInConfig, file-%s: %w", configFile, err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Store.Driver == "s3" && c.Store.S3.Bucket == "" {
		return fmt.Errorf("invalid config: %s is required for the s3 driver", constants.ViperStoreS3BucketKey)
	}

	return nil
}
