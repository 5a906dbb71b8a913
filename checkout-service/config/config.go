package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceName string     `mapstructure:"service_name"`
	Env         string     `mapstructure:"env"`
	Version     string     `mapstructure:"version"`
	Port        string     `mapstructure:"port"`
	LogLevel    string     `mapstructure:"log_level"`
	Database    Database   `mapstructure:"database"`
	AWS         AWS        `mapstructure:"aws"`
	Telemetry   Telemetry  `mapstructure:"telemetry"`
	Embedded    Embedded   `mapstructure:"embedded"`
	Brands      Brands     `mapstructure:"brands"`
	Tracking    Tracking   `mapstructure:"tracking"`
	Subscriber  Subscriber `mapstructure:"subscriber"`
}

type Database struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

type AWS struct {
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	SNSTopicArn     string `mapstructure:"sns_topic_arn"`
	SQSQueueURL     string `mapstructure:"sqs_queue_url"`
}

type Telemetry struct {
	Enabled      bool   `mapstructure:"enabled"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

// Embedded configures checkouts running inside a parent frame
type Embedded struct {
	UnsupportedPaymentMethods []string `mapstructure:"unsupported_payment_methods"`
}

type Brands struct {
	Default string              `mapstructure:"default"`
	Entries []domain.BrandEntry `mapstructure:"entries"`
}

// Tracking configures how step events leave the process
type Tracking struct {
	Buffer  int  `mapstructure:"buffer"`
	Publish bool `mapstructure:"publish"`
	Archive bool `mapstructure:"archive"`
}

type Subscriber struct {
	Enabled bool `mapstructure:"enabled"`
	Workers int  `mapstructure:"workers"`
	Readers int  `mapstructure:"readers"`
}

// ReadConfig reads the file named after ENVIRONMENT next to this package
func ReadConfig() (*Config, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return nil, fmt.Errorf("unable to get current file")
	}
	return readConfig(viper.New(), filepath.Dir(filename))
}

func readConfig(v *viper.Viper, configDir string) (*Config, error) {
	v.SetConfigName(getConfigName())
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	// Allow environment variables to override config
	v.SetEnvPrefix("CHECKOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func getConfigName() string {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		return "local"
	}
	return env
}

func setDefaults(v *viper.Viper) {
	// Service defaults
	v.SetDefault("service_name", "checkout-service")
	v.SetDefault("env", "local")
	v.SetDefault("version", "1.0.0")
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "checkout_system")
	v.SetDefault("database.ssl_mode", "disable")

	// AWS defaults
	v.SetDefault("aws.region", "us-east-1")

	v.SetDefault("telemetry.enabled", true)

	v.SetDefault("tracking.buffer", 256)
	v.SetDefault("tracking.publish", true)
	v.SetDefault("tracking.archive", true)

	v.SetDefault("subscriber.enabled", true)
	v.SetDefault("subscriber.workers", 10)
	v.SetDefault("subscriber.readers", 1)
}

// GetDatabaseURL constructs database URL from config
func (c *Config) GetDatabaseURL() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// BrandCatalog indexes the configured brands
func (c *Config) BrandCatalog() domain.BrandCatalog {
	return domain.NewBrandCatalog(c.Brands.Entries, c.Brands.Default)
}
