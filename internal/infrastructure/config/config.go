package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/vnstore/paycore/internal/shared/config"
)

type Config struct {
	Server         sharedConfig.ServerConfig         `mapstructure:"server"`
	Database       sharedConfig.DatabaseConfig       `mapstructure:"database"`
	Logger         sharedConfig.LoggerConfig         `mapstructure:"logger"`
	Auth           sharedConfig.AuthConfig           `mapstructure:"auth"`
	Email          sharedConfig.EmailConfig          `mapstructure:"email"`
	Redis          sharedConfig.RedisConfig          `mapstructure:"redis"`
	VNPay          sharedConfig.VNPayConfig          `mapstructure:"vnpay"`
	QR             sharedConfig.QRConfig             `mapstructure:"qr"`
	BankTransfer   sharedConfig.BankTransferConfig   `mapstructure:"bank_transfer"`
	PaymentMethods sharedConfig.PaymentMethodsConfig `mapstructure:"payment_methods"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configPath (or configs/config.yaml when empty) and overlays
// PAYCORE_* environment variables.
func Load(env, configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath("../configs")
		viper.AddConfigPath("../../configs")
	}

	// PAYCORE_VNPAY_HASH_SECRET overrides vnpay.hash_secret, and so on.
	viper.SetEnvPrefix("PAYCORE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// Validate rejects configurations the payment core cannot run safely with.
func (c *Config) Validate() error {
	switch c.BankTransfer.AmountPolicy {
	case sharedConfig.AmountPolicyAdvisory, sharedConfig.AmountPolicyStrict:
	default:
		return fmt.Errorf("bank_transfer.amount_policy must be %q or %q, got %q",
			sharedConfig.AmountPolicyAdvisory, sharedConfig.AmountPolicyStrict, c.BankTransfer.AmountPolicy)
	}
	if c.BankTransfer.ClaimTTLHours < 0 {
		return fmt.Errorf("bank_transfer.claim_ttl_hours must not be negative")
	}
	if c.VNPay.ExpireMinutes <= 0 {
		return fmt.Errorf("vnpay.expire_minutes must be positive")
	}
	switch c.Database.MigrationStrategy {
	case "golang-migrate", "goose":
	default:
		return fmt.Errorf("database.migration_strategy must be golang-migrate or goose, got %q", c.Database.MigrationStrategy)
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.base_url", "http://localhost:8080")
	viper.SetDefault("server.read_timeout_seconds", 15)
	viper.SetDefault("server.write_timeout_seconds", 15)
	viper.SetDefault("server.timezone", "Asia/Ho_Chi_Minh")

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "paycore_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)
	viper.SetDefault("database.migration_strategy", "golang-migrate")

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	viper.SetDefault("auth.jwt.secret", "change-me-in-production")
	viper.SetDefault("auth.jwt.access_exp_minutes", 480)
	viper.SetDefault("auth.jwt.issuer", "paycore")
	viper.SetDefault("auth.casbin_model_path", "configs/rbac_model.conf")

	// Email defaults
	viper.SetDefault("email.enabled", false)
	viper.SetDefault("email.smtp_host", "localhost")
	viper.SetDefault("email.smtp_port", 1025)
	viper.SetDefault("email.smtp_user", "")
	viper.SetDefault("email.smtp_password", "")
	viper.SetDefault("email.from_address", "noreply@paycore.local")
	viper.SetDefault("email.from_name", "Paycore")
	viper.SetDefault("email.store_name", "Paycore Store")

	// Redis defaults
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.method_cache_ttl_seconds", 300)
	viper.SetDefault("redis.rate_limit_per_minute", 60)

	// VNPAY sandbox defaults; credentials must come from config or env
	viper.SetDefault("vnpay.tmn_code", "")
	viper.SetDefault("vnpay.hash_secret", "")
	viper.SetDefault("vnpay.payment_url", "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html")
	viper.SetDefault("vnpay.return_url", "http://localhost:8080/vnpay/payment-return")
	viper.SetDefault("vnpay.locale", "vn")
	viper.SetDefault("vnpay.order_type", "other")
	viper.SetDefault("vnpay.expire_minutes", 15)

	// QR renderer defaults
	viper.SetDefault("qr.renderer_url", "https://api.vietqr.io")
	viper.SetDefault("qr.quick_link_url", "https://img.vietqr.io/image")
	viper.SetDefault("qr.template", "compact2")
	viper.SetDefault("qr.timeout_seconds", 3)
	viper.SetDefault("qr.max_retries", 2)

	// Bank transfer defaults
	viper.SetDefault("bank_transfer.amount_policy", "advisory")
	viper.SetDefault("bank_transfer.claim_ttl_hours", 0)
	viper.SetDefault("bank_transfer.sweep_interval_minutes", 30)

	viper.SetDefault("payment_methods.default", "cod")
}
