package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	ReadTimeout    int      `mapstructure:"read_timeout_seconds"`
	WriteTimeout   int      `mapstructure:"write_timeout_seconds"`
	Timezone       string   `mapstructure:"timezone"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
	// MigrationStrategy selects the migration engine: "golang-migrate" or "goose".
	MigrationStrategy string `mapstructure:"migration_strategy"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
	Issuer           string `mapstructure:"issuer"`
}

type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
	// CasbinModelPath points at the RBAC model used for staff permissions.
	CasbinModelPath string `mapstructure:"casbin_model_path"`
}

type EmailConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	StoreName    string `mapstructure:"store_name"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// MethodCacheTTLSeconds bounds how long the available-methods list is cached.
	MethodCacheTTLSeconds int `mapstructure:"method_cache_ttl_seconds"`
	// RateLimitPerMinute applies to public payment endpoints; 0 disables limiting.
	RateLimitPerMinute int `mapstructure:"rate_limit_per_minute"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// VNPayConfig holds merchant credentials for the VNPAY gateway.
type VNPayConfig struct {
	TmnCode       string `mapstructure:"tmn_code"`
	HashSecret    string `mapstructure:"hash_secret"`
	PaymentURL    string `mapstructure:"payment_url"`
	ReturnURL     string `mapstructure:"return_url"`
	Locale        string `mapstructure:"locale"`
	OrderType     string `mapstructure:"order_type"`
	ExpireMinutes int    `mapstructure:"expire_minutes"`
}

// QRConfig configures the remote VietQR renderer.
type QRConfig struct {
	RendererURL    string `mapstructure:"renderer_url"`
	QuickLinkURL   string `mapstructure:"quick_link_url"`
	ClientID       string `mapstructure:"client_id"`
	APIKey         string `mapstructure:"api_key"`
	Template       string `mapstructure:"template"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	MaxRetries     int    `mapstructure:"max_retries"`
}

func (q *QRConfig) Timeout() time.Duration {
	if q.TimeoutSeconds <= 0 {
		return 3 * time.Second
	}
	return time.Duration(q.TimeoutSeconds) * time.Second
}

const (
	AmountPolicyAdvisory = "advisory"
	AmountPolicyStrict   = "strict"
)

type BankTransferConfig struct {
	// AmountPolicy is "advisory" or "strict".
	AmountPolicy string `mapstructure:"amount_policy"`
	// ClaimTTLHours enables the stale-claim sweep when positive.
	ClaimTTLHours        int `mapstructure:"claim_ttl_hours"`
	SweepIntervalMinutes int `mapstructure:"sweep_interval_minutes"`
}

func (b *BankTransferConfig) StrictAmount() bool {
	return b.AmountPolicy == AmountPolicyStrict
}

func (b *BankTransferConfig) ClaimTTL() time.Duration {
	return time.Duration(b.ClaimTTLHours) * time.Hour
}

func (b *BankTransferConfig) SweepInterval() time.Duration {
	if b.SweepIntervalMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(b.SweepIntervalMinutes) * time.Minute
}

type PaymentMethodsConfig struct {
	Default string `mapstructure:"default"`
}
