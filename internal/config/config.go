package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollPolicy
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollPolicy holds the salary computation policy. These are deployment
// settings, not code constants, so tests and installations can vary them.
type PayrollPolicy struct {
	WorkingDaysPerMonth int
	OvertimeRatePerHour decimal.Decimal
	AllowanceRate       decimal.Decimal
}

// DefaultPayrollPolicy returns the standard policy: 22 working days per
// month, 25 currency units per overtime hour, 10% allowance on basic salary.
func DefaultPayrollPolicy() PayrollPolicy {
	return PayrollPolicy{
		WorkingDaysPerMonth: 22,
		OvertimeRatePerHour: decimal.NewFromInt(25),
		AllowanceRate:       decimal.NewFromFloat(0.10),
	}
}

func Load() (*Config, error) {
	// A missing .env file is fine, env vars may come from the environment.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hr_backend"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	policy, err := loadPayrollPolicy()
	if err != nil {
		return nil, err
	}
	config.Payroll = policy

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadPayrollPolicy() (PayrollPolicy, error) {
	policy := DefaultPayrollPolicy()

	if v := os.Getenv("PAYROLL_WORKING_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days <= 0 {
			return PayrollPolicy{}, fmt.Errorf("invalid PAYROLL_WORKING_DAYS: %q", v)
		}
		policy.WorkingDaysPerMonth = days
	}
	if v := os.Getenv("PAYROLL_OVERTIME_RATE"); v != "" {
		rate, err := decimal.NewFromString(v)
		if err != nil {
			return PayrollPolicy{}, fmt.Errorf("invalid PAYROLL_OVERTIME_RATE: %w", err)
		}
		policy.OvertimeRatePerHour = rate
	}
	if v := os.Getenv("PAYROLL_ALLOWANCE_RATE"); v != "" {
		rate, err := decimal.NewFromString(v)
		if err != nil {
			return PayrollPolicy{}, fmt.Errorf("invalid PAYROLL_ALLOWANCE_RATE: %w", err)
		}
		policy.AllowanceRate = rate
	}

	return policy, nil
}

func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
