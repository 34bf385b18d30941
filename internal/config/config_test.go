package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "secret",
			Name:     "facil",
			SSLMode:  "disable",
		},
		JWT: JWTConfig{
			Secret: "jwt-secret",
		},
		Payroll: PayrollConfig{
			WebhookToken: "payroll-token",
		},
		Timeclock: TimeclockConfig{
			WebhookToken: "timeclock-token",
		},
		StaffSync: StaffSyncConfig{
			Enabled:  false,
			Interval: 24 * time.Hour,
		},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidate_RequiresWebhookTokens(t *testing.T) {
	cfg := validConfig()
	cfg.Payroll.WebhookToken = ""
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "PAYROLL_WEBHOOK_TOKEN") {
		t.Errorf("Validate() = %v, want PAYROLL_WEBHOOK_TOKEN error", err)
	}

	cfg = validConfig()
	cfg.Timeclock.WebhookToken = ""
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "TIMECLOCK_WEBHOOK_TOKEN") {
		t.Errorf("Validate() = %v, want TIMECLOCK_WEBHOOK_TOKEN error", err)
	}
}

func TestValidate_RequiresSyncURLsWhenEnabled(t *testing.T) {
	cfg := validConfig()
	cfg.StaffSync.Enabled = true
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "PAYROLL_BASE_URL") {
		t.Errorf("Validate() = %v, want PAYROLL_BASE_URL error", err)
	}

	cfg.Payroll.BaseURL = "https://payroll.example.com"
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "TIMECLOCK_BASE_URL") {
		t.Errorf("Validate() = %v, want TIMECLOCK_BASE_URL error", err)
	}
}
