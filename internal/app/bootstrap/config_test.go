package bootstrap

import (
	"testing"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validAppConfig() AppConfig {
	return AppConfig{
		DataDir:    "./data",
		SessionKey: "a-strong-enough-key-for-testing-purposes",
		AuthMode:   "password",
	}
}

func TestValidateConfig_PasswordMode(t *testing.T) {
	core := &config.CoreConfig{Env: "dev"}
	if err := ValidateConfig(core, validAppConfig(), testLogger()); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestValidateConfig_EmptyDataDir(t *testing.T) {
	cfg := validAppConfig()
	cfg.DataDir = ""
	if err := ValidateConfig(&config.CoreConfig{Env: "dev"}, cfg, testLogger()); err == nil {
		t.Error("expected empty data_dir to be rejected")
	}
}

func TestValidateConfig_UnknownAuthMode(t *testing.T) {
	cfg := validAppConfig()
	cfg.AuthMode = "saml"
	if err := ValidateConfig(&config.CoreConfig{Env: "dev"}, cfg, testLogger()); err == nil {
		t.Error("expected unknown auth_mode to be rejected")
	}
}

func TestValidateConfig_ProxyModeRequirements(t *testing.T) {
	cfg := validAppConfig()
	cfg.AuthMode = "proxy"
	if err := ValidateConfig(&config.CoreConfig{Env: "dev"}, cfg, testLogger()); err == nil {
		t.Error("expected proxy mode without proxy_status_url to be rejected")
	}

	cfg.ProxyStatusURL = "https://portal.example.com/.auth/me"
	if err := ValidateConfig(&config.CoreConfig{Env: "dev"}, cfg, testLogger()); err == nil {
		t.Error("expected proxy mode without allowed_principals to be rejected")
	}

	cfg.AllowedPrincipals = []string{"admin@example.com"}
	if err := ValidateConfig(&config.CoreConfig{Env: "dev"}, cfg, testLogger()); err != nil {
		t.Errorf("expected complete proxy config to pass, got %v", err)
	}
}

func TestValidateConfig_RejectsDevKeyInProd(t *testing.T) {
	cfg := validAppConfig()
	cfg.SessionKey = "dev-only-change-me-please-0123456789ABCDEF"
	if err := ValidateConfig(&config.CoreConfig{Env: "prod"}, cfg, testLogger()); err == nil {
		t.Error("expected the development session key to be rejected in prod")
	}
}

func TestSplitPrincipals(t *testing.T) {
	got := splitPrincipals(" admin@example.com, ,user@example.com ,")
	if len(got) != 2 || got[0] != "admin@example.com" || got[1] != "user@example.com" {
		t.Errorf("unexpected parse result: %v", got)
	}

	if got := splitPrincipals(""); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}
