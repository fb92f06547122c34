// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for ReviewHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: data_dir, session_name, etc.
//   - Environment variables: REVIEWHUB_DATA_DIR, REVIEWHUB_SESSION_NAME, etc.
//   - Command-line flags: --data_dir, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "data_dir", Default: "./data", Desc: "Directory for the JSON document store"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "reviewhub-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// Authentication variant
	{Name: "auth_mode", Default: "password", Desc: "Authentication variant: 'password' or 'proxy'"},
	{Name: "proxy_status_url", Default: "", Desc: "Auth proxy status endpoint (proxy mode)"},
	{Name: "proxy_login_url", Default: "/.auth/login/aad", Desc: "Platform sign-in path (proxy mode)"},
	{Name: "proxy_logout_url", Default: "/.auth/logout", Desc: "Platform sign-out path (proxy mode)"},
	{Name: "allowed_principals", Default: "", Desc: "Comma-separated principals allowed through the auth proxy"},

	// Seed accounts (created on first run only)
	{Name: "admin_email", Default: "admin@example.com", Desc: "Email of the default admin account"},
	{Name: "seed_admin_password", Default: "admin123", Desc: "Password of the default admin account"},
	{Name: "seed_user_email", Default: "user@example.com", Desc: "Email of the default user account"},
	{Name: "seed_user_password", Default: "user123", Desc: "Password of the default user account"},

	// Simulated pacing
	{Name: "login_delay", Default: "1s", Desc: "Artificial delay before the sign-in result (e.g., 1s, 500ms)"},
	{Name: "chat_delay", Default: "1s", Desc: "Artificial delay before the assistant reply"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "REVIEWHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		DataDir: appValues.String("data_dir"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		AuthMode:          appValues.String("auth_mode"),
		ProxyStatusURL:    appValues.String("proxy_status_url"),
		ProxyLoginURL:     appValues.String("proxy_login_url"),
		ProxyLogoutURL:    appValues.String("proxy_logout_url"),
		AllowedPrincipals: splitPrincipals(appValues.String("allowed_principals")),

		AdminEmail:        appValues.String("admin_email"),
		SeedAdminPassword: appValues.String("seed_admin_password"),
		SeedUserEmail:     appValues.String("seed_user_email"),
		SeedUserPassword:  appValues.String("seed_user_password"),

		LoginDelay: appValues.Duration("login_delay", time.Second),
		ChatDelay:  appValues.Duration("chat_delay", time.Second),
	}

	return coreCfg, appCfg, nil
}

// splitPrincipals parses the comma-separated allow-list, dropping blanks.
func splitPrincipals(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}

	switch appCfg.AuthMode {
	case "password":
	case "proxy":
		if appCfg.ProxyStatusURL == "" {
			return fmt.Errorf("auth_mode 'proxy' requires proxy_status_url")
		}
		if len(appCfg.AllowedPrincipals) == 0 {
			return fmt.Errorf("auth_mode 'proxy' requires allowed_principals")
		}
	default:
		return fmt.Errorf("auth_mode must be 'password' or 'proxy', got %q", appCfg.AuthMode)
	}

	if coreCfg.Env == "prod" && strings.HasPrefix(appCfg.SessionKey, "dev-only-") {
		return fmt.Errorf("session_key must be changed from the development default in production")
	}

	return nil
}
