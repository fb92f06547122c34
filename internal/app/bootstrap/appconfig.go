// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration: ports, TLS, logging and
// the like stay in CoreConfig.
type AppConfig struct {
	// Storage configuration
	DataDir string // directory holding the JSON document store

	// Session management configuration
	SessionKey    string // secret key for signing session cookies (must be strong in production)
	SessionName   string // cookie name for sessions (default: reviewhub-session)
	SessionDomain string // cookie domain (blank means current host)

	// Authentication variant: "password" (local directory check) or
	// "proxy" (platform auth proxy). Selected once at deploy time.
	AuthMode string

	// Platform auth proxy configuration (only used when AuthMode is "proxy")
	ProxyStatusURL    string   // endpoint reporting the current client principal
	ProxyLoginURL     string   // platform sign-in path for redirects
	ProxyLogoutURL    string   // platform sign-out path for redirects
	AllowedPrincipals []string // principals permitted to sign in via the proxy

	// Seed accounts created on first run
	AdminEmail        string
	SeedAdminPassword string
	SeedUserEmail     string
	SeedUserPassword  string

	// Simulated pacing
	LoginDelay time.Duration // artificial delay before the sign-in result
	ChatDelay  time.Duration // artificial delay before the assistant reply
}
