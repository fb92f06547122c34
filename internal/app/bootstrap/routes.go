// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authproxyfeature "github.com/dalemusser/reviewhub/internal/app/features/authproxy"
	chatfeature "github.com/dalemusser/reviewhub/internal/app/features/chat"
	healthfeature "github.com/dalemusser/reviewhub/internal/app/features/health"
	loginfeature "github.com/dalemusser/reviewhub/internal/app/features/login"
	logoutfeature "github.com/dalemusser/reviewhub/internal/app/features/logout"
	submissionsfeature "github.com/dalemusser/reviewhub/internal/app/features/submissions"
	teamsfeature "github.com/dalemusser/reviewhub/internal/app/features/teams"
	userinfofeature "github.com/dalemusser/reviewhub/internal/app/features/userinfo"
	usersfeature "github.com/dalemusser/reviewhub/internal/app/features/users"
	"github.com/dalemusser/reviewhub/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, store loading, and the Startup
// hook have completed. The handler is a JSON API: the session middleware
// runs globally so auth.CurrentUser works in every feature, and the
// auth_mode config key decides which sign-in surface is mounted. The two
// variants never coexist in one deployment.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if signed in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Local, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Authentication, selected by deployment
	switch appCfg.AuthMode {
	case "proxy":
		proxyHandler := authproxyfeature.NewHandler(
			appCfg.ProxyStatusURL,
			appCfg.ProxyLoginURL,
			appCfg.ProxyLogoutURL,
			appCfg.AllowedPrincipals,
			appCfg.AdminEmail,
			coreCfg.Env == "dev",
			sessionMgr,
			logger,
		)
		r.Mount("/auth", authproxyfeature.Routes(proxyHandler))
	default:
		loginHandler := loginfeature.NewHandler(deps.Directory, sessionMgr, appCfg.LoginDelay, logger)
		r.Mount("/login", loginfeature.Routes(loginHandler))

		logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
		r.Mount("/logout", logoutfeature.Routes(logoutHandler))
	}

	// Current identity
	userinfoHandler := userinfofeature.NewHandler()
	r.Mount("/me", userinfofeature.Routes(userinfoHandler))

	// Admin directory management
	teamsHandler := teamsfeature.NewHandler(deps.Directory, logger)
	r.Mount("/teams", teamsfeature.Routes(teamsHandler, sessionMgr))

	usersHandler := usersfeature.NewHandler(deps.Directory, logger)
	r.Mount("/users", usersfeature.Routes(usersHandler, sessionMgr))

	// Review workflow
	submissionsHandler := submissionsfeature.NewHandler(deps.Submissions, logger)
	r.Mount("/submissions", submissionsfeature.Routes(submissionsHandler, sessionMgr))

	// Simulated assistant
	chatHandler := chatfeature.NewHandler(appCfg.ChatDelay, logger)
	r.Mount("/chat", chatfeature.Routes(chatHandler, sessionMgr))

	return r, nil
}
