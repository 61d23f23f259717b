package bootstrap

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yigit/campusconnect/internal/apiclient"
	appControllers "github.com/yigit/campusconnect/internal/app/controllers"
	appRoutes "github.com/yigit/campusconnect/internal/app/routes"
	appServices "github.com/yigit/campusconnect/internal/app/services"
	"github.com/yigit/campusconnect/internal/app/views"
	"github.com/yigit/campusconnect/internal/config"
	appMiddleware "github.com/yigit/campusconnect/internal/middleware"
	"github.com/yigit/campusconnect/internal/pkg/helpers"
	"github.com/yigit/campusconnect/internal/pkg/logger"
	"github.com/yigit/campusconnect/internal/pkg/markup"
	"github.com/yigit/campusconnect/internal/session"
)

// DefaultConfigPath is used when CONFIG_PATH is not set
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	API              *apiclient.Client
	AuthService      *appServices.AuthService
	DashboardService *appServices.DashboardService
	AlumniService    appServices.AlumniService  // Interface type
	ForumService     appServices.ForumService   // Interface type
	ProfileService   appServices.ProfileService // Interface type
	ChatbotService   appServices.ChatbotService // Interface type
	Conversations    *appServices.ConversationStore
	Controllers      appRoutes.Controllers
	AuthMiddleware   *appMiddleware.AuthMiddleware
	Flash            *appMiddleware.Flash
	Renderer         *views.Renderer
	Logger           zerolog.Logger
}

// ConfigPath returns the config file location, honouring CONFIG_PATH
func ConfigPath() string {
	return config.GetEnv("CONFIG_PATH", DefaultConfigPath)
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.FromSettings(cfg.Logging.Level, cfg.Logging.Format, nil))

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// NewAPIClient builds the backend client shared by the web server and the CLI
func NewAPIClient(cfg *config.Config, tokens apiclient.TokenSource, lgr zerolog.Logger) *apiclient.Client {
	return apiclient.New(apiclient.Config{
		BaseURL:     cfg.API.BaseURL,
		TokenHeader: cfg.API.TokenHeader,
		Timeout:     helpers.ParseDuration(cfg.API.Timeout, 0),
	}, tokens, lgr)
}

// BuildDependencies initializes the API client, services, and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	if err := cfg.ValidateWeb(); err != nil {
		return nil, fmt.Errorf("invalid web configuration: %w", err)
	}

	deps := &Dependencies{Logger: lgr}

	sessionSealer, err := session.NewSealer(cfg.Session.Secret, "session")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session sealer: %w", err)
	}
	flashSealer, err := session.NewSealer(cfg.Session.Secret, "flash")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize flash sealer: %w", err)
	}

	deps.Renderer, err = views.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	// One client serves every request; the token comes from the request's session
	deps.API = NewAPIClient(cfg, session.ContextSource{}, lgr)

	deps.AuthService = appServices.NewAuthService(deps.API, logger.Component(lgr, "auth"))
	deps.DashboardService = appServices.NewDashboardService(deps.API, logger.Component(lgr, "dashboard"))
	deps.AlumniService = appServices.NewAlumniService(deps.API, logger.Component(lgr, "alumni"))
	deps.ForumService = appServices.NewForumService(deps.API, markup.NewRenderer(), logger.Component(lgr, "forum"))
	deps.ProfileService = appServices.NewProfileService(deps.API, logger.Component(lgr, "profile"))
	deps.ChatbotService = appServices.NewChatbotService(deps.API, logger.Component(lgr, "chatbot"))
	deps.Conversations = appServices.NewConversationStore(cfg.Session.ConversationLimit)

	deps.Flash = appMiddleware.NewFlash(flashSealer, cfg.Session.CookieSecure, lgr)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(sessionSealer, session.CookieOptions{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.CookieSecure,
		MaxAge: helpers.ParseDuration(cfg.Session.CookieMaxAge, 7*24*time.Hour),
	}, deps.Flash, lgr)

	deps.Controllers = appRoutes.Controllers{
		Index:     appControllers.NewIndexController(),
		Auth:      appControllers.NewAuthController(deps.AuthService, deps.Flash),
		Dashboard: appControllers.NewDashboardController(deps.DashboardService),
		Alumni:    appControllers.NewAlumniController(deps.AlumniService, deps.Flash),
		Forum:     appControllers.NewForumController(deps.ForumService),
		Profile:   appControllers.NewProfileController(deps.ProfileService),
		Chatbot:   appControllers.NewChatbotController(deps.ChatbotService, deps.Conversations, deps.Flash, cfg.Session.CookieSecure, lgr),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.HTMLRender = deps.Renderer
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.SecurityHeaders(),
		deps.Flash.Middleware(),
		deps.AuthMiddleware.LoadSession(),
		appMiddleware.ErrorHandler(),
	)

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)
	return router
}
