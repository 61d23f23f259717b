package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yigit/campusconnect/internal/apiclient"
	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/services"
	"github.com/yigit/campusconnect/internal/bootstrap"
	"github.com/yigit/campusconnect/internal/config"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
	"github.com/yigit/campusconnect/internal/pkg/logger"
	"github.com/yigit/campusconnect/internal/pkg/markup"
	"github.com/yigit/campusconnect/internal/session"
)

// errReported marks a failure whose toast was already printed
var errReported = errors.New("command failed")

// cli carries the flags and the per-invocation dependencies
type cli struct {
	configPath string
	tokenDir   string
	verbose    bool

	cfg    *config.Config
	logger zerolog.Logger
	store  *session.FileStore
	sess   *session.Session
	api    *apiclient.Client

	auth      *services.AuthService
	dashboard *services.DashboardService
	alumni    services.AlumniService
	forum     services.ForumService
	profile   services.ProfileService
	chatbot   services.ChatbotService
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "campusctl",
		Short: "CampusConnect from the terminal",
		Long: `campusctl signs in to the CampusConnect backend and works with the alumni
directory, the forum, your profile and the campus assistant.

The session token is kept in a private file under the token directory
(~/.campusconnect unless configured), so it survives between runs.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", bootstrap.ConfigPath(), "path to the YAML config file")
	root.PersistentFlags().StringVar(&c.tokenDir, "token-dir", "", "directory holding the session token (overrides config)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log backend calls to stderr")

	root.AddCommand(
		c.loginCmd(),
		c.logoutCmd(),
		c.registerCmd(),
		c.statusCmd(),
		c.dashboardCmd(),
		c.alumniCmd(),
		c.forumCmd(),
		c.profileCmd(),
		c.chatbotCmd(),
	)
	return root
}

// setup loads config, restores the stored session and wires the services
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level := "warn"
	if c.verbose {
		level = "debug"
	}
	c.logger = logger.Configure(logger.FromSettings(level, "text", cmd.ErrOrStderr()))

	dir := c.tokenDir
	if dir == "" {
		dir = cfg.Session.TokenDir
	}
	if c.store, err = session.NewFileStore(dir); err != nil {
		return err
	}
	// An unreadable token file leaves the CLI signed out
	if c.sess, err = session.New(c.store); err != nil {
		c.logger.Warn().Err(err).Str("path", c.store.Path()).Msg("Ignoring unreadable session file")
	}

	c.api = bootstrap.NewAPIClient(cfg, c.sess, c.logger)
	c.auth = services.NewAuthService(c.api, logger.Component(c.logger, "auth"))
	c.dashboard = services.NewDashboardService(c.api, logger.Component(c.logger, "dashboard"))
	c.alumni = services.NewAlumniService(c.api, logger.Component(c.logger, "alumni"))
	c.forum = services.NewForumService(c.api, markup.NewRenderer(), logger.Component(c.logger, "forum"))
	c.profile = services.NewProfileService(c.api, logger.Component(c.logger, "profile"))
	c.chatbot = services.NewChatbotService(c.api, logger.Component(c.logger, "chatbot"))
	return nil
}

// requireSession stops commands that need a token before they call the backend
func (c *cli) requireSession(w io.Writer) error {
	if c.sess.IsAuthenticated() {
		return nil
	}
	printToasts(w, dto.ErrorToast("Authentication required", "Run `campusctl login` first."))
	return errReported
}

// report prints the toasts and turns a destructive one into a failure
func report(w io.Writer, toasts ...dto.Toast) error {
	printToasts(w, toasts...)
	for _, t := range toasts {
		if t.IsError() {
			return errReported
		}
	}
	return nil
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			msg := err.Error()
			if apperrors.Is(err, apperrors.ErrTransport) {
				msg = "cannot reach the backend: " + msg
			}
			fmt.Fprintln(os.Stderr, errorStyle.Render(strings.TrimSpace(msg)))
		}
		os.Exit(1)
	}
}
