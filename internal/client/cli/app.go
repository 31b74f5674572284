package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/api"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/config"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/form"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/models"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/notify"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/repositories/metadata"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/services"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/session"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/storage"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/logging"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// Pinger reports whether the API answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators of App.
type Deps struct {
	Auth     services.AuthService
	Feed     services.FeedService
	Pinger   Pinger
	Notifier notify.Notifier
	Log      logging.Logger
}

type App struct {
	config   *config.Config
	auth     services.AuthService
	feed     services.FeedService
	pinger   Pinger
	notifier notify.Notifier
	log      logging.Logger

	reader *bufio.Reader
	out    io.Writer

	// one guard per form
	loginForm    form.Guard
	registerForm form.Guard
	forgotForm   form.Guard
	otpForm      form.Guard

	mu      sync.Mutex
	session *models.Session
	mode    Mode

	closeFn func() error
}

func NewApp(c *config.Config, d Deps, in io.Reader, out io.Writer) *App {
	return &App{
		config:   c,
		auth:     d.Auth,
		feed:     d.Feed,
		pinger:   d.Pinger,
		notifier: d.Notifier,
		log:      d.Log,
		reader:   bufio.NewReader(in),
		out:      out,
	}
}

// Bootstrap opens the session database, builds the API client and services
// from c and returns an App bound to stdin/stdout. Close releases the
// database.
func Bootstrap(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	apiClient, err := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := session.NewMetadataStore(metadata.NewSQLiteRepository(db))
	notifier := notify.NewWriterNotifier(os.Stdout)

	app := NewApp(c, Deps{
		Auth:     services.NewAuthService(apiClient, store, notifier, log, services.AuthOptions{RequireClearance: c.RequireClearance}),
		Feed:     services.NewFeedService(apiClient, store, log),
		Pinger:   apiClient,
		Notifier: notifier,
		Log:      log,
	}, os.Stdin, os.Stdout)
	app.closeFn = db.Close
	return app, nil
}

func (a *App) Close() error {
	if a.closeFn == nil {
		return nil
	}
	return a.closeFn()
}

// Run resolves the initial route, starts the connectivity watcher and blocks
// in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to BRGY KONEK (type 'help' for commands)")

	if a.InitialRoute(ctx) == RouteSignIn {
		fmt.Fprintln(a.out, "Please sign in, or type 'register' to create an account.")
	} else {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", a.currentUser().Name)
	}

	if a.pinger != nil && a.config.OnlineCheckInterval > 0 {
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session != nil
}

func (a *App) currentUser() models.UserProfile {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return models.UserProfile{}
	}
	return a.session.User
}

func (a *App) setSession(s *models.Session) {
	a.mu.Lock()
	a.session = s
	a.mu.Unlock()
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", mode)
	}
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := ""
	if a.session != nil {
		s = a.session.User.Email + " "
	}
	if a.mode != "" {
		s += string(a.mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// StartOnlineStatusWatcher pings the API every interval and flips the mode
// shown in the prompt. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := a.pinger.Ping(pctx)
	cancel()

	if err != nil {
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}
