package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/dmitrijs2005/aroma/internal/client/config"
	"github.com/dmitrijs2005/aroma/internal/client/models"
	"github.com/dmitrijs2005/aroma/internal/client/render"
	"github.com/dmitrijs2005/aroma/internal/client/services"
	"github.com/dmitrijs2005/aroma/internal/client/storage"
	"github.com/dmitrijs2005/aroma/internal/common"
	"github.com/dmitrijs2005/aroma/internal/filex"
	"github.com/dmitrijs2005/aroma/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger
	store  *storage.Store

	authService    services.AuthService
	cartService    services.CartService
	menuService    services.MenuService
	contactService services.ContactService
	themeService   services.ThemeService
	statsService   services.StatsService
	promo          *services.PromoRotator

	user    *models.User
	reader  *bufio.Reader
	out     io.Writer
	closers []io.Closer
}

// NewApp opens the log sink and the configured store and wires every service.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	var (
		logOut  io.Writer = os.Stderr
		closers []io.Closer
	)
	if c.LogFile != "" {
		if _, err := filex.EnsureParentDir(c.LogFile); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logOut = f
		closers = append(closers, f)
	}

	log, err := logging.New(c.Logger, c.LogLevel, logOut)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(ctx, c.StorageOptions())
	if err != nil {
		log.Error(ctx, "error opening storage", "backend", c.StorageBackend, "error", err)
		return nil, err
	}

	a := newApp(c, store, log, os.Stdin, os.Stdout)
	a.closers = append(closers, a.closers...)
	return a, nil
}

func newApp(c *config.Config, store *storage.Store, log logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		config:  c,
		log:     log,
		store:   store,
		reader:  bufio.NewReader(in),
		out:     out,
		closers: []io.Closer{store},
	}

	notifier := services.NotifierFunc(a.notify)
	httpClient := &http.Client{Timeout: c.MenuFetchTimeout}

	a.authService = services.NewAuthService(store, log)
	a.cartService = services.NewCartService(store, notifier, log)
	a.menuService = services.NewMenuService(c.MenuSource, httpClient, a.cartService, log)
	a.contactService = services.NewContactService(store, notifier, log)
	a.themeService = services.NewThemeService(store)
	a.statsService = services.NewStatsService(store, log)
	a.promo = services.NewPromoRotator(services.DefaultPromos(), nil, log)
	return a
}

// Run prepares the store, starts the background menu load and promo rotation,
// and blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := a.start(ctx); err != nil {
		return err
	}

	// background workers log, so they must be done before Close shuts the log file
	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		a.menuService.Load(ctx)
	}()
	if a.config.PromoInterval > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.promo.Start(ctx, a.config.PromoInterval)
		}()
	}

	a.println("Bun venit la Cafenea Aroma! (type 'help' for commands)")
	a.println(render.Promo(a.promo.Current(), a.currentTheme(ctx)))

	runREPL(ctx, a, a.status, a.reader)
	return nil
}

// start seeds the store and restores the session of a previous run.
func (a *App) start(ctx context.Context) error {
	if err := a.authService.EnsureDefaultCredentials(ctx); err != nil {
		return err
	}
	if err := a.cartService.Init(ctx); err != nil {
		return err
	}

	u, err := a.authService.ActiveSession(ctx)
	if err != nil {
		a.log.Warn(ctx, "session not restored", "error", err)
	}
	a.user = u

	a.track(ctx, common.DefaultPage)
	a.statsService.LogReport(ctx)
	return nil
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i].Close()
	}
	a.closers = nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// status is shown in the prompt: the logged-in user and the cart badge.
func (a *App) status() string {
	s := ""
	if a.user != nil {
		s = a.user.Username + " "
	}
	count, err := a.cartService.ItemCount(context.Background())
	if err != nil {
		a.log.Warn(context.Background(), "cart count unavailable", "error", err)
	}
	return fmt.Sprintf("(%s%s)", s, render.Badge(count))
}

func (a *App) notify(ctx context.Context, level services.Level, msg string) {
	a.println(render.Notification(level, msg, a.currentTheme(ctx)))
}

func (a *App) currentTheme(ctx context.Context) models.Theme {
	th, err := a.themeService.Current(ctx)
	if err != nil {
		a.log.Warn(ctx, "theme unavailable", "error", err)
	}
	return th
}

func (a *App) track(ctx context.Context, page string) {
	if err := a.statsService.Track(ctx, page); err != nil {
		a.log.Warn(ctx, "visit not recorded", "page", page, "error", err)
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
