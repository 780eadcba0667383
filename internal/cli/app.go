package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/authdesk/authdesk/internal/config"
	"github.com/authdesk/authdesk/internal/forms"
	"github.com/authdesk/authdesk/internal/logging"
	"github.com/authdesk/authdesk/internal/repositories/kv"
	"github.com/authdesk/authdesk/internal/services"

	_ "modernc.org/sqlite"
)

// App wires the terminal UI to the user store: it owns the database handle,
// the input reader, and the current screen, and dispatches REPL commands to
// the form controllers.
type App struct {
	config *config.Config
	store  *services.UserStore
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
	db     *sql.DB
	screen forms.Screen
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, _, err := kv.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	return &App{
		config: c,
		store:  services.NewUserStore(db, log),
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		db:     db,
		screen: forms.ScreenLogin,
	}, nil
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.db.Close()
}

// NavigateTo satisfies forms.Navigator: it switches the current screen.
func (a *App) NavigateTo(screen forms.Screen) {
	a.screen = screen
}

func (a *App) notifier() forms.Notifier {
	return toastNotifier{w: a.out}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.store.IsLoggedIn(ctx)
}

// Run restores a persisted session, then hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	if user, err := a.store.GetCurrentUser(ctx); err == nil && user != nil {
		a.screen = forms.ScreenDashboard
		renderDashboard(a.out, user)
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) getStatus() string {
	user, err := a.store.GetCurrentUser(context.Background())
	if err != nil || user == nil {
		return ""
	}
	return "(" + user.Name + ")"
}
