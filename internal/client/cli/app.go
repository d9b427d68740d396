package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/okuleshov/supportlist/internal/client/config"
	"github.com/okuleshov/supportlist/internal/client/identity"
	"github.com/okuleshov/supportlist/internal/client/repositories/snapshots"
	"github.com/okuleshov/supportlist/internal/client/services"
	"github.com/okuleshov/supportlist/internal/client/storage"
	"github.com/okuleshov/supportlist/internal/client/transport"
	"github.com/okuleshov/supportlist/internal/logging"
)

// App wires the interactive client together: config, relay pool, local
// cache, and (once a list is created or opened) the session-scoped
// list service. Keys live only inside the session for the lifetime of
// the opened list.
type App struct {
	config    *config.Config
	log       logging.Logger
	transport transport.Client
	cache     snapshots.Repository

	session *identity.Session
	svc     services.ListService

	// lastShown maps the item numbers of the latest listing back to
	// item ids, so commands can prompt "item #".
	lastShown []string

	reader *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.NewNopLogger()
	}

	db, err := storage.InitDatabase(context.Background(), c.CacheDSN)
	if err != nil {
		log.Error(context.Background(), "error initializing cache database", "error", err)
		return nil, err
	}

	return &App{
		config:    c,
		log:       log,
		transport: transport.NewRelayPool(c.RelayAddrs, log),
		cache:     snapshots.NewSQLiteRepository(db),
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.transport.Close() }()
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) hasList() bool { return a.svc != nil && a.svc.Current() != nil }

func (a *App) isOwner() bool { return a.session != nil && a.session.IsOwner() }

func (a *App) status() string {
	switch {
	case !a.hasList():
		return "no list"
	case a.isOwner():
		return a.svc.Current().Title + " (owner)"
	default:
		return a.svc.Current().Title + " (guest)"
	}
}

// opCtx bounds one transport round trip.
func (a *App) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

// openSession attaches a service for the given session.
func (a *App) openSession(s *identity.Session) {
	a.session = s
	a.svc = services.NewListService(a.transport, s, a.cache, a.log, a.config.QueryLimit)
	a.lastShown = nil
}

// CloseList drops the session and its keys.
func (a *App) CloseList(ctx context.Context) error {
	a.session = nil
	a.svc = nil
	a.lastShown = nil
	return nil
}
