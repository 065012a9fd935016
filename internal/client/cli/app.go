package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"
	"path/filepath"

	"github.com/freshkeep/freshkeep-cli/internal/client/api"
	"github.com/freshkeep/freshkeep-cli/internal/client/config"
	"github.com/freshkeep/freshkeep-cli/internal/client/credentials"
	"github.com/freshkeep/freshkeep-cli/internal/client/models"
	"github.com/freshkeep/freshkeep-cli/internal/client/services"
	"github.com/freshkeep/freshkeep-cli/internal/client/session"
	"github.com/freshkeep/freshkeep-cli/internal/client/storage"
	"github.com/freshkeep/freshkeep-cli/internal/logging"
)

// backendAPI defines the slice of the API client the REPL commands use.
// The real api.Client satisfies this interface; tests provide fakes.
type backendAPI interface {
	Items(ctx context.Context, filter models.ItemFilter) (*models.ItemListResponse, error)
	ExpiringItems(ctx context.Context, days int) (*models.ItemListResponse, error)
	CreateItem(ctx context.Context, item models.NewItem) (*models.ItemResponse, error)
	ConsumeItem(ctx context.Context, itemID string, req models.ConsumeRequest) (*models.ItemResponse, error)
	WasteItem(ctx context.Context, itemID string, req models.WasteRequest) (*models.ItemResponse, error)
	InventoryStats(ctx context.Context) (*models.InventoryStatsResponse, error)
	AnalyticsSummary(ctx context.Context, period string) (*models.AnalyticsSummaryResponse, error)
	Recipes(ctx context.Context, limit int, prioritizeExpiring bool) (*models.RecipeListResponse, error)
	ShoppingList(ctx context.Context) (*models.ShoppingListResponse, error)
	AddShoppingItem(ctx context.Context, item models.NewShoppingItem) (*models.ShoppingItemResponse, error)
	UpdateShoppingItem(ctx context.Context, itemID string, update models.ShoppingItemUpdate) (*models.ShoppingItemResponse, error)
	Notifications(ctx context.Context, unreadOnly bool) (*models.NotificationsResponse, error)
}

// sessionManager is the slice of the session state machine the REPL uses.
type sessionManager interface {
	Bootstrap(ctx context.Context) session.State
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, email, password, name, timezone string) error
	Logout(ctx context.Context)
	Observe(ctx context.Context, err error)
	State() session.State
	User() *models.User
}

type App struct {
	config   *config.Config
	sessions sessionManager
	api      backendAPI
	db       *sql.DB
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, filepath.Join(cfg.DataDir, "freshkeep.db"))
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	key, err := credentials.LoadOrCreateKey(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	store := credentials.NewSQLiteStore(db, key, log)
	apiClient := api.New(cfg.APIBaseURL, store, log, api.WithTimeout(cfg.RequestTimeout))
	svc := services.NewSessionService(apiClient, store, log)
	mgr := session.NewManager(svc, log)

	return &App{
		config:   cfg,
		sessions: mgr,
		api:      apiClient,
		db:       db,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run restores any stored session and starts the REPL. It blocks until the
// user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.sessions.Bootstrap(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.State() == session.StateAuthenticated
}
