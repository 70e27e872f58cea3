package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/internhub-dev/internhub/internal/client/api"
	"github.com/internhub-dev/internhub/internal/client/config"
	"github.com/internhub-dev/internhub/internal/client/models"
	"github.com/internhub-dev/internhub/internal/client/repositories"
	"github.com/internhub-dev/internhub/internal/client/repositories/tokens"
	"github.com/internhub-dev/internhub/internal/client/services"
	"github.com/internhub-dev/internhub/internal/logging"

	_ "modernc.org/sqlite"
)

// viewFn renders one route. args are the words after the command.
type viewFn func(ctx context.Context, args []string) error

// route pairs a view with its guard. A nil guard means public.
type route struct {
	guard func(services.Session) Decision
	view  viewFn
}

type App struct {
	config       *config.Config
	auth         services.AuthService
	internships  services.InternshipService
	applications services.ApplicationService
	log          logging.Logger
	db           *sql.DB
	reader       *bufio.Reader
	out          io.Writer
	routes       map[string]route
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := repositories.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := tokens.NewSQLiteRepository(db)
	client := api.NewClient(cfg.ServerBaseURL, cfg.RequestTimeout, store, log)

	auth := services.NewAuthService(client, store, log)
	client.OnSessionExpired(auth.Invalidate)

	a := &App{
		config:       cfg,
		auth:         auth,
		internships:  services.NewInternshipService(client),
		applications: services.NewApplicationService(client),
		log:          log,
		db:           db,
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
	}
	a.routes = a.buildRoutes()
	return a, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) buildRoutes() map[string]route {
	return map[string]route{
		// public
		"login":       {view: a.loginView},
		"register":    {view: a.registerView},
		"internships": {view: a.listInternshipsView},
		"show":        {view: a.internshipDetailView},
		"search":      {view: a.searchView},

		// any authenticated user
		"dashboard":   {guard: RequireAuth, view: a.dashboardView},
		"profile":     {guard: RequireAuth, view: a.profileView},
		"editprofile": {guard: RequireAuth, view: a.editProfileView},
		"logout":      {guard: RequireAuth, view: a.logoutView},

		// students
		"apply":        {guard: roleGuard(models.RoleStudent), view: a.applyView},
		"applications": {guard: roleGuard(models.RoleStudent), view: a.myApplicationsView},

		// companies
		"post":       {guard: roleGuard(models.RoleCompany), view: a.createInternshipView},
		"edit":       {guard: roleGuard(models.RoleCompany), view: a.editInternshipView},
		"close":      {guard: roleGuard(models.RoleCompany), view: a.closeInternshipView},
		"remove":     {guard: roleGuard(models.RoleCompany), view: a.deleteInternshipView},
		"applicants": {guard: roleGuard(models.RoleCompany), view: a.applicantsView},
		"status":     {guard: roleGuard(models.RoleCompany), view: a.updateStatusView},
	}
}

// navigate evaluates the route's guard against the current session and
// either renders the view or follows the guard's redirect. Guards run
// on every navigation, so a role change picks up here, never mid-view.
func (a *App) navigate(ctx context.Context, name string, args []string) {
	r, ok := a.routes[name]
	if !ok {
		fmt.Fprintln(a.out, "Unknown command:", name)
		return
	}

	if r.guard != nil {
		switch r.guard(a.auth.Session()) {
		case DecisionPending:
			fmt.Fprintln(a.out, "Session is still loading, try again in a moment.")
			return
		case DecisionRedirectLogin:
			fmt.Fprintln(a.out, "Please log in to continue.")
			if err := a.loginView(ctx, nil); err != nil {
				fmt.Fprintf(a.out, "error: %v\n", err)
			}
			return
		case DecisionRedirectHome:
			fmt.Fprintln(a.out, "Not available for your account type.")
			if err := a.dashboardView(ctx, nil); err != nil {
				fmt.Fprintf(a.out, "error: %v\n", err)
			}
			return
		}
	}

	if err := r.view(ctx, args); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
	}
}

// statusLine renders the prompt suffix, e.g. "(alice student)".
func (a *App) statusLine() string {
	s := a.auth.Session()
	switch s.State {
	case services.StateLoading:
		return "(loading)"
	case services.StateAuthenticated:
		name := ""
		role := ""
		if s.Profile != nil {
			name = s.Profile.User.Username
			role = string(s.Profile.Role)
		} else if s.Claims != nil {
			name = s.Claims.Username
		}
		return fmt.Sprintf("(%s %s)", name, role)
	default:
		return ""
	}
}
