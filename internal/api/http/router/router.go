package router

import (
	"net/http"

	"github.com/gastor/gastor-server/internal/api/http/handler"
	"github.com/gastor/gastor-server/internal/api/http/middleware"
	"github.com/gastor/gastor-server/internal/logger"
	"github.com/gastor/gastor-server/internal/model"
)

// Router wires handlers and middleware into the HTTP mux.
type Router struct {
	authService     handler.AuthService
	categoryService handler.CategoryService
	expenseService  handler.ExpenseService
	statsService    handler.StatsService
	chartService    handler.ChartService
	resolver        middleware.AuthService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// New creates a new Router instance over the given services.
func New(
	authService handler.AuthService,
	categoryService handler.CategoryService,
	expenseService handler.ExpenseService,
	statsService handler.StatsService,
	chartService handler.ChartService,
	resolver middleware.AuthService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:     authService,
		categoryService: categoryService,
		expenseService:  expenseService,
		statsService:    statsService,
		chartService:    chartService,
		resolver:        resolver,
		contextManager:  contextManager,
		logger:          logger,
	}
}

// Register builds the mux with all routes; data routes sit behind the
// authenticate middleware, auth and health routes do not.
func (r *Router) Register() http.Handler {
	authenticate := middleware.NewAuthenticate(r.resolver, r.contextManager, r.logger)
	logging := middleware.NewLogging(r.logger)

	health := handler.NewHealth()
	auth := handler.NewAuth(r.authService, r.logger)
	categories := handler.NewCategory(r.categoryService, r.contextManager, r.logger)
	expenses := handler.NewExpense(r.expenseService, r.contextManager, r.logger)
	dashboard := handler.NewDashboard(r.statsService, r.contextManager, r.logger)
	charts := handler.NewChart(r.chartService, r.contextManager, r.logger)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", health.Check)
	mux.HandleFunc("POST /api/auth/register", auth.Register)
	mux.HandleFunc("POST /api/auth/login", auth.Login)

	protected := http.NewServeMux()
	protected.HandleFunc("GET /api/categories", categories.List)
	protected.HandleFunc("POST /api/categories", categories.Create)
	protected.HandleFunc("GET /api/expenses", expenses.List)
	protected.HandleFunc("POST /api/expenses", expenses.Create)
	protected.HandleFunc("PUT /api/expenses/{id}", expenses.Update)
	protected.HandleFunc("DELETE /api/expenses/{id}", expenses.Delete)
	protected.HandleFunc("POST /api/expenses/{id}/attachment", expenses.UploadAttachment)
	protected.HandleFunc("GET /api/dashboard/stats", dashboard.Stats)
	protected.HandleFunc("POST /api/charts/generate", charts.Generate)

	mux.Handle("/api/", authenticate.Wrap(protected))

	return logging.Wrap(mux)
}
