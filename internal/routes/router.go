package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-todo-lists/internal/handlers"
	"github.com/sbilibin2017/gw-todo-lists/internal/jwt"
	"github.com/sbilibin2017/gw-todo-lists/internal/middlewares"
	"github.com/sbilibin2017/gw-todo-lists/internal/repositories"
	"github.com/sbilibin2017/gw-todo-lists/internal/services"
)

// Options carries everything the router needs to build its handlers.
type Options struct {
	DB      *sqlx.DB
	JWT     *jwt.JWT
	Version string

	// Events receives domain events. nil disables publishing.
	Events services.EventPublisher

	// Limiter is the shared rate limiter. When nil and RateLimitRequests is
	// positive, an in-process limiter is used instead.
	Limiter           middlewares.Limiter
	RateLimitRequests int
	RateLimitWindow   time.Duration

	Pagination handlers.Pagination
}

// NewRouter wires repositories, services and handlers into a chi router.
func NewRouter(opts Options) http.Handler {
	if opts.Pagination == (handlers.Pagination{}) {
		opts.Pagination = handlers.DefaultPagination
	}

	userRepo := repositories.NewUserRepository(opts.DB, middlewares.GetTxFromContext)
	listRepo := repositories.NewListRepository(opts.DB, middlewares.GetTxFromContext)
	itemRepo := repositories.NewListItemRepository(opts.DB, middlewares.GetTxFromContext)

	userSvc := services.NewUserService(userRepo, opts.Events)
	listSvc := services.NewListService(listRepo, itemRepo, opts.Events)
	itemSvc := services.NewListItemService(itemRepo, listRepo, opts.Events)
	authSvc := services.NewAuthService(userRepo, opts.JWT)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(chimiddleware.StripSlashes)

	switch {
	case opts.RateLimitRequests <= 0:
	case opts.Limiter != nil:
		r.Use(middlewares.RateLimitMiddleware(opts.Limiter))
	default:
		r.Use(middlewares.LocalRateLimitMiddleware(opts.RateLimitRequests, opts.RateLimitWindow))
	}

	r.Get("/", handlers.NewRootHandler(opts.Version))
	r.Get("/health", handlers.NewHealthHandler(opts.DB))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(opts.DB))

		r.Post("/auth/token", handlers.NewTokenHandler(authSvc))

		r.Route("/users", func(r chi.Router) {
			r.Post("/", handlers.NewCreateUserHandler(userSvc))
			r.Get("/", handlers.NewListUsersHandler(userSvc, opts.Pagination))
			r.Get("/{user_id}", handlers.NewGetUserHandler(userSvc))
			r.Put("/{user_id}", handlers.NewUpdateUserHandler(userSvc))
			r.Delete("/{user_id}", handlers.NewDeleteUserHandler(userSvc))
		})

		r.Route("/lists", func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(opts.JWT, authSvc))

			r.Post("/", handlers.NewCreateListHandler(listSvc))
			r.Get("/", handlers.NewListListsHandler(listSvc, opts.Pagination))

			r.Route("/{list_id}", func(r chi.Router) {
				r.Get("/", handlers.NewGetListHandler(listSvc))
				r.Put("/", handlers.NewUpdateListHandler(listSvc))
				r.Delete("/", handlers.NewDeleteListHandler(listSvc))
				r.Post("/archive", handlers.NewArchiveListHandler(listSvc))
				r.Post("/unarchive", handlers.NewUnarchiveListHandler(listSvc))

				r.Post("/items", handlers.NewCreateItemHandler(itemSvc))
				r.Get("/items", handlers.NewListItemsHandler(itemSvc))
				r.Get("/items/{item_id}", handlers.NewGetItemHandler(itemSvc))
				r.Put("/items/{item_id}", handlers.NewUpdateItemHandler(itemSvc))
				r.Delete("/items/{item_id}", handlers.NewDeleteItemHandler(itemSvc))
				r.Post("/items/{item_id}/toggle", handlers.NewToggleItemHandler(itemSvc))
			})
		})
	})

	return r
}
