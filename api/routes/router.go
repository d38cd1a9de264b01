package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tirupurthreads/storefront-backend/api/controllers"
	"github.com/tirupurthreads/storefront-backend/api/middleware"
	addresssvc "github.com/tirupurthreads/storefront-backend/internal/address"
	authsvc "github.com/tirupurthreads/storefront-backend/internal/auth"
	cartsvc "github.com/tirupurthreads/storefront-backend/internal/cart"
	checkoutsvc "github.com/tirupurthreads/storefront-backend/internal/checkout"
	invoicesvc "github.com/tirupurthreads/storefront-backend/internal/invoice"
	ordersvc "github.com/tirupurthreads/storefront-backend/internal/orders"
	productsvc "github.com/tirupurthreads/storefront-backend/internal/products"
	"github.com/tirupurthreads/storefront-backend/internal/users"
	wholesalesvc "github.com/tirupurthreads/storefront-backend/internal/wholesale"
	"github.com/tirupurthreads/storefront-backend/pkg/auth/session"
	"github.com/tirupurthreads/storefront-backend/pkg/config"
	"github.com/tirupurthreads/storefront-backend/pkg/db"
	"github.com/tirupurthreads/storefront-backend/pkg/enums"
	"github.com/tirupurthreads/storefront-backend/pkg/logger"
	"github.com/tirupurthreads/storefront-backend/pkg/metrics"
	"github.com/tirupurthreads/storefront-backend/pkg/redis"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config       *config.Config
	Logger       *logger.Logger
	DB           db.Pinger
	Redis        *redis.Client
	Sessions     session.AccessSessionChecker
	Registry     *prometheus.Registry
	HTTPMetrics  *metrics.HTTPMetrics
	AuthService  authsvc.Service
	UserRepo     *users.Repository
	Products     productsvc.Service
	Cart         cartsvc.Service
	Addresses    *addresssvc.Validator
	Checkout     checkoutsvc.Service
	Orders       ordersvc.Service
	Invoices     invoicesvc.Service
	Wholesale    wholesalesvc.Service
}

// NewRouter assembles the full HTTP surface.
func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.CORS(),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, deps.Redis, logg))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	// Public storefront surface.
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.Idempotency(deps.Redis, logg)).Post("/register", controllers.Register(deps.AuthService, logg))
			r.Post("/login", controllers.Login(deps.AuthService, logg))
			r.Post("/refresh", controllers.Refresh(deps.AuthService, logg))
			r.With(middleware.Auth(cfg.JWT, deps.Sessions, logg)).Post("/logout", controllers.Logout(deps.AuthService, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(deps.Products, logg))
			r.Get("/{productID}", controllers.ProductGet(deps.Products, logg))
		})

		r.Route("/shipping", func(r chi.Router) {
			r.Get("/states", controllers.ShippingStates(deps.Addresses))
			r.Get("/districts", controllers.ShippingDistricts(deps.Addresses, logg))
		})

		r.With(middleware.Idempotency(deps.Redis, logg)).
			Post("/wholesale/enquiries", controllers.WholesaleSubmit(deps.Wholesale, logg))

		// Customer surface behind auth.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))
			r.Use(middleware.Idempotency(deps.Redis, logg))

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", controllers.ProfileGet(deps.UserRepo, logg))
				r.Patch("/", controllers.ProfileUpdate(deps.UserRepo, logg))
			})

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartGet(deps.Cart, logg))
				r.Post("/items", controllers.CartAdd(deps.Cart, logg))
				r.Post("/items/{itemID}/increase", controllers.CartIncrease(deps.Cart, logg))
				r.Post("/items/{itemID}/decrease", controllers.CartDecrease(deps.Cart, logg))
				r.Delete("/items/{itemID}", controllers.CartRemove(deps.Cart, logg))
			})

			r.Post("/checkout", controllers.Checkout(deps.Checkout, logg))

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.OrderList(deps.Orders, logg))
				r.Get("/{orderID}", controllers.OrderGet(deps.Orders, logg))
				r.Get("/{orderID}/invoice", controllers.OrderInvoice(deps.Invoices, logg))
			})
		})

		// Back office.
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))
			r.Use(middleware.RequireRole(string(enums.UserRoleAdmin), logg))
			r.Use(middleware.Idempotency(deps.Redis, logg))

			r.Get("/orders", controllers.AdminOrderList(deps.Orders, logg))
			r.Patch("/orders/{orderID}/status", controllers.AdminOrderUpdateStatus(deps.Orders, logg))
			r.Get("/wholesale/enquiries", controllers.AdminWholesaleList(deps.Wholesale, logg))
		})
	})

	return r
}
