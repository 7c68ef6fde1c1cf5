package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cartcontrollers "github.com/lmarchetti/storefront-backend/api/controllers/cart"
	checkoutcontrollers "github.com/lmarchetti/storefront-backend/api/controllers/checkout"
	productcontrollers "github.com/lmarchetti/storefront-backend/api/controllers/products"
	"github.com/lmarchetti/storefront-backend/api/handlers"
	"github.com/lmarchetti/storefront-backend/api/middleware"
	cartsvc "github.com/lmarchetti/storefront-backend/internal/cart"
	"github.com/lmarchetti/storefront-backend/internal/catalog"
	checkoutsvc "github.com/lmarchetti/storefront-backend/internal/checkout"
	"github.com/lmarchetti/storefront-backend/internal/orders"
	"github.com/lmarchetti/storefront-backend/pkg/config"
	"github.com/lmarchetti/storefront-backend/pkg/logger"
	"github.com/lmarchetti/storefront-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	m *metrics.StorefrontMetrics,
	catalogService catalog.Service,
	cartService cartsvc.Service,
	checkoutService checkoutsvc.Service,
	ordersService orders.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.CORS(cfg.App.CORSOrigins),
		middleware.Logging(logg, m),
	)

	r.Get("/health", handlers.Healthz(cfg, logg))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productcontrollers.List(catalogService, logg))
			r.Get("/{slug}", productcontrollers.Detail(catalogService, logg))
			r.Get("/{id}/recommendations", productcontrollers.Recommendations(catalogService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.CartToken(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartcontrollers.Fetch(cartService, logg))
				r.Post("/items", cartcontrollers.AddItem(cartService, logg))
				r.Delete("/", cartcontrollers.Clear(cartService, logg))
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Get("/preview", checkoutcontrollers.Preview(checkoutService, logg))
				r.Post("/", checkoutcontrollers.PlaceOrder(checkoutService, logg))
			})
		})

		r.Get("/orders/{id}", checkoutcontrollers.GetOrder(ordersService, logg))
	})

	return r
}
