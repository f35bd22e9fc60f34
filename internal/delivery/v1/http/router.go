package http

import (
	"net/http"
	"time"

	_ "github.com/DRSN-tech/micrositio-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/micrositio-backend/internal/usecase"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router      *chi.Mux
	logger      logger.Logger
	swaggerHost string
}

func NewRouter(router *chi.Mux, logger logger.Logger, swaggerHost string) *Router {
	return &Router{router: router, logger: logger, swaggerHost: swaggerHost}
}

// UseCases собирает зависимости обработчиков.
type UseCases struct {
	Product usecase.ProductUC
	Contact usecase.ContactUC
	Meaning usecase.MeaningUC
	Schema  usecase.SchemaUC
	DB      Pinger
}

func (r *Router) Init(uc UseCases) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.RealIP)
	r.router.Use(accessLog(r.logger))
	r.router.Use(middleware.Recoverer)
	r.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://"+r.swaggerHost+"/swagger/doc.json"), // ссылка на JSON
	))

	sysHandler := NewSystemHandler(uc.Schema, uc.DB, r.logger)
	handle(r.router, http.MethodPost, "/create-db/", sysHandler.createDB)
	r.router.Get("/healthz", sysHandler.healthz)

	registerProductRoutes(r.router, NewProductHandler(uc.Product, r.logger))
	registerContactRoutes(r.router, NewContactHandler(uc.Contact, r.logger))
	handle(r.router, http.MethodPost, "/significado-nombre", NewMeaningHandler(uc.Meaning, r.logger).describeName)
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	handle(router, http.MethodPost, "/productos/", prHandler.createProduct)
	handle(router, http.MethodGet, "/productos/", prHandler.listProducts)
	handle(router, http.MethodDelete, "/productos/", prHandler.deleteAllProducts)
	handle(router, http.MethodGet, "/productos/{id}", prHandler.getProduct)
	handle(router, http.MethodPut, "/productos/{id}", prHandler.updateProduct)
	handle(router, http.MethodDelete, "/productos/{id}", prHandler.deleteProduct)
}

func registerContactRoutes(router chi.Router, cHandler *ContactHandler) {
	handle(router, http.MethodPost, "/contacto/", cHandler.submitContact)
	handle(router, http.MethodGet, "/contacto/", cHandler.listContacts)
}

// handle регистрирует маршрут со слешем на конце и без него.
func handle(router chi.Router, method, pattern string, h http.HandlerFunc) {
	router.MethodFunc(method, pattern, h)

	if n := len(pattern); n > 1 && pattern[n-1] == '/' {
		router.MethodFunc(method, pattern[:n-1], h)
	} else {
		router.MethodFunc(method, pattern+"/", h)
	}
}

// accessLog пишет одну строку на запрос.
func accessLog(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Infof("%s %s %d %dB %v request_id=%s",
				r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(),
				time.Since(start), middleware.GetReqID(r.Context()))
		})
	}
}
