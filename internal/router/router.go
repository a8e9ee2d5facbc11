package router

import (
	"net/http"

	_ "pet-registry/docs"
	mem "pet-registry/internal/adapters/storage/memory"
	"pet-registry/internal/domain/accounts"
	"pet-registry/internal/domain/pets"
	"pet-registry/internal/middleware"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/platform/respond"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => sin logs

	// Usuarios precargados. Si viene vacío se usa accounts.DefaultSeed().
	Seeds []accounts.Seed

	// Expone /swagger/* (UI + doc.json).
	Swagger bool
}

// NewRouter arma el servicio completo. Cada llamada crea su propio store en
// memoria, así cada test parte de cero.
func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	seeds := opts.Seeds
	if len(seeds) == 0 {
		seeds = []accounts.Seed{accounts.DefaultSeed()}
	}

	// Repos in-memory
	accountsRepo := mem.NewAccountsRepo(seeds...)
	petRepo := mem.NewPetRepo()

	// Services por módulo
	accountsSvc := accounts.NewService(accountsRepo)
	petsSvc := pets.NewService(petRepo)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(accountsSvc, log))

	r.NotFound(respond.NotFound)
	r.MethodNotAllowed(respond.MethodNotAllowed)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.Swagger {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	// Rutas por módulo
	accounts.RegisterRoutes(r, accountsSvc, log)
	pets.RegisterRoutes(r, petsSvc, log)

	return r
}
