package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "gym-management/internal/adapters/storage/memory"
	pg "gym-management/internal/adapters/storage/postgres"
	"gym-management/internal/domain/auth"
	"gym-management/internal/domain/clients"
	"gym-management/internal/domain/equipment"
	"gym-management/internal/domain/staff"
	"gym-management/internal/metrics"
	"gym-management/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger      zerolog.Logger
	CORSOrigins []string
	Tokens      *auth.TokenManager
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(opts.CORSOrigins))
	r.Use(middleware.RequestLogger(opts.Logger))

	m := metrics.New()
	r.Use(m.Middleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	var (
		staffRepo     staff.Repository
		clientsRepo   clients.Repository
		equipmentRepo equipment.Repository
		credsRepo     auth.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		staffRepo = pg.NewStaffRepo(db)
		clientsRepo = pg.NewClientsRepo(db)
		equipmentRepo = pg.NewEquipmentRepo(db)
		credsRepo = pg.NewCredentialsRepo(db)
	} else {
		store := mem.NewStore()
		staffRepo = store.Staff()
		clientsRepo = store.Clients()
		equipmentRepo = store.Equipment()
		credsRepo = store.Credentials()
	}

	tokens := opts.Tokens
	if tokens == nil {
		tokens = auth.NewTokenManager("dev-secret-cambiar", "gym-management", 0)
	}

	// Services por módulo
	staffSvc := staff.NewService(staffRepo)
	clientsSvc := clients.NewService(clientsRepo)
	equipmentSvc := equipment.NewService(equipmentRepo)
	authSvc := auth.NewService(credsRepo, tokens)

	// Rutas por módulo
	staff.RegisterRoutes(r, staffSvc)
	clients.RegisterRoutes(r, clientsSvc)
	equipment.RegisterRoutes(r, equipmentSvc)
	auth.RegisterRoutes(r, authSvc)

	return r
}
