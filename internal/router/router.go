package router

import (
	"database/sql"
	"net/http"

	mem "petcare-crm/internal/adapters/storage/memory"
	"petcare-crm/internal/adapters/storage/sqlite"
	"petcare-crm/internal/domain/appointments"
	"petcare-crm/internal/domain/pets"
	"petcare-crm/internal/domain/products"
	"petcare-crm/internal/domain/reports"
	"petcare-crm/internal/domain/sales"
	"petcare-crm/internal/domain/tutors"
	"petcare-crm/internal/middleware"
	"petcare-crm/internal/platform/logger"
	"petcare-crm/internal/web/view"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	Log logger.Logger

	// Opcional: si viene, usa SQLite. Si no, store en memoria (dev/tests).
	DB *sql.DB
}

func New(opts Options) (http.Handler, error) {
	log := opts.Log
	if log == nil {
		log = logger.New(logger.Options{})
	}

	rnd, err := view.New(log)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		tutorRepo   tutors.Repository
		petRepo     pets.Repository
		apptRepo    appointments.Repository
		productRepo products.Repository
		saleRepo    sales.Repository
		reportRepo  reports.Repository
	)

	if opts.DB != nil {
		tutorRepo = sqlite.NewTutorsRepo(opts.DB)
		petRepo = sqlite.NewPetsRepo(opts.DB)
		apptRepo = sqlite.NewAppointmentsRepo(opts.DB)
		productRepo = sqlite.NewProductsRepo(opts.DB)
		saleRepo = sqlite.NewSalesRepo(opts.DB)
		reportRepo = sqlite.NewReportsRepo(opts.DB)
	} else {
		ms := mem.NewStore()
		tutorRepo = ms.Tutors()
		petRepo = ms.Pets()
		apptRepo = ms.Appointments()
		productRepo = ms.Products()
		saleRepo = ms.Sales()
		reportRepo = ms.Reports()
	}

	// Services por módulo
	tutorsSvc := tutors.NewService(tutorRepo)
	petsSvc := pets.NewService(petRepo)
	apptsSvc := appointments.NewService(apptRepo)
	productsSvc := products.NewService(productRepo)
	salesSvc := sales.NewService(saleRepo)
	reportsSvc := reports.NewService(reportRepo)

	// Rutas por módulo
	reports.RegisterRoutes(r, reportsSvc, rnd)
	tutors.RegisterRoutes(r, tutorsSvc, rnd)
	pets.RegisterRoutes(r, petsSvc, tutorsSvc, rnd)
	appointments.RegisterRoutes(r, apptsSvc, petsSvc, rnd)
	sales.RegisterRoutes(r, salesSvc, productsSvc, tutorsSvc, rnd)

	return r, nil
}
