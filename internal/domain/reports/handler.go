package reports

import (
	"net/http"

	"petcare-crm/internal/web/view"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, rnd *view.Renderer) {
	r.Get("/", dashboardHandler(svc, rnd))
	r.Post("/", dashboardHandler(svc, rnd))
	r.Get("/reports", reportsHandler(svc, rnd))
}

func dashboardHandler(svc *Service, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := svc.Dashboard(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		rnd.HTML(w, http.StatusOK, "index", data)
	}
}

func reportsHandler(svc *Service, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := svc.Summary(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		rnd.HTML(w, http.StatusOK, "reports", data)
	}
}
