package appointments

import (
	"errors"
	"net/http"
	"time"

	"petcare-crm/internal/domain/pets"
	"petcare-crm/internal/web/view"

	"github.com/go-chi/chi/v5"
)

// dateTimeLayout es el formato del input datetime-local del formulario.
const dateTimeLayout = "2006-01-02T15:04"

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service, rnd *view.Renderer) {
	r.Get("/appointments", listAppointmentsHandler(svc, petsSvc, rnd))
	r.Post("/appointments", createAppointmentHandler(svc))
	r.Get("/appointment/edit/{id}", editAppointmentFormHandler(svc, petsSvc, rnd))
	r.Post("/appointment/edit/{id}", updateAppointmentHandler(svc))
	r.Get("/appointment/delete/{id}", deleteAppointmentHandler(svc))
}

type appointmentsPage struct {
	Search       string
	Appointments []WithNames
	Pets         []pets.WithTutor // para el select del form de alta
}

type editAppointmentPage struct {
	Appointment Appointment
	Pets        []pets.WithTutor
	Statuses    []Status
}

func listAppointmentsHandler(svc *Service, petsSvc *pets.Service, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := r.URL.Query().Get("search")

		items, err := svc.List(r.Context(), search)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		allPets, err := petsSvc.List(r.Context(), "")
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		rnd.HTML(w, http.StatusOK, "appointments", appointmentsPage{
			Search:       search,
			Appointments: items,
			Pets:         allPets,
		})
	}
}

func createAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		// un date_time inválido corta el request con 400, nunca tumba el proceso
		dt, err := time.ParseInLocation(dateTimeLayout, r.PostFormValue("date_time"), time.Local)
		if err != nil {
			http.Error(w, "date_time must be YYYY-MM-DDTHH:MM", http.StatusBadRequest)
			return
		}

		_, err = svc.Create(r.Context(), CreateInput{
			DateTime: dt,
			Service:  r.PostFormValue("service"),
			PetID:    r.PostFormValue("pet_id"),
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "service and pet_id are required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/appointments", http.StatusSeeOther)
	}
}

func editAppointmentFormHandler(svc *Service, petsSvc *pets.Service, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			http.Redirect(w, r, "/appointments", http.StatusSeeOther)
			return
		}

		allPets, err := petsSvc.List(r.Context(), "")
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		rnd.HTML(w, http.StatusOK, "edit_appointment", editAppointmentPage{
			Appointment: a,
			Pets:        allPets,
			Statuses:    []Status{StatusScheduled, StatusCompleted, StatusCanceled},
		})
	}
}

func updateAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		dt, err := time.ParseInLocation(dateTimeLayout, r.PostFormValue("date_time"), time.Local)
		if err != nil {
			http.Error(w, "date_time must be YYYY-MM-DDTHH:MM", http.StatusBadRequest)
			return
		}

		status := Status(r.PostFormValue("status"))
		if !ValidStatus(status) {
			http.Error(w, "status must be Scheduled, Completed or Canceled", http.StatusBadRequest)
			return
		}

		_, err = svc.Update(r.Context(), chi.URLParam(r, "id"), UpdateInput{
			DateTime: dt,
			Service:  r.PostFormValue("service"),
			Status:   status,
			PetID:    r.PostFormValue("pet_id"),
		})
		switch {
		case err == nil, errors.Is(err, ErrNotFound):
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, "service and pet_id are required", http.StatusBadRequest)
			return
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/appointments", http.StatusSeeOther)
	}
}

func deleteAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil && !errors.Is(err, ErrNotFound) {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/appointments", http.StatusSeeOther)
	}
}
