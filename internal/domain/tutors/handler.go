package tutors

import (
	"errors"
	"net/http"

	"petcare-crm/internal/web/view"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, rnd *view.Renderer) {
	r.Get("/tutors", listTutorsHandler(svc, rnd))
	r.Post("/tutors", createTutorHandler(svc))
	r.Get("/tutor/edit/{id}", editTutorFormHandler(svc, rnd))
	r.Post("/tutor/edit/{id}", updateTutorHandler(svc))
	r.Get("/tutor/delete/{id}", deleteTutorHandler(svc))
}

type tutorsPage struct {
	Search string
	Tutors []Tutor
}

func listTutorsHandler(svc *Service, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := r.URL.Query().Get("search")

		items, err := svc.List(r.Context(), search)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		rnd.HTML(w, http.StatusOK, "tutors", tutorsPage{
			Search: search,
			Tutors: items,
		})
	}
}

func createTutorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		_, err := svc.Create(r.Context(), CreateInput{
			Name:    r.PostFormValue("name"),
			Phone:   r.PostFormValue("phone"),
			Address: r.PostFormValue("address"),
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "name and phone are required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// redirect-after-POST: un reload de la lista no reenvía el form
		http.Redirect(w, r, "/tutors", http.StatusSeeOther)
	}
}

func editTutorFormHandler(svc *Service, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			// id desconocido: volver a la lista sin error (soft-fail)
			http.Redirect(w, r, "/tutors", http.StatusSeeOther)
			return
		}

		rnd.HTML(w, http.StatusOK, "edit_tutor", t)
	}
}

func updateTutorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		_, err := svc.Update(r.Context(), chi.URLParam(r, "id"), UpdateInput{
			Name:    r.PostFormValue("name"),
			Phone:   r.PostFormValue("phone"),
			Address: r.PostFormValue("address"),
		})
		switch {
		case err == nil, errors.Is(err, ErrNotFound):
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, "name and phone are required", http.StatusBadRequest)
			return
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/tutors", http.StatusSeeOther)
	}
}

func deleteTutorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		switch {
		case err == nil, errors.Is(err, ErrNotFound):
			// borrar un id inexistente es no-op
		case errors.Is(err, ErrInUse):
			http.Error(w, "tutor still has pets or sales", http.StatusConflict)
			return
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/tutors", http.StatusSeeOther)
	}
}
