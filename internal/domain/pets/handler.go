package pets

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"petcare-crm/internal/domain/tutors"
	"petcare-crm/internal/web/view"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, tutorsSvc *tutors.Service, rnd *view.Renderer) {
	r.Get("/pets", listPetsHandler(svc, tutorsSvc, rnd))
	r.Post("/pets", createPetHandler(svc))
	r.Get("/pet/edit/{id}", editPetFormHandler(svc, tutorsSvc, rnd))
	r.Post("/pet/edit/{id}", updatePetHandler(svc))
	r.Get("/pet/delete/{id}", deletePetHandler(svc))
}

type petsPage struct {
	Search string
	Pets   []WithTutor
	Tutors []tutors.Tutor // para el select del form de alta
}

type editPetPage struct {
	Pet    Pet
	Tutors []tutors.Tutor
}

func listPetsHandler(svc *Service, tutorsSvc *tutors.Service, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := r.URL.Query().Get("search")

		items, err := svc.List(r.Context(), search)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		allTutors, err := tutorsSvc.List(r.Context(), "")
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		rnd.HTML(w, http.StatusOK, "pets", petsPage{
			Search: search,
			Pets:   items,
			Tutors: allTutors,
		})
	}
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		age, err := parseAge(r.PostFormValue("age"))
		if err != nil {
			http.Error(w, "age must be a number", http.StatusBadRequest)
			return
		}

		_, err = svc.Create(r.Context(), CreateInput{
			Name:    r.PostFormValue("name"),
			Breed:   r.PostFormValue("breed"),
			Age:     age,
			TutorID: r.PostFormValue("tutor_id"),
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "name and tutor_id are required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/pets", http.StatusSeeOther)
	}
}

func editPetFormHandler(svc *Service, tutorsSvc *tutors.Service, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			http.Redirect(w, r, "/pets", http.StatusSeeOther)
			return
		}

		allTutors, err := tutorsSvc.List(r.Context(), "")
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		rnd.HTML(w, http.StatusOK, "edit_pet", editPetPage{
			Pet:    p,
			Tutors: allTutors,
		})
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		age, err := parseAge(r.PostFormValue("age"))
		if err != nil {
			http.Error(w, "age must be a number", http.StatusBadRequest)
			return
		}

		_, err = svc.Update(r.Context(), chi.URLParam(r, "id"), UpdateInput{
			Name:    r.PostFormValue("name"),
			Breed:   r.PostFormValue("breed"),
			Age:     age,
			TutorID: r.PostFormValue("tutor_id"),
		})
		switch {
		case err == nil, errors.Is(err, ErrNotFound):
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, "name and tutor_id are required", http.StatusBadRequest)
			return
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/pets", http.StatusSeeOther)
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		switch {
		case err == nil, errors.Is(err, ErrNotFound):
		case errors.Is(err, ErrInUse):
			http.Error(w, "pet still has appointments", http.StatusConflict)
			return
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/pets", http.StatusSeeOther)
	}
}

func parseAge(v string) (*int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return nil, errors.New("invalid age")
	}
	return &n, nil
}
