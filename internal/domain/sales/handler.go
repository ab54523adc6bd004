package sales

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"petcare-crm/internal/domain/products"
	"petcare-crm/internal/domain/tutors"
	"petcare-crm/internal/web/view"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, productsSvc *products.Service, tutorsSvc *tutors.Service, rnd *view.Renderer) {
	r.Get("/sales", listSalesHandler(svc, tutorsSvc, rnd))
	r.Post("/sales", createSaleHandler(svc, productsSvc))
	r.Get("/sale/edit/{id}", editSaleFormHandler(svc, productsSvc, tutorsSvc, rnd))
	r.Post("/sale/edit/{id}", updateSaleHandler(svc))
	r.Get("/sale/delete/{id}", deleteSaleHandler(svc))
}

type salesPage struct {
	Search string
	Sales  []WithDetails
	Tutors []tutors.Tutor // para el select del form de alta
}

type editSalePage struct {
	Sale        Sale
	ProductName string
	Tutors      []tutors.Tutor
}

func listSalesHandler(svc *Service, tutorsSvc *tutors.Service, rnd *view.Renderer) http.HandlerFunc {
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

		rnd.HTML(w, http.StatusOK, "sales", salesPage{
			Search: search,
			Sales:  items,
			Tutors: allTutors,
		})
	}
}

// createSaleHandler resuelve el producto por nombre (creándolo si no existe)
// y registra la venta. Comportamiento heredado: el precio enviado es el Total
// de la venta y la cantidad queda en 1.
func createSaleHandler(svc *Service, productsSvc *products.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		price, err := parsePrice(r.PostFormValue("price"))
		if err != nil {
			http.Error(w, "price must be a number", http.StatusBadRequest)
			return
		}

		product, err := productsSvc.GetOrCreate(r.Context(), r.PostFormValue("product_name"), price)
		if err != nil {
			if errors.Is(err, products.ErrInvalidInput) {
				http.Error(w, "product_name is required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		_, err = svc.Record(r.Context(), RecordInput{
			ProductID: product.ID,
			TutorID:   r.PostFormValue("tutor_id"),
			Total:     price,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/sales", http.StatusSeeOther)
	}
}

func editSaleFormHandler(svc *Service, productsSvc *products.Service, tutorsSvc *tutors.Service, rnd *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			http.Redirect(w, r, "/sales", http.StatusSeeOther)
			return
		}

		product, err := productsSvc.GetByID(r.Context(), s.ProductID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		allTutors, err := tutorsSvc.List(r.Context(), "")
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		rnd.HTML(w, http.StatusOK, "edit_sale", editSalePage{
			Sale:        s,
			ProductName: product.Name,
			Tutors:      allTutors,
		})
	}
}

func updateSaleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		price, err := parsePrice(r.PostFormValue("price"))
		if err != nil {
			http.Error(w, "price must be a number", http.StatusBadRequest)
			return
		}

		_, err = svc.Update(r.Context(), chi.URLParam(r, "id"), UpdateInput{
			Total:   price,
			TutorID: r.PostFormValue("tutor_id"),
		})
		switch {
		case err == nil, errors.Is(err, ErrNotFound):
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, "price must not be negative", http.StatusBadRequest)
			return
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/sales", http.StatusSeeOther)
	}
}

func deleteSaleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil && !errors.Is(err, ErrNotFound) {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/sales", http.StatusSeeOther)
	}
}

func parsePrice(v string) (float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, errors.New("price required")
	}
	price, err := strconv.ParseFloat(v, 64)
	if err != nil || price < 0 {
		return 0, errors.New("invalid price")
	}
	return price, nil
}
