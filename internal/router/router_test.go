package router_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"petcare-crm/internal/platform/logger"
	"petcare-crm/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	h, err := router.New(router.Options{
		Log: logger.New(logger.Options{Level: logger.Error}),
	})
	if err != nil {
		t.Fatalf("router.New: %v", err)
	}

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

// get sigue redirects (cliente por defecto) y devuelve status final + body.
func get(t *testing.T, srv *httptest.Server, path string) (int, string) {
	t.Helper()

	resp, err := srv.Client().Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func postForm(t *testing.T, srv *httptest.Server, path string, form url.Values) (int, string) {
	t.Helper()

	resp, err := srv.Client().PostForm(srv.URL+path, form)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

var (
	tutorEditLink = regexp.MustCompile(`/tutor/edit/([0-9a-f-]+)`)
	petEditLink   = regexp.MustCompile(`/pet/edit/([0-9a-f-]+)`)
)

func TestRouter_Health(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv, "/health")
	if status != http.StatusOK || body != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", status, body)
	}
}

func TestRouter_FullFlow(t *testing.T) {
	srv := newTestServer(t)

	// alta de tutora: el 303 redirige a la lista, que ya la muestra
	status, body := postForm(t, srv, "/tutors", url.Values{
		"name":    {"Ana"},
		"phone":   {"555-1111"},
		"address": {"Rua A, 10"},
	})
	if status != http.StatusOK {
		t.Fatalf("create tutor: expected 200 after redirect, got %d", status)
	}
	if !strings.Contains(body, "Ana") {
		t.Fatalf("expected tutor list to include Ana")
	}

	m := tutorEditLink.FindStringSubmatch(body)
	if m == nil {
		t.Fatalf("expected edit link with tutor id in list")
	}
	tutorID := m[1]

	// alta de mascota ligada a la tutora
	status, body = postForm(t, srv, "/pets", url.Values{
		"name":     {"Rex"},
		"breed":    {"SRD"},
		"age":      {"3"},
		"tutor_id": {tutorID},
	})
	if status != http.StatusOK {
		t.Fatalf("create pet: expected 200 after redirect, got %d", status)
	}
	if !strings.Contains(body, "Rex") || !strings.Contains(body, "Ana") {
		t.Fatalf("expected pet list to show Rex with tutor Ana")
	}

	m = petEditLink.FindStringSubmatch(body)
	if m == nil {
		t.Fatalf("expected edit link with pet id in list")
	}
	petID := m[1]

	// cita de hoy: tiene que aparecer en el dashboard
	status, _ = postForm(t, srv, "/appointments", url.Values{
		"date_time": {time.Now().Format("2006-01-02T15:04")},
		"service":   {"Banho"},
		"pet_id":    {petID},
	})
	if status != http.StatusOK {
		t.Fatalf("create appointment: expected 200 after redirect, got %d", status)
	}

	status, body = get(t, srv, "/")
	if status != http.StatusOK {
		t.Fatalf("dashboard: expected 200, got %d", status)
	}
	if !strings.Contains(body, "Banho") || !strings.Contains(body, "Rex") {
		t.Fatalf("expected today's appointment on dashboard")
	}

	// dos ventas del mismo producto: una sola línea agregada en reportes
	for i := 0; i < 2; i++ {
		status, _ = postForm(t, srv, "/sales", url.Values{
			"product_name": {"Shampoo"},
			"price":        {"50"},
			"tutor_id":     {tutorID},
		})
		if status != http.StatusOK {
			t.Fatalf("create sale: expected 200 after redirect, got %d", status)
		}
	}

	status, body = get(t, srv, "/reports")
	if status != http.StatusOK {
		t.Fatalf("reports: expected 200, got %d", status)
	}
	if !strings.Contains(body, "Shampoo") {
		t.Fatalf("expected Shampoo line in reports")
	}
	if !strings.Contains(body, "100.00") {
		t.Fatalf("expected aggregated total 100.00 in reports")
	}

	// la tutora tiene mascota y ventas: borrar debe rechazarse
	status, body = get(t, srv, "/tutor/delete/"+tutorID)
	if status != http.StatusConflict {
		t.Fatalf("delete tutor in use: expected 409, got %d (%s)", status, body)
	}
}

func TestRouter_SearchIsCaseInsensitive(t *testing.T) {
	srv := newTestServer(t)

	status, _ := postForm(t, srv, "/tutors", url.Values{
		"name":  {"Maria Silva"},
		"phone": {"555-2222"},
	})
	if status != http.StatusOK {
		t.Fatalf("create tutor: expected 200 after redirect, got %d", status)
	}

	for _, search := range []string{"maria", "SILVA"} {
		_, body := get(t, srv, "/tutors?search="+search)
		if !strings.Contains(body, "Maria Silva") {
			t.Fatalf("search %q: expected match", search)
		}
	}

	_, body := get(t, srv, "/tutors?search=xyz")
	if strings.Contains(body, "Maria Silva") {
		t.Fatalf("search xyz: expected no match")
	}
}

func TestRouter_DeleteUnknownIDIsNoOp(t *testing.T) {
	srv := newTestServer(t)

	status, _ := get(t, srv, "/tutor/delete/no-such-id")
	if status != http.StatusOK {
		t.Fatalf("expected redirect back to list, got %d", status)
	}
}

func TestRouter_MalformedDateTimeIsBadRequest(t *testing.T) {
	srv := newTestServer(t)

	status, body := postForm(t, srv, "/appointments", url.Values{
		"date_time": {"31/08/2026 15:00"},
		"service":   {"Banho"},
		"pet_id":    {"pet-1"},
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed date_time, got %d (%s)", status, body)
	}
}

func TestRouter_MalformedPriceIsBadRequest(t *testing.T) {
	srv := newTestServer(t)

	status, _ := postForm(t, srv, "/sales", url.Values{
		"product_name": {"Shampoo"},
		"price":        {"abc"},
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed price, got %d", status)
	}
}
