package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"guestadmin/internal/config"
	"guestadmin/internal/http/middleware"
)

func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login/", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		json.NewDecoder(r.Body).Decode(&creds)
		if creds["password"] != "secret123" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Invalid credentials."}`))
			return
		}
		w.Write([]byte(`{"token":"backend-token","user":{"id":1,"name":"Ana","email":"ana@example.com","role":"ADMIN","status":"ACTIVE"}}`))
	})
	mux.HandleFunc("GET /admin/orders/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Token backend-token" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Invalid token."}`))
			return
		}
		w.Write([]byte(`{"results":[
			{"id":1,"order_number":"ORD-001","status":"P","total_amount":"10.00","customer":{"id":1,"username":"guest1"}},
			{"id":2,"order_number":"ORD-002","status":"D","total_amount":"25.00","customer":{"id":2,"username":"guest2"}}
		]}`))
	})
	mux.HandleFunc("GET /orders/1/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1,"order_number":"ORD-001","status":"P","total_amount":"10.00","customer":{"id":1,"username":"guest1"}}`))
	})
	mux.HandleFunc("PATCH /orders/1/status/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1,"order_number":"ORD-001","status":"C","total_amount":"10.00"}`))
	})
	mux.HandleFunc("GET /categories/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"id":1,"name":"Linen"}]}`))
	})
	mux.HandleFunc("POST /categories/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":2,"name":"Toiletries"}`))
	})
	mux.HandleFunc("DELETE /categories/1/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testRouter(t *testing.T, backendURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	env := config.Env{
		BackendBaseURL: backendURL,
		BackendTimeout: 5 * time.Second,
		SessionSecret:  "test-secret",
		CORSOrigins:    []string{"http://localhost:5173"},
	}
	return NewRouter(env)
}

func do(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := testRouter(t, fakeBackend(t).URL)
	w := do(r, http.MethodGet, "/api/health", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("health returned %d", w.Code)
	}
}

func TestAdminRequiresSession(t *testing.T) {
	r := testRouter(t, fakeBackend(t).URL)
	w := do(r, http.MethodGet, "/api/admin/orders", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", w.Code)
	}
}

func TestLoginAndListOrders(t *testing.T) {
	r := testRouter(t, fakeBackend(t).URL)

	login := do(r, http.MethodPost, "/api/auth/login", "", `{"email":"ana@example.com","password":"secret123"}`)
	if login.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", login.Code, login.Body.String())
	}
	var loginResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(login.Body.Bytes(), &loginResp); err != nil || loginResp.Token == "" {
		t.Fatalf("login response missing token: %s", login.Body.String())
	}

	list := do(r, http.MethodGet, "/api/admin/orders?status=P", loginResp.Token, "")
	if list.Code != http.StatusOK {
		t.Fatalf("list returned %d: %s", list.Code, list.Body.String())
	}
	var listResp struct {
		TotalFiltered int `json:"total_filtered"`
		Page          int `json:"page"`
		Stats         struct {
			Total   int     `json:"total"`
			Revenue float64 `json:"revenue"`
		} `json:"stats"`
		StatusOptions []struct {
			Value string `json:"value"`
			Label string `json:"label"`
		} `json:"status_options"`
	}
	if err := json.Unmarshal(list.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("bad list payload: %v", err)
	}
	if listResp.TotalFiltered != 1 {
		t.Fatalf("expected 1 pending order, got %d", listResp.TotalFiltered)
	}
	if listResp.Stats.Total != 2 || listResp.Stats.Revenue != 25 {
		t.Fatalf("stats should span full collection: %+v", listResp.Stats)
	}
	if len(listResp.StatusOptions) != 7 {
		t.Fatalf("expected every order status in the dropdown, got %d", len(listResp.StatusOptions))
	}
	if listResp.StatusOptions[0].Value != "P" || listResp.StatusOptions[0].Label != "Pending" {
		t.Fatalf("unexpected first option: %+v", listResp.StatusOptions[0])
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := testRouter(t, fakeBackend(t).URL)
	w := do(r, http.MethodPost, "/api/auth/login", "", `{"email":"ana@example.com","password":"wrong-password"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginValidatesForm(t *testing.T) {
	r := testRouter(t, fakeBackend(t).URL)
	w := do(r, http.MethodPost, "/api/auth/login", "", `{"email":"","password":""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Email is required") {
		t.Fatalf("expected field message in body: %s", w.Body.String())
	}
}

func TestMutationRequiresRole(t *testing.T) {
	r := testRouter(t, fakeBackend(t).URL)
	staff, err := middleware.MintSession("test-secret", "backend-token", "STAFF", "Bo", "bo@example.com")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	w := do(r, http.MethodPatch, "/api/admin/orders/1/status", staff, `{"status":"C"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("staff mutation should be forbidden, got %d", w.Code)
	}

	admin, _ := middleware.MintSession("test-secret", "backend-token", "ADMIN", "Ana", "ana@example.com")
	w = do(r, http.MethodPatch, "/api/admin/orders/1/status", admin, `{"status":"C"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("admin mutation failed: %d %s", w.Code, w.Body.String())
	}
}

func TestCategoryManagement(t *testing.T) {
	r := testRouter(t, fakeBackend(t).URL)
	admin, _ := middleware.MintSession("test-secret", "backend-token", "ADMIN", "Ana", "ana@example.com")
	staff, _ := middleware.MintSession("test-secret", "backend-token", "STAFF", "Bo", "bo@example.com")

	w := do(r, http.MethodGet, "/api/admin/products/categories", staff, "")
	if w.Code != http.StatusOK {
		t.Fatalf("category list returned %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Linen") {
		t.Fatalf("category list missing rows: %s", w.Body.String())
	}

	w = do(r, http.MethodPost, "/api/admin/products/categories", staff, `{"name":"Toiletries"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("staff category create should be forbidden, got %d", w.Code)
	}

	w = do(r, http.MethodPost, "/api/admin/products/categories", admin, `{"name":"Toiletries"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("category create returned %d: %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPost, "/api/admin/products/categories", admin, `{"name":"  "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("blank name should fail validation, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Category name is required") {
		t.Fatalf("expected field message in body: %s", w.Body.String())
	}

	w = do(r, http.MethodDelete, "/api/admin/products/categories/1", admin, "")
	if w.Code != http.StatusOK {
		t.Fatalf("category delete returned %d: %s", w.Code, w.Body.String())
	}
}

func TestOrdersExportCSV(t *testing.T) {
	r := testRouter(t, fakeBackend(t).URL)
	admin, _ := middleware.MintSession("test-secret", "backend-token", "ADMIN", "Ana", "ana@example.com")

	w := do(r, http.MethodGet, "/api/admin/orders/export.csv", admin, "")
	if w.Code != http.StatusOK {
		t.Fatalf("export returned %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "orders_") {
		t.Fatalf("missing export filename: %q", w.Header().Get("Content-Disposition"))
	}
	if !strings.Contains(w.Body.String(), "ORD-001") {
		t.Fatalf("export body missing rows: %s", w.Body.String())
	}
}

func TestOrderPrintPDF(t *testing.T) {
	r := testRouter(t, fakeBackend(t).URL)
	admin, _ := middleware.MintSession("test-secret", "backend-token", "ADMIN", "Ana", "ana@example.com")

	w := do(r, http.MethodGet, "/api/admin/orders/1/print", admin, "")
	if w.Code != http.StatusOK {
		t.Fatalf("print returned %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if w.Body.Len() == 0 {
		t.Fatalf("empty pdf body")
	}
}

func TestExpiredBackendTokenSurfacesAs401(t *testing.T) {
	r := testRouter(t, fakeBackend(t).URL)
	stale, _ := middleware.MintSession("test-secret", "dead-token", "ADMIN", "Ana", "ana@example.com")

	w := do(r, http.MethodGet, "/api/admin/orders", stale, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("dead backend token should yield 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUnknownRoute(t *testing.T) {
	r := testRouter(t, fakeBackend(t).URL)
	w := do(r, http.MethodGet, "/api/nope", "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
