package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guillaumevincent/monpatrimoine/internal/config"
	"github.com/guillaumevincent/monpatrimoine/internal/logger"
	"github.com/guillaumevincent/monpatrimoine/internal/services"
	"github.com/guillaumevincent/monpatrimoine/internal/testutil"
	"github.com/guillaumevincent/monpatrimoine/internal/validator"
)

const (
	ownerPassword  = "correct horse battery staple"
	pipelineAPIKey = "pipeline-secret"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test", "error")
	validator.Register()
}

type testApp struct {
	Router *gin.Engine
}

// setupApp builds the full router over an isolated in-memory database.
// An empty password hash leaves the API open.
func setupApp(t *testing.T, withAuth bool) *testApp {
	t.Helper()

	cfg := &config.Config{
		Currency:         "EUR",
		PipelineAPIKey:   pipelineAPIKey,
		JWTExpirationDur: time.Hour,
		StorageVersion:   1,
	}
	if withAuth {
		hash, err := services.HashPassword(ownerPassword)
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}
		cfg.OwnerPasswordHash = hash
	}

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	return &testApp{Router: newRouter(cfg, db)}
}

func (app *testApp) request(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func bearer(token string) map[string]string {
	if token == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

func (app *testApp) login(t *testing.T) string {
	t.Helper()
	rec := app.request(http.MethodPost, "/api/v1/auth/login", fmt.Sprintf(`{"password":%q}`, ownerPassword), nil)
	expectStatus(t, rec, http.StatusOK)
	return parseJSON(t, rec)["token"].(string)
}

func (app *testApp) createPosition(t *testing.T, token, label, category string) string {
	t.Helper()
	body := fmt.Sprintf(`{"label":%q,"category":%q}`, label, category)
	rec := app.request(http.MethodPost, "/api/v1/positions", body, bearer(token))
	expectStatus(t, rec, http.StatusCreated)
	return parseJSON(t, rec)["position"].(map[string]interface{})["id"].(string)
}

func (app *testApp) netWorths(t *testing.T, token string) []float64 {
	t.Helper()
	rec := app.request(http.MethodGet, "/api/v1/snapshots", "", bearer(token))
	expectStatus(t, rec, http.StatusOK)
	var nets []float64
	for _, s := range parseJSON(t, rec)["data"].([]interface{}) {
		wealth := s.(map[string]interface{})["wealth"].(map[string]interface{})
		nets = append(nets, wealth["net"].(float64))
	}
	return nets
}

func hasAuditEntry(t *testing.T, rec *httptest.ResponseRecorder, subject, action string) bool {
	t.Helper()
	for _, l := range parseJSON(t, rec)["data"].([]interface{}) {
		entry := l.(map[string]interface{})
		if entry["subject"] == subject && entry["action"] == action {
			return true
		}
	}
	return false
}

func TestRouter_Health(t *testing.T) {
	app := setupApp(t, false)

	rec := app.request(http.MethodGet, "/api/health", "", nil)

	expectStatus(t, rec, http.StatusOK)
	if got := parseJSON(t, rec)["status"]; got != "ok" {
		t.Errorf("expected status ok, got %v", got)
	}
}

func TestRouter_Auth(t *testing.T) {
	app := setupApp(t, true)

	t.Run("rejects_missing_token", func(t *testing.T) {
		rec := app.request(http.MethodGet, "/api/v1/positions", "", nil)
		expectStatus(t, rec, http.StatusUnauthorized)
	})

	t.Run("rejects_wrong_password", func(t *testing.T) {
		rec := app.request(http.MethodPost, "/api/v1/auth/login", `{"password":"nope"}`, nil)
		expectStatus(t, rec, http.StatusUnauthorized)
	})

	t.Run("token_opens_protected_routes", func(t *testing.T) {
		token := app.login(t)
		rec := app.request(http.MethodGet, "/api/v1/positions", "", bearer(token))
		expectStatus(t, rec, http.StatusOK)
	})

	t.Run("login_is_audited", func(t *testing.T) {
		token := app.login(t)
		rec := app.request(http.MethodGet, "/api/v1/audit-logs", "", bearer(token))
		expectStatus(t, rec, http.StatusOK)
		if !hasAuditEntry(t, rec, "owner", "LOGIN") {
			t.Errorf("expected a LOGIN audit entry, got %s", rec.Body.String())
		}
	})
}

func TestRouter_CORSPreflight(t *testing.T) {
	app := setupApp(t, true)

	rec := app.request(http.MethodOptions, "/api/v1/positions", "", nil)

	expectStatus(t, rec, http.StatusNoContent)
	if got := rec.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "X-API-Key") {
		t.Errorf("expected X-API-Key in allowed headers, got %q", got)
	}
}

func TestRouter_BilanFlow(t *testing.T) {
	app := setupApp(t, true)
	token := app.login(t)

	cashID := app.createPosition(t, token, "Livret A", "cash")
	loanID := app.createPosition(t, token, "Prêt immobilier", "debt")

	const date = "2024-01-15T00:00:00.000Z"
	body := fmt.Sprintf(`{"amounts":{%q:100000,%q:-40000}}`, cashID, loanID)
	rec := app.request(http.MethodPut, "/api/v1/bilans/2024-01-15", body, bearer(token))
	expectStatus(t, rec, http.StatusOK)
	if got := parseJSON(t, rec)["bilan"].(map[string]interface{})["date"]; got != date {
		t.Fatalf("expected normalized date %s, got %v", date, got)
	}

	t.Run("lists_the_bilan_date", func(t *testing.T) {
		rec := app.request(http.MethodGet, "/api/v1/bilans", "", bearer(token))
		expectStatus(t, rec, http.StatusOK)
		dates := parseJSON(t, rec)["dates"].([]interface{})
		if len(dates) != 1 || dates[0] != date {
			t.Errorf("expected [%s], got %v", date, dates)
		}
	})

	t.Run("prefills_the_form", func(t *testing.T) {
		rec := app.request(http.MethodGet, "/api/v1/bilans/"+date, "", bearer(token))
		expectStatus(t, rec, http.StatusOK)
		form := parseJSON(t, rec)["bilan"].(map[string]interface{})
		if form["exists"] != true {
			t.Errorf("expected existing bilan, got %v", form)
		}
		if got := form["amounts"].(map[string]interface{})[cashID]; got != float64(100000) {
			t.Errorf("expected cash amount 100000, got %v", got)
		}
	})

	t.Run("snapshots_net_worth", func(t *testing.T) {
		nets := app.netWorths(t, token)
		if len(nets) != 2 || nets[0] != 60000 || nets[1] != 60000 {
			t.Errorf("expected current and dated net worth of 60000, got %v", nets)
		}
	})

	t.Run("renders_the_report", func(t *testing.T) {
		rec := app.request(http.MethodGet, "/api/v1/snapshots/report?format=html", "", bearer(token))
		expectStatus(t, rec, http.StatusOK)
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("expected text/html, got %q", ct)
		}
		if !strings.Contains(rec.Body.String(), "<table>") {
			t.Errorf("expected HTML tables in report")
		}
	})

	t.Run("deleting_a_position_drops_its_records", func(t *testing.T) {
		rec := app.request(http.MethodDelete, "/api/v1/positions/"+loanID, "", bearer(token))
		expectStatus(t, rec, http.StatusOK)

		nets := app.netWorths(t, token)
		if len(nets) != 2 || nets[0] != 100000 {
			t.Errorf("expected net worth of 100000 without the loan, got %v", nets)
		}
	})

	t.Run("deleting_the_bilan", func(t *testing.T) {
		rec := app.request(http.MethodDelete, "/api/v1/bilans/2024-01-15", "", bearer(token))
		expectStatus(t, rec, http.StatusOK)

		rec = app.request(http.MethodGet, "/api/v1/bilans", "", bearer(token))
		expectStatus(t, rec, http.StatusOK)
		if dates := parseJSON(t, rec)["dates"].([]interface{}); len(dates) != 0 {
			t.Errorf("expected no bilan left, got %v", dates)
		}

		rec = app.request(http.MethodDelete, "/api/v1/bilans/2024-01-15", "", bearer(token))
		expectStatus(t, rec, http.StatusNotFound)
	})
}

func TestRouter_Pipeline(t *testing.T) {
	app := setupApp(t, false)
	cashID := app.createPosition(t, "", "Compte courant", "cash")
	body := fmt.Sprintf(`{"amounts":{%q:2500}}`, cashID)

	t.Run("rejects_wrong_key", func(t *testing.T) {
		rec := app.request(http.MethodPut, "/api/v1/pipeline/bilans/2024-02-01", body, map[string]string{"X-API-Key": "wrong"})
		expectStatus(t, rec, http.StatusUnauthorized)
	})

	t.Run("submits_with_key", func(t *testing.T) {
		rec := app.request(http.MethodPut, "/api/v1/pipeline/bilans/2024-02-01", body, map[string]string{"X-API-Key": pipelineAPIKey})
		expectStatus(t, rec, http.StatusOK)

		rec = app.request(http.MethodGet, "/api/v1/audit-logs", "", nil)
		expectStatus(t, rec, http.StatusOK)
		if !hasAuditEntry(t, rec, "pipeline", "SUBMIT_BILAN") {
			t.Errorf("expected SUBMIT_BILAN by pipeline, got %s", rec.Body.String())
		}
	})
}
