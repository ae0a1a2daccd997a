package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/guillaumevincent/monpatrimoine/internal/errors"
	"github.com/guillaumevincent/monpatrimoine/internal/middleware"
	"github.com/guillaumevincent/monpatrimoine/internal/models"
	"github.com/guillaumevincent/monpatrimoine/internal/pagination"
	"github.com/guillaumevincent/monpatrimoine/internal/services"
	"github.com/guillaumevincent/monpatrimoine/internal/validator"
)

// --- mock services ---

type mockAuthService struct {
	loginFn func(password string) (string, time.Time, error)
}

func (m *mockAuthService) Login(password string) (string, time.Time, error) {
	if m.loginFn != nil {
		return m.loginFn(password)
	}
	return "", time.Time{}, nil
}

var _ services.AuthServicer = (*mockAuthService)(nil)

type auditEntry struct {
	subject, action, resourceType, resourceID string
	changes                                   map[string]interface{}
}

type mockAuditService struct {
	entries         []auditEntry
	listAuditLogsFn func(page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}

func (m *mockAuditService) Log(subject, action, resourceType, resourceID, _ string, changes map[string]interface{}) {
	m.entries = append(m.entries, auditEntry{subject, action, resourceType, resourceID, changes})
}

func (m *mockAuditService) ListAuditLogs(page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	if m.listAuditLogsFn != nil {
		return m.listAuditLogsFn(page)
	}
	resp := pagination.NewPageResponse[models.AuditLog](nil, 1, 20, 0)
	return &resp, nil
}

var _ services.AuditServicer = (*mockAuditService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/auth/login", handler.Login)
	return r
}

func injectSubject(subject string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.SubjectKey, subject)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func assertAudited(t *testing.T, audit *mockAuditService, action, resourceID string) auditEntry {
	t.Helper()
	if len(audit.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(audit.entries))
	}
	entry := audit.entries[0]
	if entry.action != action {
		t.Errorf("expected audit action %s, got %s", action, entry.action)
	}
	if entry.resourceID != resourceID {
		t.Errorf("expected audit resource %s, got %s", resourceID, entry.resourceID)
	}
	return entry
}

// --- tests ---

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns 200 with token", func(t *testing.T) {
		expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		authSvc := &mockAuthService{
			loginFn: func(password string) (string, time.Time, error) {
				if password != "s3cret" {
					t.Errorf("unexpected password %q", password)
				}
				return "signed.jwt.token", expires, nil
			},
		}
		audit := &mockAuditService{}
		r := setupAuthRouter(NewAuthHandler(authSvc, audit))

		rec := doRequest(r, "POST", "/auth/login", `{"password":"s3cret"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["token"] != "signed.jwt.token" {
			t.Errorf("unexpected token %v", result["token"])
		}
		if result["expires_at"] != "2030-01-01T00:00:00Z" {
			t.Errorf("unexpected expires_at %v", result["expires_at"])
		}
		entry := assertAudited(t, audit, "LOGIN", "")
		if entry.subject != middleware.OwnerSubject {
			t.Errorf("expected owner subject, got %s", entry.subject)
		}
	})

	t.Run("returns 400 on missing password", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockAuthService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/auth/login", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 401 on wrong password", func(t *testing.T) {
		authSvc := &mockAuthService{
			loginFn: func(string) (string, time.Time, error) {
				return "", time.Time{}, apperrors.ErrInvalidCredentials
			},
		}
		audit := &mockAuditService{}
		r := setupAuthRouter(NewAuthHandler(authSvc, audit))

		rec := doRequest(r, "POST", "/auth/login", `{"password":"nope"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")
		if len(audit.entries) != 0 {
			t.Errorf("expected no audit entry on failure, got %d", len(audit.entries))
		}
	})

	t.Run("returns 503 when not configured", func(t *testing.T) {
		authSvc := &mockAuthService{
			loginFn: func(string) (string, time.Time, error) {
				return "", time.Time{}, apperrors.ErrAuthNotConfigured
			},
		}
		r := setupAuthRouter(NewAuthHandler(authSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/auth/login", `{"password":"x"}`)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "AUTH_NOT_CONFIGURED")
	})
}
