package interests

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := NewStore(filepath.Join(t.TempDir(), "interests.json"))
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	router := gin.New()
	router.GET("/api/interests", GetHandler(store, logger))
	router.POST("/api/interests", SaveHandler(store, logger))
	return router, store
}

func TestGetInterestsDefaults(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/interests", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var m map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !m["News"] {
		t.Errorf("expected News enabled by default, got %+v", m)
	}
}

func TestSaveThenGetInterests(t *testing.T) {
	router, _ := newTestRouter(t)

	body := `{"News":false,"Cooking":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/interests", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"saved"`) {
		t.Errorf("expected saved status, got %s", w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/interests", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var m map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if m["News"] || !m["Cooking"] {
		t.Errorf("unexpected interests after save: %+v", m)
	}
}

func TestSaveInterestsRejectsInvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json"},
		{"non-boolean value", `{"News":"yes"}`},
		{"empty object", `{}`},
		{"array body", `["News"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t)

			req := httptest.NewRequest(http.MethodPost, "/api/interests", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}
