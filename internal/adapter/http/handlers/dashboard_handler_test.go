package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"corpculture/internal/adapter/http/handlers/mocks"
	"corpculture/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard", h.Summary)

		uc.EXPECT().Summary(gomock.Any()).Return(usecase.DashboardSummary{
			Counts: map[string]int64{"invoices": 12, "companies": 3},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		counts, _ := body["counts"].(map[string]any)
		if counts["invoices"] != float64(12) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard", h.Summary)

		uc.EXPECT().Summary(gomock.Any()).Return(usecase.DashboardSummary{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
