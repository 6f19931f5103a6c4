package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"idea_api/internal/adapter/http/handlers/mocks"
	"idea_api/internal/domain/entities"
	"idea_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInfrastructureHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty table returns empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInfrastructureUseCase(ctrl)
		h := NewInfrastructureHandler(uc)

		r := gin.New()
		r.GET("/infrastructure/all", h.GetAll)

		uc.EXPECT().GetAll(gomock.Any()).Return([]entities.VMRecord{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/infrastructure/all", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty json array, got %s", w.Body.String())
		}
	})

	t.Run("rows are serialized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInfrastructureUseCase(ctrl)
		h := NewInfrastructureHandler(uc)

		r := gin.New()
		r.GET("/infrastructure/all", h.GetAll)

		yr := "FY26"
		cost := 1000.0
		role := "SQL"
		uc.EXPECT().GetAll(gomock.Any()).Return([]entities.VMRecord{
			{VMName: "vm_1", FiscWk: "2026-W01", FiscYr: &yr, Cost: &cost, Role: &role},
			{VMName: "vm_2", FiscWk: "2026-W01"},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/infrastructure/all", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["vm_name"] != "vm_1" || body[0]["cost"] != 1000.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body[1]["cost"] != nil {
			t.Fatalf("expected explicit null cost, got %s", w.Body.String())
		}
	})

	t.Run("data access failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInfrastructureUseCase(ctrl)
		h := NewInfrastructureHandler(uc)

		r := gin.New()
		r.GET("/infrastructure/all", h.GetAll)

		uc.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("connection refused"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/infrastructure/all", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INTERNAL_ERROR" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		// Internal detail must not leak to the client.
		if bytes.Contains(w.Body.Bytes(), []byte("connection refused")) {
			t.Fatalf("internal error leaked: %s", w.Body.String())
		}
	})
}

func TestInfrastructureHandler_QueryVMs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	post := func(h *InfrastructureHandler, payload string) *httptest.ResponseRecorder {
		r := gin.New()
		r.POST("/infrastructure/vms", h.QueryVMs)
		req := httptest.NewRequest(http.MethodPost, "/infrastructure/vms", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewInfrastructureHandler(mocks.NewMockIInfrastructureUseCase(ctrl))

		if w := post(h, "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing fisc_wk", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewInfrastructureHandler(mocks.NewMockIInfrastructureUseCase(ctrl))

		if w := post(h, `{"vm_name":["vm_1"]}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty vm_name list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewInfrastructureHandler(mocks.NewMockIInfrastructureUseCase(ctrl))

		if w := post(h, `{"vm_name":[],"fisc_wk":"2026-W01"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInfrastructureUseCase(ctrl)
		h := NewInfrastructureHandler(uc)

		uc.EXPECT().QueryVMs(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, 0, usecase.ErrNoVMNames)

		if w := post(h, `{"vm_name":["  "],"fisc_wk":"2026-W01"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success with count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInfrastructureUseCase(ctrl)
		h := NewInfrastructureHandler(uc)

		uc.EXPECT().QueryVMs(gomock.Any(), []string{"vm_1", "vm_2"}, "2026-W01").
			Return([]entities.VMRecord{{VMName: "vm_1", FiscWk: "2026-W01"}}, 1, nil)

		w := post(h, `{"vm_name":["vm_1","vm_2"],"fisc_wk":"2026-W01"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			TotalCount int              `json:"total_count"`
			Data       []map[string]any `json:"data"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.TotalCount != 1 || len(body.Data) != 1 || body.Data[0]["vm_name"] != "vm_1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("data access failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInfrastructureUseCase(ctrl)
		h := NewInfrastructureHandler(uc)

		uc.EXPECT().QueryVMs(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, 0, errors.New("scan failure"))

		if w := post(h, `{"vm_name":["vm_1"],"fisc_wk":"2026-W01"}`); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
