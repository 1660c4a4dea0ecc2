package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lmnts_studio/internal/adapter/http/handlers/mocks"
	"lmnts_studio/internal/usecase"
	"lmnts_studio/internal/wizard"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func testWizardView(t *testing.T) usecase.WizardView {
	t.Helper()
	w, err := wizard.New("sess-1", wizard.FlowUnified, "", "")
	if err != nil {
		t.Fatalf("new wizard: %v", err)
	}
	return usecase.WizardView{Session: *w}
}

func TestWizardHandler_StartWizard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewWizardHandler(uc)

		r := gin.New()
		r.POST("/v1/wizard", h.StartWizard)

		req := httptest.NewRequest(http.MethodPost, "/v1/wizard", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty body starts the default flow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewWizardHandler(uc)

		r := gin.New()
		r.POST("/v1/wizard", h.StartWizard)

		uc.EXPECT().Start(gomock.Any(), wizard.FlowUnified, "", "").Return(testWizardView(t), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/wizard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["session_id"] != "sess-1" {
			t.Fatalf("expected session_id sess-1, got %v", body["session_id"])
		}
		if body["step"] != float64(1) {
			t.Fatalf("expected step 1, got %v", body["step"])
		}
	})

	t.Run("ai flow with plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewWizardHandler(uc)

		r := gin.New()
		r.POST("/v1/wizard", h.StartWizard)

		uc.EXPECT().Start(gomock.Any(), wizard.FlowAI, "starter", "ai").Return(testWizardView(t), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/wizard", bytes.NewBufferString(`{"flow":"ai","plan":"starter","service_type":"ai"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("unknown flow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewWizardHandler(uc)

		r := gin.New()
		r.POST("/v1/wizard", h.StartWizard)

		uc.EXPECT().Start(gomock.Any(), wizard.Flow("bogus"), "", "").Return(usecase.WizardView{}, wizard.ErrUnknownFlow)

		req := httptest.NewRequest(http.MethodPost, "/v1/wizard", bytes.NewBufferString(`{"flow":"bogus"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestWizardHandler_GetWizard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewWizardHandler(uc)

		r := gin.New()
		r.GET("/v1/wizard/:id", h.GetWizard)

		uc.EXPECT().Get(gomock.Any(), "missing").Return(usecase.WizardView{}, wizard.ErrSessionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/wizard/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestWizardHandler_NextStep(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("step incomplete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewWizardHandler(uc)

		r := gin.New()
		r.POST("/v1/wizard/:id/next", h.NextStep)

		uc.EXPECT().Next(gomock.Any(), "sess-1").Return(usecase.WizardView{}, wizard.ErrStepIncomplete)

		req := httptest.NewRequest(http.MethodPost, "/v1/wizard/sess-1/next", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestWizardHandler_UpdateWizard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("patch forwards only present fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewWizardHandler(uc)

		r := gin.New()
		r.PATCH("/v1/wizard/:id", h.UpdateWizard)

		uc.EXPECT().
			Update(gomock.Any(), "sess-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, patch usecase.FormPatch) (usecase.WizardView, error) {
				if patch.Email == nil || *patch.Email != "jane@example.com" {
					t.Fatalf("expected email patch, got %+v", patch)
				}
				if patch.ProjectName != nil {
					t.Fatalf("expected project name untouched, got %q", *patch.ProjectName)
				}
				return testWizardView(t), nil
			})

		req := httptest.NewRequest(http.MethodPatch, "/v1/wizard/sess-1", bytes.NewBufferString(`{"email":"jane@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWizardHandler_SubmitWizard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewWizardHandler(uc)

		r := gin.New()
		r.POST("/v1/wizard/:id/submit", h.SubmitWizard)

		uc.EXPECT().Submit(gomock.Any(), "sess-1").Return(usecase.SubmissionResult{
			Success:     true,
			TrackingID:  "MOCK-1700000000000",
			PaymentLink: "https://PayPal.Me/9LMNTSSTUDIO/500",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/wizard/sess-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["tracking_id"] != "MOCK-1700000000000" {
			t.Fatalf("unexpected tracking id: %v", body["tracking_id"])
		}
		if body["success"] != true {
			t.Fatalf("expected success=true, got %v", body["success"])
		}
	})

	t.Run("not at review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewWizardHandler(uc)

		r := gin.New()
		r.POST("/v1/wizard/:id/submit", h.SubmitWizard)

		uc.EXPECT().Submit(gomock.Any(), "sess-1").Return(usecase.SubmissionResult{}, wizard.ErrNotAtReview)

		req := httptest.NewRequest(http.MethodPost, "/v1/wizard/sess-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("backup failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewWizardHandler(uc)

		r := gin.New()
		r.POST("/v1/wizard/:id/submit", h.SubmitWizard)

		wrapped := fmt.Errorf("%w: disk full", usecase.ErrBackupFailed)
		uc.EXPECT().Submit(gomock.Any(), "sess-1").Return(usecase.SubmissionResult{}, wrapped)

		req := httptest.NewRequest(http.MethodPost, "/v1/wizard/sess-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
