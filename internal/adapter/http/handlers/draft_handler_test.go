package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"corpculture/internal/adapter/http/handlers/mocks"
	"corpculture/internal/domain/entities"
	"corpculture/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDraftRouter(t *testing.T) (*gin.Engine, *mocks.MockIDraftUseCase, *mocks.MockISubmissionUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	drafts := mocks.NewMockIDraftUseCase(ctrl)
	submissions := mocks.NewMockISubmissionUseCase(ctrl)
	h := NewDraftHandler(drafts, submissions)

	r := gin.New()
	r.POST("/v1/drafts", h.CreateDraft)
	r.GET("/v1/drafts/:id", h.GetDraft)
	r.PATCH("/v1/drafts/:id/header", h.SetHeaderField)
	r.POST("/v1/drafts/:id/items", h.AddLineItem)
	r.PATCH("/v1/drafts/:id/items/:rowID", h.UpdateLineItem)
	r.DELETE("/v1/drafts/:id/items/:rowID", h.RemoveLineItem)
	r.POST("/v1/drafts/:id/groups", h.AddGroup)
	r.DELETE("/v1/drafts/:id/groups/:groupID", h.RemoveGroup)
	r.POST("/v1/drafts/:id/reset", h.ResetDraft)
	r.DELETE("/v1/drafts/:id", h.DiscardDraft)
	r.POST("/v1/drafts/:id/submit", h.SubmitDraft)
	return r, drafts, submissions
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDraftHandler_CreateDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		r, _, _ := newDraftRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/drafts", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing kind", func(t *testing.T) {
		r, _, _ := newDraftRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/drafts", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("new session", func(t *testing.T) {
		r, drafts, _ := newDraftRouter(t)
		drafts.EXPECT().Create(gomock.Any(), "invoice").Return(entities.Draft{ID: "draft-1", Kind: entities.KindInvoice}, nil)

		w := doJSON(r, http.MethodPost, "/v1/drafts", `{"kind":"invoice"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "draft-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("remote id hydrates", func(t *testing.T) {
		r, drafts, _ := newDraftRouter(t)
		drafts.EXPECT().Hydrate(gomock.Any(), "invoice", "inv-1").Return(entities.Draft{ID: "draft-1", Kind: entities.KindInvoice, RemoteID: "inv-1"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/drafts", `{"kind":"invoice","remote_id":"inv-1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["edit_mode"] != true {
			t.Fatalf("expected edit mode, got %s", w.Body.String())
		}
	})

	t.Run("invalid kind", func(t *testing.T) {
		r, drafts, _ := newDraftRouter(t)
		drafts.EXPECT().Create(gomock.Any(), "ledger").Return(entities.Draft{}, usecase.ErrInvalidDocumentKind)

		w := doJSON(r, http.MethodPost, "/v1/drafts", `{"kind":"ledger"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("hydrate remote failure", func(t *testing.T) {
		r, drafts, _ := newDraftRouter(t)
		drafts.EXPECT().Hydrate(gomock.Any(), "invoice", "inv-1").Return(entities.Draft{}, &entities.RemoteError{StatusCode: 404, Message: "invoice not found"})

		w := doJSON(r, http.MethodPost, "/v1/drafts", `{"kind":"invoice","remote_id":"inv-1"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "invoice not found" {
			t.Fatalf("expected upstream message, got %s", w.Body.String())
		}
	})
}

func TestDraftHandler_LineItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add success", func(t *testing.T) {
		r, drafts, _ := newDraftRouter(t)
		drafts.EXPECT().
			AddLineItem(gomock.Any(), "draft-1", usecase.LineItemInput{ProductID: "prod-1", Quantity: "2", UnitRate: "100"}).
			Return(entities.Draft{ID: "draft-1", Kind: entities.KindInvoice}, nil)

		w := doJSON(r, http.MethodPost, "/v1/drafts/draft-1/items", `{"product_id":"prod-1","quantity":"2","rate":"100"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("add missing quantity", func(t *testing.T) {
		r, _, _ := newDraftRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/drafts/draft-1/items", `{"product_id":"prod-1","rate":"100"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("add rejected row", func(t *testing.T) {
		r, drafts, _ := newDraftRouter(t)
		drafts.EXPECT().
			AddLineItem(gomock.Any(), "draft-1", gomock.Any()).
			Return(entities.Draft{}, entities.ErrLineItemQuantity)

		w := doJSON(r, http.MethodPost, "/v1/drafts/draft-1/items", `{"product_id":"prod-1","quantity":"0","rate":"100"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update unknown row", func(t *testing.T) {
		r, drafts, _ := newDraftRouter(t)
		drafts.EXPECT().
			UpdateLineItem(gomock.Any(), "draft-1", "row-9", gomock.Any()).
			Return(entities.Draft{}, entities.ErrRowNotFound)

		w := doJSON(r, http.MethodPatch, "/v1/drafts/draft-1/items/row-9", `{"quantity":"3"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("remove success", func(t *testing.T) {
		r, drafts, _ := newDraftRouter(t)
		drafts.EXPECT().
			RemoveLineItem(gomock.Any(), "draft-1", "row-1").
			Return(entities.Draft{ID: "draft-1", Kind: entities.KindInvoice}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/drafts/draft-1/items/row-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDraftHandler_HeaderAndGroups(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("set header field", func(t *testing.T) {
		r, drafts, _ := newDraftRouter(t)
		drafts.EXPECT().
			SetHeaderField(gomock.Any(), "draft-1", "company", "comp-2").
			Return(entities.Draft{ID: "draft-1", Kind: entities.KindInvoice, Header: entities.Header{CompanyID: "comp-2"}}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/drafts/draft-1/header", `{"field":"company","value":"comp-2"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown header field", func(t *testing.T) {
		r, drafts, _ := newDraftRouter(t)
		drafts.EXPECT().
			SetHeaderField(gomock.Any(), "draft-1", "warehouse", "w-1").
			Return(entities.Draft{}, entities.ErrUnknownHeaderField)

		w := doJSON(r, http.MethodPatch, "/v1/drafts/draft-1/header", `{"field":"warehouse","value":"w-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("add group", func(t *testing.T) {
		r, drafts, _ := newDraftRouter(t)
		drafts.EXPECT().
			AddGroup(gomock.Any(), "draft-1", "Machine A").
			Return(entities.Draft{ID: "draft-1", Kind: entities.KindService}, nil)

		w := doJSON(r, http.MethodPost, "/v1/drafts/draft-1/groups", `{"name":"Machine A"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("remove unknown group", func(t *testing.T) {
		r, drafts, _ := newDraftRouter(t)
		drafts.EXPECT().
			RemoveGroup(gomock.Any(), "draft-1", "grp-9").
			Return(entities.Draft{}, entities.ErrGroupNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/drafts/draft-1/groups/grp-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDraftHandler_Lifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get unknown draft", func(t *testing.T) {
		r, drafts, _ := newDraftRouter(t)
		drafts.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Draft{}, usecase.ErrDraftNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/drafts/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("reset", func(t *testing.T) {
		r, drafts, _ := newDraftRouter(t)
		drafts.EXPECT().Reset(gomock.Any(), "draft-1").Return(entities.Draft{ID: "draft-1", Kind: entities.KindInvoice}, nil)

		w := doJSON(r, http.MethodPost, "/v1/drafts/draft-1/reset", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("discard", func(t *testing.T) {
		r, drafts, _ := newDraftRouter(t)
		drafts.EXPECT().Discard(gomock.Any(), "draft-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/drafts/draft-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestDraftHandler_SubmitDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create success", func(t *testing.T) {
		r, _, submissions := newDraftRouter(t)
		submissions.EXPECT().
			Submit(gomock.Any(), "draft-1").
			Return(usecase.SubmissionResult{Document: map[string]any{"_id": "inv-9", "invoiceNumber": "25-26/00009"}}, nil)

		w := doJSON(r, http.MethodPost, "/v1/drafts/draft-1/submit", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["remote_id"] != "inv-9" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("update answers 200", func(t *testing.T) {
		r, _, submissions := newDraftRouter(t)
		submissions.EXPECT().
			Submit(gomock.Any(), "draft-1").
			Return(usecase.SubmissionResult{Document: map[string]any{"_id": "inv-9"}, Updated: true}, nil)

		w := doJSON(r, http.MethodPost, "/v1/drafts/draft-1/submit", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not submittable", func(t *testing.T) {
		r, _, submissions := newDraftRouter(t)
		submissions.EXPECT().Submit(gomock.Any(), "draft-1").Return(usecase.SubmissionResult{}, usecase.ErrMissingCompany)

		w := doJSON(r, http.MethodPost, "/v1/drafts/draft-1/submit", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("remote failure", func(t *testing.T) {
		r, _, submissions := newDraftRouter(t)
		submissions.EXPECT().Submit(gomock.Any(), "draft-1").Return(usecase.SubmissionResult{}, &entities.RemoteError{StatusCode: 500, Message: "database unavailable"})

		w := doJSON(r, http.MethodPost, "/v1/drafts/draft-1/submit", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("unknown draft", func(t *testing.T) {
		r, _, submissions := newDraftRouter(t)
		submissions.EXPECT().Submit(gomock.Any(), "missing").Return(usecase.SubmissionResult{}, usecase.ErrDraftNotFound)

		w := doJSON(r, http.MethodPost, "/v1/drafts/missing/submit", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapDraftError(t *testing.T) {
	if got := mapDraftError(usecase.ErrInvalidDraftID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapDraftError(entities.ErrLineItemRate); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapDraftError(usecase.ErrDraftNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapDraftError(&entities.RemoteError{Message: "nope"}); got.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("expected 502")
	}
	if got := mapDraftError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
