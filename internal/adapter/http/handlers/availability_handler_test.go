package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fieldpilot/internal/adapter/http/handlers/mocks"
	"fieldpilot/internal/domain/entities"
	"fieldpilot/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityHandler_Availability(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("global view without owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAvailabilityUseCase(ctrl)
		h := NewAvailabilityHandler(uc)

		r := gin.New()
		r.GET("/v1/availability", h.Availability)

		uc.EXPECT().Global(gomock.Any()).Return(usecase.Availability{
			Booked:  []string{"2026-09-01"},
			Pending: []string{},
			Blocked: []string{"2026-09-02"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/availability", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string][]string
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp["booked"]) != 1 || resp["booked"][0] != "2026-09-01" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("owner view with owner_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAvailabilityUseCase(ctrl)
		h := NewAvailabilityHandler(uc)

		r := gin.New()
		r.GET("/v1/availability", h.Availability)

		uc.EXPECT().ForOwner(gomock.Any(), "own-1").Return(usecase.Availability{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/availability?owner_id=own-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAvailabilityUseCase(ctrl)
		h := NewAvailabilityHandler(uc)

		r := gin.New()
		r.GET("/v1/availability", h.Availability)

		uc.EXPECT().Global(gomock.Any()).Return(usecase.Availability{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/availability", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestAvailabilityHandler_CalendarFeed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAvailabilityUseCase(ctrl)
	h := NewAvailabilityHandler(uc)

	r := gin.New()
	r.GET("/v1/calendar/feed", h.CalendarFeed)

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	uc.EXPECT().ListEvents(gomock.Any(), "own-1").Return([]entities.CalendarEvent{
		{ID: "ev-1", Title: "Install", Start: start, End: start.Add(time.Hour), Type: entities.CalendarEventTypeJob},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/calendar/feed?owner_id=own-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Fatalf("unexpected content type: %s", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "BEGIN:VCALENDAR") || !strings.Contains(body, "SUMMARY:Install") {
		t.Fatalf("unexpected feed body:\n%s", body)
	}
}

func TestAvailabilityHandler_CreateBlock(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAvailabilityUseCase(ctrl)
		h := NewAvailabilityHandler(uc)

		r := gin.New()
		r.POST("/v1/calendar/blocks", h.CreateBlock)

		req := httptest.NewRequest(http.MethodPost, "/v1/calendar/blocks", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("job type rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAvailabilityUseCase(ctrl)
		h := NewAvailabilityHandler(uc)

		r := gin.New()
		r.POST("/v1/calendar/blocks", h.CreateBlock)

		uc.EXPECT().CreateBlock(gomock.Any(), "Install", entities.CalendarEventTypeJob, "own-1", gomock.Any(), gomock.Any()).
			Return(entities.CalendarEvent{}, usecase.ErrInvalidEventType)

		body := `{"title":"Install","type":"job","owner_id":"own-1","start":"2026-09-01T09:00:00Z","end":"2026-09-01T10:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/calendar/blocks", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAvailabilityUseCase(ctrl)
		h := NewAvailabilityHandler(uc)

		r := gin.New()
		r.POST("/v1/calendar/blocks", h.CreateBlock)

		uc.EXPECT().CreateBlock(gomock.Any(), "Holiday", entities.CalendarEventTypeBlocked, "", gomock.Any(), gomock.Any()).
			Return(entities.CalendarEvent{ID: "ev-1", Title: "Holiday", Type: entities.CalendarEventTypeBlocked}, nil)

		body := `{"title":"Holiday","type":"blocked","start":"2026-09-01T00:00:00Z","end":"2026-09-02T00:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/calendar/blocks", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "ev-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
