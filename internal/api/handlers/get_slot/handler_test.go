package get_slot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/Saikabilane/AutoSense/internal/service/calendar"
	"github.com/Saikabilane/AutoSense/internal/service/calendar/models"
	"github.com/Saikabilane/AutoSense/pkg/logger"
)

type fakeService struct{}

func (fakeService) GetSlot(_ context.Context, id int64) (*models.SlotResponse, error) {
	switch id {
	case 1:
		return &models.SlotResponse{ID: 1, Day: "Thursday", Time: "09:00", Status: "FREE"}, nil
	case 0:
		return nil, calendar.ErrInvalidInput
	default:
		return nil, calendar.ErrSlotNotFound
	}
}

func TestHandle(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/slots/{slotId}", NewHandler(fakeService{}, logger.Nop()).Handle)

	cases := map[string]int{
		"/slots/1":   http.StatusOK,
		"/slots/0":   http.StatusBadRequest,
		"/slots/abc": http.StatusBadRequest,
		"/slots/77":  http.StatusNotFound,
	}
	for url, status := range cases {
		t.Run(url, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
			assert.Equal(t, status, rec.Code)
		})
	}
}
