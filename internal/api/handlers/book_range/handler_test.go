package book_range

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookRange "github.com/Saikabilane/AutoSense/internal/usecase/book_range"
	"github.com/Saikabilane/AutoSense/pkg/logger"
)

type fakeUseCase struct {
	got  *bookRange.Request
	resp *bookRange.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *bookRange.Request) (*bookRange.Response, error) {
	f.got = req
	return f.resp, f.err
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings/range", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &bookRange.Response{
		StartID:         1,
		EndID:           2,
		DurationMinutes: 90,
		Slots: []bookRange.Slot{
			{ID: 1, Day: "Thursday", Time: "09:00", Used: 1},
			{ID: 2, Day: "Thursday", Time: "10:00", Used: 1},
		},
	}}

	rec := post(NewHandler(uc, logger.Nop()),
		`{"startIndex":0,"vehicleId":"CA1","vehicleType":"Car","serviceType":"General Service"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 0, uc.got.StartIndex)

	var body RangeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(2), body.EndSlotID)
	assert.Len(t, body.Slots, 2)
}

func TestHandle_Errors(t *testing.T) {
	valid := `{"startIndex":62,"vehicleId":"LC1","vehicleType":"LCV","serviceType":"Major Service"}`

	cases := map[string]struct {
		body   string
		err    error
		status int
	}{
		"bad body":    {body: `[]`, status: http.StatusBadRequest},
		"no index":    {body: `{"vehicleId":"LC1"}`, status: http.StatusBadRequest},
		"invalid":     {body: valid, err: bookRange.ErrInvalidInput, status: http.StatusBadRequest},
		"unavailable": {body: valid, err: bookRange.ErrRangeUnavailable, status: http.StatusConflict},
		"internal":    {body: valid, err: bookRange.ErrInternal, status: http.StatusInternalServerError},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := post(NewHandler(&fakeUseCase{err: tc.err}, logger.Nop()), tc.body)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
