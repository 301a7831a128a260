package triage_vehicle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	triageVehicle "github.com/Saikabilane/AutoSense/internal/usecase/triage_vehicle"
	"github.com/Saikabilane/AutoSense/pkg/logger"
)

type fakeUseCase struct {
	got  *triageVehicle.Request
	resp *triageVehicle.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *triageVehicle.Request) (*triageVehicle.Response, error) {
	f.got = req
	return f.resp, f.err
}

const body = `{"vehicleId":"EV7","vehicleType":"EV","decision":"BATTERY ISSUE","riskLevel":"High","customerName":"Ravi","phoneNumber":"+91"}`

func post(h *Handler, payload string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/triage", strings.NewReader(payload)))
	return rec
}

func TestHandle_Booked(t *testing.T) {
	uc := &fakeUseCase{resp: &triageVehicle.Response{
		Outcome:      triageVehicle.OutcomeBooked,
		Decision:     "BATTERY ISSUE",
		SlotID:       4,
		Confirmation: "Booking confirmed for EV7 (Slot ID: 4) on Thursday at 12:00.",
	}}

	rec := post(NewHandler(uc, logger.Nop()), body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Ravi", uc.got.CustomerName)
	assert.Equal(t, "+91", uc.got.PhoneNumber)

	var resp TriageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "booked", resp.Outcome)
	assert.Equal(t, int64(4), resp.SlotID)
}

func TestHandle_NotBooked(t *testing.T) {
	uc := &fakeUseCase{resp: &triageVehicle.Response{Outcome: triageVehicle.OutcomeNoSelection, Decision: "BATTERY ISSUE"}}

	rec := post(NewHandler(uc, logger.Nop()), body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"outcome":"no_selection"`)
	assert.NotContains(t, rec.Body.String(), "slotId")
}

func TestHandle_Errors(t *testing.T) {
	cases := map[string]struct {
		payload string
		err     error
		status  int
	}{
		"bad body": {payload: `{"vehicleId":`, status: http.StatusBadRequest},
		"decision": {payload: body, err: triageVehicle.ErrUnknownDecision, status: http.StatusBadRequest},
		"invalid":  {payload: body, err: triageVehicle.ErrInvalidInput, status: http.StatusBadRequest},
		"taken":    {payload: body, err: triageVehicle.ErrSlotUnavailable, status: http.StatusConflict},
		"internal": {payload: body, err: triageVehicle.ErrInternal, status: http.StatusInternalServerError},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := post(NewHandler(&fakeUseCase{err: tc.err}, logger.Nop()), tc.payload)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
