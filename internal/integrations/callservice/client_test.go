package callservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saikabilane/AutoSense/pkg/logger"
)

func TestPlaceCall_ReturnsSelection(t *testing.T) {
	var got CallRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/calls", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, got.RequestID, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"selection":"Thursday 10:00"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second, logger.Nop())
	res, err := c.PlaceCall(context.Background(), CallRequest{
		Script: "Hello",
		Slots:  []string{"Thursday 09:00", "Thursday 10:00"},
		Number: "+911234567890",
	})
	require.NoError(t, err)

	assert.Equal(t, "Thursday 10:00", res.Selection)
	assert.NotEmpty(t, got.RequestID)
	assert.Equal(t, []string{"Thursday 09:00", "Thursday 10:00"}, got.Slots)
	assert.Equal(t, "+911234567890", got.Number)
}

func TestPlaceCall_NoSelection(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"no content": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
		"empty selection": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"selection":"  "}`))
		},
	}

	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(h)
			defer srv.Close()

			_, err := NewClient(srv.URL, time.Second, logger.Nop()).PlaceCall(context.Background(), CallRequest{})
			assert.ErrorIs(t, err, ErrNoSelection)
		})
	}
}

func TestPlaceCall_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, logger.Nop())

	_, err := c.PlaceCall(context.Background(), CallRequest{})
	assert.ErrorIs(t, err, ErrInvalidResponse)

	_, err = c.PlaceCallWithGracefulDegradation(context.Background(), CallRequest{})
	assert.ErrorIs(t, err, ErrServiceDegraded)
}

func TestPlaceCallWithGracefulDegradation_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, 200*time.Millisecond, logger.Nop()).
		PlaceCallWithGracefulDegradation(context.Background(), CallRequest{RequestID: "req-1"})
	assert.ErrorIs(t, err, ErrServiceDegraded)
	assert.Contains(t, err.Error(), "req-1")
}
