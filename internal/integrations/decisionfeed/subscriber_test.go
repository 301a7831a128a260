package decisionfeed

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saikabilane/AutoSense/internal/usecase/triage_vehicle"
	"github.com/Saikabilane/AutoSense/pkg/logger"
)

type fakeToken struct{ err error }

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *fakeToken) Error() error { return t.err }

type fakeMessage struct {
	topic   string
	payload []byte
}

func (m *fakeMessage) Duplicate() bool   { return false }
func (m *fakeMessage) Qos() byte         { return 1 }
func (m *fakeMessage) Retained() bool    { return false }
func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) MessageID() uint16 { return 1 }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              {}

type fakeClient struct {
	opts         *paho.ClientOptions
	connectErr   error
	subscribeErr error

	topic        string
	qos          byte
	handler      paho.MessageHandler
	disconnected bool
}

func (c *fakeClient) IsConnected() bool { return c.connectErr == nil }

func (c *fakeClient) Connect() paho.Token {
	if c.connectErr != nil {
		return &fakeToken{err: c.connectErr}
	}
	if c.opts.OnConnect != nil {
		c.opts.OnConnect(nil)
	}
	return &fakeToken{}
}

func (c *fakeClient) Disconnect(uint) { c.disconnected = true }

func (c *fakeClient) Subscribe(topic string, qos byte, cb paho.MessageHandler) paho.Token {
	c.topic, c.qos, c.handler = topic, qos, cb
	return &fakeToken{err: c.subscribeErr}
}

type fakeTriage struct {
	mu       sync.Mutex
	requests []*triage_vehicle.Request
	resp     *triage_vehicle.Response
	err      error
}

func (f *fakeTriage) Execute(_ context.Context, req *triage_vehicle.Request) (*triage_vehicle.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func withFakeClient(t *testing.T, fc *fakeClient) {
	t.Helper()
	newMQTTClient = func(o *paho.ClientOptions) pahoClient { fc.opts = o; return fc }
	t.Cleanup(func() {
		newMQTTClient = func(opts *paho.ClientOptions) pahoClient { return paho.NewClient(opts) }
	})
}

func testConfig() Config {
	return Config{Broker: "tcp://localhost:1883", ClientID: "autosense-test", Topic: "autosense/decisions", QoS: 1}
}

func TestSubscriber_StartAndDeliver(t *testing.T) {
	fc := &fakeClient{}
	withFakeClient(t, fc)
	triage := &fakeTriage{resp: &triage_vehicle.Response{Outcome: triage_vehicle.OutcomeBooked, Confirmation: "Booking confirmed"}}

	s := NewSubscriber(testConfig(), triage, logger.Nop())
	require.NoError(t, s.Start(context.Background()))

	assert.Equal(t, "autosense/decisions", fc.topic)
	assert.Equal(t, byte(1), fc.qos)
	require.NotNil(t, fc.handler)

	fc.handler(nil, &fakeMessage{
		topic:   "autosense/decisions",
		payload: []byte(`{"vehicleId":" KA01 ","vehicleType":"Car","decision":"ENGINE ISSUE","riskLevel":"High","customerName":"Asha","phoneNumber":"+910000000000"}`),
	})

	require.Len(t, triage.requests, 1)
	req := triage.requests[0]
	assert.Equal(t, "KA01", req.VehicleID)
	assert.Equal(t, "Car", req.VehicleType)
	assert.Equal(t, "ENGINE ISSUE", req.Decision)
	assert.Equal(t, "+910000000000", req.PhoneNumber)

	s.Stop()
	assert.True(t, fc.disconnected)
}

func TestSubscriber_IgnoresMessagesAfterStop(t *testing.T) {
	fc := &fakeClient{}
	withFakeClient(t, fc)
	triage := &fakeTriage{resp: &triage_vehicle.Response{Outcome: triage_vehicle.OutcomeNoService}}

	s := NewSubscriber(testConfig(), triage, logger.Nop())
	require.NoError(t, s.Start(context.Background()))
	s.Stop()

	fc.handler(nil, &fakeMessage{
		topic:   "autosense/decisions",
		payload: []byte(`{"vehicleId":"V1","decision":"ENGINE ISSUE"}`),
	})
	assert.Empty(t, triage.requests)
}

func TestSubscriber_IgnoresMessagesAfterContextCancel(t *testing.T) {
	fc := &fakeClient{}
	withFakeClient(t, fc)
	triage := &fakeTriage{resp: &triage_vehicle.Response{Outcome: triage_vehicle.OutcomeNoService}}

	ctx, cancel := context.WithCancel(context.Background())
	s := NewSubscriber(testConfig(), triage, logger.Nop())
	require.NoError(t, s.Start(ctx))
	cancel()

	fc.handler(nil, &fakeMessage{
		topic:   "autosense/decisions",
		payload: []byte(`{"vehicleId":"V1","decision":"ENGINE ISSUE"}`),
	})
	assert.Empty(t, triage.requests)
	s.Stop()
}

func TestSubscriber_ClientOptions(t *testing.T) {
	cfg := testConfig()
	cfg.Username, cfg.Password = "u", "p"

	opts := NewClientOptions(cfg)
	assert.Equal(t, "autosense-test", opts.ClientID)
	assert.Equal(t, "u", opts.Username)
	assert.Equal(t, "p", opts.Password)
	assert.True(t, opts.AutoReconnect)
	assert.False(t, opts.Order)
}

func TestSubscriber_ConnectError(t *testing.T) {
	withFakeClient(t, &fakeClient{connectErr: errors.New("refused")})

	s := NewSubscriber(testConfig(), &fakeTriage{}, logger.Nop())
	err := s.Start(context.Background())
	assert.ErrorIs(t, err, ErrConnect)
}

func TestSubscriber_SubscribeError(t *testing.T) {
	fc := &fakeClient{subscribeErr: errors.New("not authorized")}
	withFakeClient(t, fc)

	s := NewSubscriber(testConfig(), &fakeTriage{}, logger.Nop())
	err := s.Start(context.Background())
	assert.ErrorIs(t, err, ErrSubscribe)
	assert.True(t, fc.disconnected)
}

func TestSubscriber_Handle(t *testing.T) {
	tests := []struct {
		name        string
		payload     string
		triageErr   error
		wantErr     error
		wantTriaged int
	}{
		{name: "invalid json", payload: `{"vehicleId":`, wantErr: ErrInvalidMessage},
		{name: "missing decision", payload: `{"vehicleId":"V1"}`, wantErr: ErrInvalidMessage},
		{name: "triage failure", payload: `{"vehicleId":"V1","decision":"BATTERY ISSUE"}`, triageErr: triage_vehicle.ErrInternal, wantErr: triage_vehicle.ErrInternal, wantTriaged: 1},
		{name: "no service", payload: `{"vehicleId":"V1","decision":"NO SERVICE"}`, wantTriaged: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			triage := &fakeTriage{
				resp: &triage_vehicle.Response{Outcome: triage_vehicle.OutcomeNoService},
				err:  tt.triageErr,
			}
			s := NewSubscriber(testConfig(), triage, logger.Nop())

			err := s.Handle([]byte(tt.payload))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, triage.requests, tt.wantTriaged)
		})
	}
}
