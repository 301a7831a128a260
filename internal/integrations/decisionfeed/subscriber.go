// Package decisionfeed подписывается на решения диагностики в MQTT и запускает триаж
package decisionfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

const (
	disconnectQuiesceMs = 250
	handleTimeout       = 5 * time.Minute
)

// Config параметры подключения к брокеру
type Config struct {
	Broker   string
	ClientID string
	Username string
	Password string
	Topic    string
	QoS      byte
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// Subscriber получает решения и передает их в сценарий триажа
type Subscriber struct {
	cfg    Config
	triage TriageUseCase
	logger Logger

	mu      sync.Mutex
	cli     pahoClient
	ctx     context.Context
	cancel  context.CancelFunc
	stopped bool
	wg      sync.WaitGroup // wg.Add только под mu и до stopped
}

// NewSubscriber создает подписчика; подключение выполняется в Start
func NewSubscriber(cfg Config, triage TriageUseCase, logger Logger) *Subscriber {
	return &Subscriber{cfg: cfg, triage: triage, logger: logger}
}

// NewClientOptions собирает опции paho клиента
func NewClientOptions(cfg Config) *paho.ClientOptions {
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	// Триаж ждет звонка клиенту, сообщения не должны блокировать друг друга
	opts.SetOrderMatters(false)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	return opts
}

// Start подключается к брокеру и подписывается на топик решений
// Подписка повторяется после каждого переподключения
func (s *Subscriber) Start(ctx context.Context) error {
	opts := NewClientOptions(s.cfg)

	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	subscribed := make(chan error, 1)
	opts.OnConnect = func(_ paho.Client) {
		s.logger.Info("DecisionFeed: connected to %s", s.cfg.Broker)
		err := s.subscribe()
		if err != nil {
			s.logger.Error("DecisionFeed: subscribe error: %v", err)
		}
		select {
		case subscribed <- err:
		default:
		}
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		s.logger.Error("DecisionFeed: connection lost: %v", err)
	}
	opts.OnReconnecting = func(_ paho.Client, _ *paho.ClientOptions) {
		s.logger.Warn("DecisionFeed: reconnecting to %s", s.cfg.Broker)
	}

	c := newMQTTClient(opts)
	s.mu.Lock()
	s.cli = c
	s.mu.Unlock()

	if token := c.Connect(); token.Wait() && token.Error() != nil {
		s.cancel()
		return fmt.Errorf("%w: %v", ErrConnect, token.Error())
	}

	select {
	case err := <-subscribed:
		if err != nil {
			c.Disconnect(disconnectQuiesceMs)
			s.cancel()
			return err
		}
	case <-ctx.Done():
		c.Disconnect(disconnectQuiesceMs)
		s.cancel()
		return ctx.Err()
	}

	s.logger.Info("DecisionFeed: subscribed to %s (qos=%d)", s.cfg.Topic, s.cfg.QoS)
	return nil
}

// Stop перестает принимать сообщения, отключается от брокера и дожидается обрабатываемых
func (s *Subscriber) Stop() {
	s.mu.Lock()
	s.stopped = true
	c, cancel := s.cli, s.cancel
	s.mu.Unlock()

	if c != nil {
		c.Disconnect(disconnectQuiesceMs)
	}
	s.wg.Wait()
	if cancel != nil {
		cancel()
	}
	s.logger.Info("DecisionFeed: stopped")
}

func (s *Subscriber) subscribe() error {
	s.mu.Lock()
	c := s.cli
	s.mu.Unlock()

	token := c.Subscribe(s.cfg.Topic, s.cfg.QoS, s.onMessage)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("%w: topic=%s: %v", ErrSubscribe, s.cfg.Topic, token.Error())
	}
	return nil
}

func (s *Subscriber) onMessage(_ paho.Client, msg paho.Message) {
	s.mu.Lock()
	if s.stopped || (s.ctx != nil && s.ctx.Err() != nil) {
		s.mu.Unlock()
		s.logger.Warn("DecisionFeed: subscriber is stopping, message on %s ignored", msg.Topic())
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()
	defer s.wg.Done()

	if err := s.Handle(msg.Payload()); err != nil {
		s.logger.Warn("DecisionFeed: message on %s dropped: %v", msg.Topic(), err)
	}
}

// Handle разбирает сообщение и выполняет триаж
func (s *Subscriber) Handle(payload []byte) error {
	var m Message
	if err := json.Unmarshal(payload, &m); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if m.VehicleID == "" || m.Decision == "" {
		return fmt.Errorf("%w: vehicleId and decision are required", ErrInvalidMessage)
	}

	s.mu.Lock()
	parent := s.ctx
	s.mu.Unlock()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, handleTimeout)
	defer cancel()

	resp, err := s.triage.Execute(ctx, m.ToTriageRequest())
	if err != nil {
		return fmt.Errorf("triage vehicle=%s: %w", m.VehicleID, err)
	}

	if resp.Confirmation != "" {
		s.logger.Info("DecisionFeed: vehicle=%s outcome=%s: %s", m.VehicleID, resp.Outcome, resp.Confirmation)
	} else {
		s.logger.Info("DecisionFeed: vehicle=%s outcome=%s", m.VehicleID, resp.Outcome)
	}
	return nil
}
