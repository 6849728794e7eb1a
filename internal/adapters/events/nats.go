// internal/adapters/events/nats.go
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

type Event struct {
	Subject    string      `json:"subject"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

// Publisher publishes JSON encoded domain events over a NATS connection.
type Publisher struct {
	nc     *nats.Conn
	logger *zap.Logger
}

func Connect(url string, logger *zap.Logger) (*Publisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("spt-portal"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", zap.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to nats", zap.String("url", nc.ConnectedUrl()))
	return &Publisher{nc: nc, logger: logger}, nil
}

func (p *Publisher) Publish(_ context.Context, subject string, payload interface{}) error {
	if p.nc == nil || !p.nc.IsConnected() {
		return nats.ErrConnectionClosed
	}
	data, err := json.Marshal(Event{Subject: subject, OccurredAt: time.Now().UTC(), Payload: payload})
	if err != nil {
		return err
	}
	return p.nc.Publish(subject, data)
}

func (p *Publisher) Close() {
	if p.nc == nil {
		return
	}
	if err := p.nc.Drain(); err != nil {
		p.logger.Warn("nats drain", zap.Error(err))
	}
}

// Noop discards events. Used when NATS_URL is not configured.
type Noop struct{}

func (Noop) Publish(context.Context, string, interface{}) error { return nil }
