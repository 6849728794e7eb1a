package events

import (
	"context"
	"testing"

	"github.com/mahabubulhasibshawon/spt-portal/internal/domain"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPublisher_NotConnected(t *testing.T) {
	p := &Publisher{logger: zap.NewNop()}
	err := p.Publish(context.Background(), domain.EventOrderCreated, map[string]string{"id": "1"})
	assert.ErrorIs(t, err, nats.ErrConnectionClosed)
	p.Close()
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := Connect("nats://127.0.0.1:1", zap.NewNop())
	assert.Error(t, err)
}

func TestNoop(t *testing.T) {
	assert.NoError(t, Noop{}.Publish(context.Background(), domain.EventUserConfirmed, nil))
}
