// internal/app/system/changefeed/changefeed.go
//
// Package changefeed announces record mutations so that site front ends and
// caches can refresh. Each change is published as JSON on
//
//	<prefix>.<kind>.<action>
//
// e.g. chamberhub.changes.events.updated.
package changefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// Actions
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Change is the published message.
type Change struct {
	ID     string    `json:"id"`
	Kind   string    `json:"kind"`
	Action string    `json:"action"`
	Record int64     `json:"record_id"`
	At     time.Time `json:"at"`
}

// Publisher sends changes. Publishing never blocks a request on delivery.
type Publisher interface {
	Publish(ctx context.Context, c Change) error
	Close()
}

// Nop discards every change. Used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, Change) error { return nil }
func (Nop) Close()                                {}

// NATS publishes to a NATS server.
type NATS struct {
	nc     *nats.Conn
	prefix string
	log    *zap.Logger
}

// Connect dials url and keeps reconnecting in the background.
func Connect(url, prefix string, logger *zap.Logger) (*NATS, error) {
	nc, err := nats.Connect(url,
		nats.Name("chamberhub"),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			logger.Warn("nats error", zap.Error(err))
		}),
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
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	return &NATS{nc: nc, prefix: prefix, log: logger}, nil
}

// Subject returns the subject a change is published on.
func Subject(prefix string, c Change) string {
	if prefix == "" {
		return c.Kind + "." + c.Action
	}
	return prefix + "." + c.Kind + "." + c.Action
}

// Stamp fills in the message id and time when unset.
func Stamp(c Change) Change {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.At.IsZero() {
		c.At = time.Now().UTC()
	}
	return c
}

func (n *NATS) Publish(_ context.Context, c Change) error {
	c = Stamp(c)
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal change: %w", err)
	}
	if err := n.nc.Publish(Subject(n.prefix, c), data); err != nil {
		return fmt.Errorf("publish change: %w", err)
	}
	return nil
}

// Close flushes pending messages and closes the connection.
func (n *NATS) Close() {
	if err := n.nc.Drain(); err != nil {
		n.log.Warn("nats drain failed", zap.Error(err))
		n.nc.Close()
	}
}
