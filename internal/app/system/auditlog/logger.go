// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/chamberhub/internal/app/store/audit"
	"github.com/dalemusser/chamberhub/internal/app/system/changefeed"
	"github.com/dalemusser/chamberhub/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

// Destinations for a category.
const (
	DestAll = "all" // Mongo and zap
	DestDB  = "db"
	DestLog = "log"
	DestOff = "off"
)

// Config selects where each category goes.
type Config struct {
	Auth  string
	Admin string
}

// Sink persists events. *audit.Store satisfies it.
type Sink interface {
	Log(ctx context.Context, event audit.Event) error
}

// Logger records auth and admin events and forwards record mutations to
// the change feed. A nil *Logger is a no-op.
type Logger struct {
	sink   Sink
	zapLog *zap.Logger
	config Config
	feed   changefeed.Publisher
}

// New creates a Logger. feed may be nil.
func New(sink Sink, zapLog *zap.Logger, config Config, feed changefeed.Publisher) *Logger {
	if feed == nil {
		feed = changefeed.Nop{}
	}
	return &Logger{sink: sink, zapLog: zapLog, config: config, feed: feed}
}

func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}
	if event.UserID != nil {
		fields = append(fields, zap.Int64("user_id", *event.UserID))
	}
	if event.ActorID != nil {
		fields = append(fields, zap.Int64("actor_id", *event.ActorID))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records event according to its category's destination.
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	setting := DestAll
	switch event.Category {
	case audit.CategoryAuth:
		setting = l.config.Auth
	case audit.CategoryAdmin:
		setting = l.config.Admin
	}
	if setting == "" {
		setting = DestAll
	}
	if setting == DestOff {
		return
	}

	if setting == DestAll || setting == DestLog {
		l.logToZap(event)
	}
	if (setting == DestAll || setting == DestDB) && l.sink != nil {
		if err := l.sink.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

func requestEvent(r *http.Request, category, eventType string, success bool) audit.Event {
	return audit.Event{
		Category:  category,
		EventType: eventType,
		IP:        ratelimit.ClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   success,
	}
}

// --- Authentication events ---

func (l *Logger) Signup(ctx context.Context, r *http.Request, userID int64, email string) {
	e := requestEvent(r, audit.CategoryAuth, audit.EventSignup, true)
	e.UserID = &userID
	e.Details = map[string]string{"email": email}
	l.Log(ctx, e)
}

func (l *Logger) LoginSuccess(ctx context.Context, r *http.Request, userID int64, email string) {
	e := requestEvent(r, audit.CategoryAuth, audit.EventLoginSuccess, true)
	e.UserID = &userID
	e.Details = map[string]string{"email": email}
	l.Log(ctx, e)
}

func (l *Logger) LoginFailedUserNotFound(ctx context.Context, r *http.Request, email string) {
	e := requestEvent(r, audit.CategoryAuth, audit.EventLoginFailedUserNotFound, false)
	e.FailureReason = "user not found"
	e.Details = map[string]string{"email": email}
	l.Log(ctx, e)
}

func (l *Logger) LoginFailedWrongPassword(ctx context.Context, r *http.Request, userID int64, email string) {
	e := requestEvent(r, audit.CategoryAuth, audit.EventLoginFailedWrongPassword, false)
	e.UserID = &userID
	e.FailureReason = "wrong password"
	e.Details = map[string]string{"email": email}
	l.Log(ctx, e)
}

func (l *Logger) LoginRateLimited(ctx context.Context, r *http.Request, email string) {
	e := requestEvent(r, audit.CategoryAuth, audit.EventLoginFailedRateLimit, false)
	e.FailureReason = "rate limited"
	e.Details = map[string]string{"email": email}
	l.Log(ctx, e)
}

func (l *Logger) Logout(ctx context.Context, r *http.Request, userID int64) {
	e := requestEvent(r, audit.CategoryAuth, audit.EventLogout, true)
	e.UserID = &userID
	l.Log(ctx, e)
}

// --- Admin events ---

// RecordChanged logs a mutation of the record kind/id by actor and
// publishes it on the change feed.
func (l *Logger) RecordChanged(ctx context.Context, r *http.Request, actorID int64, eventType, kind string, id int64) {
	if l == nil {
		return
	}
	e := requestEvent(r, audit.CategoryAdmin, eventType, true)
	e.ActorID = &actorID
	e.Details = map[string]string{"kind": kind, "id": strconv.FormatInt(id, 10)}
	l.Log(ctx, e)

	c := changefeed.Change{Kind: kind, Action: feedAction(eventType), Record: id}
	if err := l.feed.Publish(ctx, c); err != nil {
		l.zapLog.Warn("failed to publish change",
			zap.String("kind", kind), zap.Int64("id", id), zap.Error(err))
	}
}

func feedAction(eventType string) string {
	switch eventType {
	case audit.EventRecordCreated:
		return changefeed.ActionCreated
	case audit.EventRecordDeleted:
		return changefeed.ActionDeleted
	default:
		return changefeed.ActionUpdated
	}
}

// Created, Updated and Deleted are shorthands used by the feature handlers.
func (l *Logger) Created(ctx context.Context, r *http.Request, actorID int64, kind string, id int64) {
	l.RecordChanged(ctx, r, actorID, audit.EventRecordCreated, kind, id)
}

func (l *Logger) Updated(ctx context.Context, r *http.Request, actorID int64, kind string, id int64) {
	l.RecordChanged(ctx, r, actorID, audit.EventRecordUpdated, kind, id)
}

func (l *Logger) Deleted(ctx context.Context, r *http.Request, actorID int64, kind string, id int64) {
	l.RecordChanged(ctx, r, actorID, audit.EventRecordDeleted, kind, id)
}
