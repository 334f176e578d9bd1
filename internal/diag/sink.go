package diag

import (
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/agiangrant/stacklayout/layout"
)

// Sink implements layout.Diagnostics on top of a zap logger. Warnings
// pass through a token bucket; errors are never dropped.
type Sink struct {
	log     *zap.SugaredLogger
	limiter *rate.Limiter
	dropped atomic.Int64
}

// NewSink wraps log. perSecond <= 0 disables rate limiting.
func NewSink(log *zap.Logger, perSecond float64, burst int) *Sink {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Sink{log: log.Sugar()}
	if perSecond > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
	}
	return s
}

// FromConfig builds a logger and sink from cfg.
func FromConfig(cfg Config) (*zap.Logger, *Sink) {
	log := New(cfg, nil)
	return log, NewSink(log, cfg.WarnRate, cfg.WarnBurst)
}

// Log implements layout.Diagnostics.
func (s *Sink) Log(level layout.Level, msg string, keyvals ...any) {
	switch level {
	case layout.LevelDebug:
		s.log.Debugw(msg, keyvals...)
	case layout.LevelInfo:
		s.log.Infow(msg, keyvals...)
	case layout.LevelWarn:
		if s.limiter != nil && !s.limiter.Allow() {
			s.dropped.Add(1)
			return
		}
		s.log.Warnw(msg, keyvals...)
	default:
		s.log.Errorw(msg, keyvals...)
	}
}

// Dropped returns how many warnings the rate limit suppressed.
func (s *Sink) Dropped() int64 {
	return s.dropped.Load()
}

// Sync flushes the underlying logger.
func (s *Sink) Sync() error {
	return s.log.Sync()
}
