package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"mvz_quote/internal/domain/quote"
	"mvz_quote/internal/observability"
	"mvz_quote/internal/usecase/interfaces"
)

// IAutosaveUseCase periodically persists contact snapshots and evicts idle
// sessions.
type IAutosaveUseCase interface {
	Run(ctx context.Context)
	Tick(ctx context.Context) AutosaveResult
}

type AutosaveResult struct {
	Saved   int
	Failed  int
	Evicted int
}

type AutosaveUseCase struct {
	sessions    interfaces.ISessionRepository
	snapshots   interfaces.ISnapshotStore
	snapshotKey string
	interval    time.Duration
	sessionTTL  time.Duration
	logger      *zap.Logger
	metrics     *observability.Metrics
	now         func() time.Time
}

var _ IAutosaveUseCase = (*AutosaveUseCase)(nil)

func NewAutosaveUseCase(
	sessions interfaces.ISessionRepository,
	snapshots interfaces.ISnapshotStore,
	snapshotKey string,
	interval, sessionTTL time.Duration,
	logger *zap.Logger,
	metrics *observability.Metrics,
) *AutosaveUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = observability.NewNopMetrics()
	}
	return &AutosaveUseCase{
		sessions:    sessions,
		snapshots:   snapshots,
		snapshotKey: snapshotKey,
		interval:    interval,
		sessionTTL:  sessionTTL,
		logger:      logger,
		metrics:     metrics,
		now:         time.Now,
	}
}

// Run ticks until ctx is done, then flushes pending snapshots once more.
func (u *AutosaveUseCase) Run(ctx context.Context) {
	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()
	u.logger.Info("[autosave][usecase] started", zap.Duration("interval", u.interval))

	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), u.interval)
			res := u.save(flushCtx)
			cancel()
			u.logger.Info("[autosave][usecase] stopped", zap.Int("flushed", res.Saved))
			return
		case <-ticker.C:
			u.Tick(ctx)
		}
	}
}

// Tick saves every changed contact snapshot, then drops sessions idle for
// longer than the session TTL.
func (u *AutosaveUseCase) Tick(ctx context.Context) AutosaveResult {
	res := u.save(ctx)

	if u.sessionTTL > 0 {
		evicted, err := u.sessions.DeleteIdle(ctx, u.now().UTC().Add(-u.sessionTTL))
		if err != nil {
			u.logger.Error("[autosave][usecase] evict failed", zap.Error(err))
		}
		for range evicted {
			u.metrics.RecordSessionClosed(true)
		}
		res.Evicted = len(evicted)
		if len(evicted) > 0 {
			u.logger.Info("[autosave][usecase] idle sessions evicted", zap.Strings("session_ids", evicted))
		}
	}

	if res.Saved > 0 || res.Failed > 0 {
		u.logger.Debug("[autosave][usecase] tick",
			zap.Int("saved", res.Saved),
			zap.Int("failed", res.Failed),
			zap.Int("evicted", res.Evicted),
		)
	}
	return res
}

func (u *AutosaveUseCase) save(ctx context.Context) AutosaveResult {
	var res AutosaveResult
	if u.snapshots == nil {
		return res
	}
	ids, err := u.sessions.IDs(ctx)
	if err != nil {
		u.logger.Error("[autosave][usecase] list sessions failed", zap.Error(err))
		return res
	}

	for _, id := range ids {
		_, _ = u.sessions.With(ctx, id, func(s *quote.Session) error {
			key := SnapshotKey(u.snapshotKey, s.ClientKey())
			if key == "" {
				return nil
			}
			values, rev, dirty := s.PendingSnapshot()
			if !dirty {
				return nil
			}
			payload, err := json.Marshal(values)
			if err != nil {
				return err
			}
			err = u.snapshots.Put(ctx, key, payload)
			u.metrics.RecordSnapshotWrite("put", err)
			if err != nil {
				res.Failed++
				u.logger.Warn("[autosave][usecase] snapshot write failed", zap.String("key", key), zap.Error(err))
				return nil
			}
			s.MarkSaved(rev)
			res.Saved++
			return nil
		})
	}
	return res
}
