package handlers

import (
	"errors"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	response "mvz_quote/internal/adapter/http/dto/response"
	"mvz_quote/internal/domain/quote"
	"mvz_quote/internal/usecase"
)

const (
	sseEventSummary   = "summary"
	sseEventHeartbeat = "heartbeat"
	heartbeatInterval = 15 * time.Second
)

// Events godoc
// @Summary Live price summary stream
// @Description Server-sent events. Sends the current summary on connect, then one "summary" event per quiet period after a burst of changes. The stream ends once the session is discarded or evicted.
// @Tags Quote sessions
// @Produce text/event-stream
// @Param id path string true "Session ID"
// @Success 200 {object} response.LiveUpdate
// @Failure 404 {object} pkg.HTTPError
// @Router /quote-sessions/{id}/events [get]
func (h *QuoteSessionHandler) Events(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	initial, err := h.usecase.View(ctx, id)
	if err != nil {
		h.fail(c, mapQuoteError(err))
		return
	}

	updates := make(chan response.LiveUpdate, 1)
	var (
		mu     sync.Mutex
		latest response.LiveUpdate
	)
	publish := func() {
		mu.Lock()
		u := latest
		mu.Unlock()
		// Keep only the newest update when the writer lags behind.
		select {
		case <-updates:
		default:
		}
		select {
		case updates <- u:
		default:
		}
	}
	debounced := debounce.New(h.liveDebounce)

	unsubscribe, err := h.usecase.Subscribe(ctx, id, func(e quote.Event, v quote.View) {
		mu.Lock()
		latest = response.FromView(e.Kind, v)
		mu.Unlock()
		debounced(publish)
	})
	if err != nil {
		h.fail(c, mapQuoteError(err))
		return
	}
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent(sseEventSummary, response.FromView("", initial))
	c.Writer.Flush()

	h.logger.Debug("[quote][handler] live stream opened", zap.String("session_id", id))
	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("[quote][handler] live stream closed", zap.String("session_id", id))
			return
		case u := <-updates:
			c.SSEvent(sseEventSummary, u)
			c.Writer.Flush()
		case <-heartbeat.C:
			// Evicted or discarded sessions never publish again.
			if _, err := h.usecase.View(ctx, id); errors.Is(err, usecase.ErrSessionNotFound) {
				h.logger.Debug("[quote][handler] live stream ended, session gone", zap.String("session_id", id))
				return
			}
			c.SSEvent(sseEventHeartbeat, time.Now().UTC().Format(time.RFC3339))
			c.Writer.Flush()
		}
	}
}
