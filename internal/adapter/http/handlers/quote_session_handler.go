package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "mvz_quote/internal/adapter/http/dto/request"
	response "mvz_quote/internal/adapter/http/dto/response"
	"mvz_quote/internal/domain/entities"
	"mvz_quote/internal/domain/quote"
	"mvz_quote/internal/usecase"
	"mvz_quote/pkg"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errStepBlocked         = pkg.NewDomainErrorSimple("STEP_BLOCKED", "The current step is not complete", http.StatusUnprocessableEntity)
	errQuoteIncomplete     = pkg.NewDomainErrorSimple("QUOTE_INCOMPLETE", "The quote is not complete", http.StatusUnprocessableEntity)
)

// QuoteSessionHandler exposes the quote builder over HTTP. Every mutating
// endpoint answers with the fresh session view.

type QuoteSessionHandler struct {
	usecase      usecase.IQuoteSessionUseCase
	logger       *zap.Logger
	liveDebounce time.Duration
	heartbeat    time.Duration
}

func NewQuoteSessionHandler(uc usecase.IQuoteSessionUseCase, logger *zap.Logger, liveDebounce time.Duration) *QuoteSessionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteSessionHandler{
		usecase:      uc,
		logger:       logger,
		liveDebounce: liveDebounce,
		heartbeat:    heartbeatInterval,
	}
}

// StartSession godoc
// @Summary Start a quote session
// @Description Creates an empty three-step quote. Contact fields are restored from the client's last snapshot when a client key is given.
// @Tags Quote sessions
// @Accept json
// @Produce json
// @Param X-Client-Key header string false "Client key for contact snapshots"
// @Param body body request.StartSessionRequest false "Session options"
// @Success 201 {object} quote.View
// @Failure 400 {object} pkg.HTTPError
// @Router /quote-sessions [post]
func (h *QuoteSessionHandler) StartSession(c *gin.Context) {
	var payload request.StartSessionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			h.fail(c, errInvalidQuotePayload)
			return
		}
	}

	view, err := h.usecase.Start(c.Request.Context(), usecase.StartSessionInput{
		ClientKey: payload.ResolveClientKey(c.GetHeader(request.ClientKeyHeader)),
		Locale:    payload.Locale,
	})
	if err != nil {
		h.fail(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetSession godoc
// @Summary Get the session view
// @Tags Quote sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} quote.View
// @Failure 404 {object} pkg.HTTPError
// @Router /quote-sessions/{id} [get]
func (h *QuoteSessionHandler) GetSession(c *gin.Context) {
	view, err := h.usecase.View(c.Request.Context(), c.Param("id"))
	h.respondView(c, view, err)
}

// DiscardSession godoc
// @Summary Discard a session
// @Tags Quote sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Router /quote-sessions/{id} [delete]
func (h *QuoteSessionHandler) DiscardSession(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, mapQuoteError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SetContactField godoc
// @Summary Set a contact field
// @Description Stores the value and validates the field immediately. Phone numbers are normalized.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param field path string true "name, email, phone, address or message"
// @Param body body request.ContactFieldRequest true "Field value"
// @Success 200 {object} quote.View
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /quote-sessions/{id}/contact/{field} [put]
func (h *QuoteSessionHandler) SetContactField(c *gin.Context) {
	var payload request.ContactFieldRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.fail(c, errInvalidQuotePayload)
		return
	}
	value, err := payload.ResolveValue()
	if err != nil {
		h.fail(c, errInvalidQuotePayload)
		return
	}

	view, err := h.usecase.SetContactField(c.Request.Context(), c.Param("id"), c.Param("field"), value)
	h.respondView(c, view, err)
}

// AddItem godoc
// @Summary Add a line item
// @Tags Items
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body request.AddItemRequest true "Item type: window, door or balcony"
// @Success 201 {object} response.ItemAddedResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /quote-sessions/{id}/items [post]
func (h *QuoteSessionHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.fail(c, errInvalidQuotePayload)
		return
	}

	item, view, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), payload.Type)
	if err != nil {
		h.fail(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.ItemAddedResponse{Item: item, View: view})
}

// UpdateItem godoc
// @Summary Update one field of a line item
// @Description Numeric fields that cannot be parsed are cleared. Unknown item ids are ignored.
// @Tags Items
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param item_id path string true "Item ID"
// @Param body body request.UpdateItemRequest true "Field and value"
// @Success 200 {object} quote.View
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /quote-sessions/{id}/items/{item_id} [patch]
func (h *QuoteSessionHandler) UpdateItem(c *gin.Context) {
	var payload request.UpdateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.fail(c, errInvalidQuotePayload)
		return
	}
	value, err := payload.ResolveValue()
	if err != nil {
		h.fail(c, errInvalidQuotePayload)
		return
	}

	view, err := h.usecase.UpdateItem(c.Request.Context(), c.Param("id"), c.Param("item_id"), payload.Field, value)
	h.respondView(c, view, err)
}

// RemoveItem godoc
// @Summary Remove a line item
// @Tags Items
// @Produce json
// @Param id path string true "Session ID"
// @Param item_id path string true "Item ID"
// @Success 200 {object} quote.View
// @Failure 404 {object} pkg.HTTPError
// @Router /quote-sessions/{id}/items/{item_id} [delete]
func (h *QuoteSessionHandler) RemoveItem(c *gin.Context) {
	view, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("item_id"))
	h.respondView(c, view, err)
}

// GetSummary godoc
// @Summary Price breakdown
// @Tags Items
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} quote.Summary
// @Failure 404 {object} pkg.HTTPError
// @Router /quote-sessions/{id}/summary [get]
func (h *QuoteSessionHandler) GetSummary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, summary)
}

// DismissNotification godoc
// @Summary Dismiss a notification
// @Tags Quote sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param notification_id path string true "Notification ID"
// @Success 200 {object} quote.View
// @Failure 404 {object} pkg.HTTPError
// @Router /quote-sessions/{id}/notifications/{notification_id} [delete]
func (h *QuoteSessionHandler) DismissNotification(c *gin.Context) {
	view, err := h.usecase.DismissNotification(c.Request.Context(), c.Param("id"), c.Param("notification_id"))
	h.respondView(c, view, err)
}

func (h *QuoteSessionHandler) respondView(c *gin.Context, view quote.View, err error) {
	if err != nil {
		h.fail(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *QuoteSessionHandler) fail(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("[quote][handler] request failed",
			zap.String("route", c.FullPath()),
			zap.String("session_id", c.Param("id")),
			zap.String("code", appErr.Code),
			zap.Error(appErr.Err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func parseStepParam(c *gin.Context) (int, bool) {
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		return 0, false
	}
	return step, true
}

func mapQuoteError(err error) *pkg.AppError {
	var guardErr *quote.GuardError
	var exportErr *usecase.ExportError

	switch {
	case errors.As(err, &guardErr):
		return errQuoteIncomplete.WithDetails(response.FromGuard(guardErr.Guard))
	case errors.As(err, &exportErr):
		return pkg.NewDomainError("EXPORT_FAILED", "The quote document could not be generated", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Quote session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidSession):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnknownItemType):
		return pkg.NewDomainErrorSimple("UNKNOWN_ITEM_TYPE", "Unknown item type", http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnknownContactField):
		return pkg.NewDomainErrorSimple("UNKNOWN_CONTACT_FIELD", "Unknown contact field", http.StatusBadRequest)
	case errors.Is(err, quote.ErrUnknownItemField):
		return pkg.NewDomainErrorSimple("UNKNOWN_ITEM_FIELD", "Unknown item field", http.StatusBadRequest)
	case errors.Is(err, quote.ErrInvalidFieldValue):
		return pkg.NewDomainErrorSimple("INVALID_FIELD_VALUE", "Invalid field value", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidStep):
		return errInvalidStep
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
