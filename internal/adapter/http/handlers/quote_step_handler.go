package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	response "mvz_quote/internal/adapter/http/dto/response"
	"mvz_quote/internal/domain/quote"
	"mvz_quote/pkg"
)

var errInvalidStep = pkg.NewDomainErrorSimple("INVALID_STEP", "Step must be 1, 2 or 3", http.StatusBadRequest)

// NextStep godoc
// @Summary Advance to the next step
// @Description Runs the guard of the current step. A blocked move answers 422 with the transition and view in details.
// @Tags Steps
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.TransitionResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /quote-sessions/{id}/steps/next [post]
func (h *QuoteSessionHandler) NextStep(c *gin.Context) {
	t, view, err := h.usecase.Next(c.Request.Context(), c.Param("id"))
	h.respondTransition(c, t, view, err)
}

// PrevStep godoc
// @Summary Go back one step
// @Tags Steps
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.TransitionResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /quote-sessions/{id}/steps/prev [post]
func (h *QuoteSessionHandler) PrevStep(c *gin.Context) {
	t, view, err := h.usecase.Prev(c.Request.Context(), c.Param("id"))
	h.respondTransition(c, t, view, err)
}

// GoToStep godoc
// @Summary Jump to a step
// @Description Backward jumps always succeed. Forward jumps require every earlier step to pass.
// @Tags Steps
// @Produce json
// @Param id path string true "Session ID"
// @Param step path int true "Target step (1-3)"
// @Success 200 {object} response.TransitionResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /quote-sessions/{id}/steps/{step} [put]
func (h *QuoteSessionHandler) GoToStep(c *gin.Context) {
	step, ok := parseStepParam(c)
	if !ok {
		h.fail(c, errInvalidStep)
		return
	}
	t, view, err := h.usecase.GoTo(c.Request.Context(), c.Param("id"), step)
	h.respondTransition(c, t, view, err)
}

// CanNavigate godoc
// @Summary Check whether a step is reachable
// @Tags Steps
// @Produce json
// @Param id path string true "Session ID"
// @Param step path int true "Target step (1-3)"
// @Success 200 {object} response.NavigationResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /quote-sessions/{id}/steps/{step} [get]
func (h *QuoteSessionHandler) CanNavigate(c *gin.Context) {
	step, ok := parseStepParam(c)
	if !ok {
		h.fail(c, errInvalidStep)
		return
	}
	g, err := h.usecase.CanNavigateTo(c.Request.Context(), c.Param("id"), step)
	if err != nil {
		h.fail(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNavigation(step, g))
}

// Submit godoc
// @Summary Submit the quote
// @Description Re-checks the contact and items steps, renders the PDF and resets the session. On a failed check the session moves to the failing step.
// @Tags Submission
// @Produce application/pdf
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {file} file
// @Failure 404 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /quote-sessions/{id}/submit [post]
func (h *QuoteSessionHandler) Submit(c *gin.Context) {
	doc, err := h.usecase.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, mapQuoteError(err))
		return
	}

	h.logger.Info("[quote][handler] quote downloaded",
		zap.String("session_id", c.Param("id")),
		zap.String("file", doc.FileName),
	)
	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(doc.FileName))
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}

func (h *QuoteSessionHandler) respondTransition(c *gin.Context, t quote.Transition, view quote.View, err error) {
	if err != nil {
		h.fail(c, mapQuoteError(err))
		return
	}
	body := response.FromTransition(t, view)
	if !t.Allowed {
		h.fail(c, errStepBlocked.WithDetails(body))
		return
	}
	c.JSON(http.StatusOK, body)
}
