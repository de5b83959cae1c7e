package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/request"
	"github.com/Fikriansyah-12/habitus-fe/internal/usecase"
	"github.com/Fikriansyah-12/habitus-fe/pkg"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errMissingQuoteID      = pkg.NewDomainErrorSimple("MISSING_QUOTE_ID", "Missing quote id", http.StatusBadRequest)
	errMissingQuoteNo      = pkg.NewDomainErrorSimple("MISSING_QUOTE_NO", "Missing quote number", http.StatusBadRequest)
)

// QuoteHandler serves the quote list screen and its actions.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) List(c *gin.Context) {
	h.usecase.FetchAll(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"screen": "quote-list",
		"state":  h.usecase.State(),
	})
}

// ByNumber looks a quote up by its human-facing number. The request form
// uses it to attach a quote before submitting.
func (h *QuoteHandler) ByNumber(c *gin.Context) {
	quoteNo := c.Query("quoteNo")
	if quoteNo == "" {
		c.JSON(errMissingQuoteNo.HTTPStatus, errMissingQuoteNo.ToHTTPError())
		return
	}

	quote, err := h.usecase.FetchByQuoteNo(c.Request.Context(), quoteNo)
	if err != nil {
		appErr := mapUpstreamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"quote": quote})
}

func (h *QuoteHandler) Create(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload)
	if err != nil {
		appErr := mapUpstreamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"quote": created})
}

func (h *QuoteHandler) Update(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(errMissingQuoteID.HTTPStatus, errMissingQuoteID.ToHTTPError())
		return
	}

	var payload request.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, payload)
	if err != nil {
		appErr := mapUpstreamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"quote": updated})
}

func (h *QuoteHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(errMissingQuoteID.HTTPStatus, errMissingQuoteID.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapUpstreamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"redirectTo": "/quote/list"})
}

func (h *QuoteHandler) Export(c *gin.Context) {
	sheet, err := h.usecase.Export(c.Request.Context(), queryFilters(c))
	if err != nil {
		appErr := mapUpstreamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	writeSpreadsheet(c, "quotes.xlsx", sheet)
}
