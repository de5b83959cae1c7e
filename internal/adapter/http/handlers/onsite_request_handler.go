package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/request"
	"github.com/Fikriansyah-12/habitus-fe/internal/domain/entities"
	"github.com/Fikriansyah-12/habitus-fe/internal/usecase"
	"github.com/Fikriansyah-12/habitus-fe/pkg"
)

var (
	errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid onsite request payload", http.StatusBadRequest)
	errMissingRequestID      = pkg.NewDomainErrorSimple("MISSING_REQUEST_ID", "Missing request id", http.StatusBadRequest)
)

// OnsiteRequestHandler serves the onsite request screens and their actions.
type OnsiteRequestHandler struct {
	usecase usecase.IOnsiteRequestUseCase
}

func NewOnsiteRequestHandler(uc usecase.IOnsiteRequestUseCase) *OnsiteRequestHandler {
	return &OnsiteRequestHandler{usecase: uc}
}

// List serves the request list screen. Filter and pagination query
// parameters pass through to the backend untouched.
func (h *OnsiteRequestHandler) List(c *gin.Context) {
	h.usecase.FetchAll(c.Request.Context(), queryFilters(c))

	c.JSON(http.StatusOK, gin.H{
		"screen": "request-list",
		"state":  h.usecase.State(),
	})
}

// Form serves the blank request form with the fixed purpose options.
func (h *OnsiteRequestHandler) Form(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"screen":   "request-form",
		"purposes": entities.RequestPurposes(),
	})
}

func (h *OnsiteRequestHandler) Create(c *gin.Context) {
	var payload request.CreateOnsiteRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload)
	if err != nil {
		appErr := mapUpstreamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"request":    created,
		"redirectTo": "/request/list",
	})
}

// Edit serves the edit screen for one request. A failed load sends the
// operator back to the list instead of showing a broken form.
func (h *OnsiteRequestHandler) Edit(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(errMissingRequestID.HTTPStatus, errMissingRequestID.ToHTTPError())
		return
	}

	current, err := h.usecase.FetchOne(c.Request.Context(), id)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/request/list")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"screen":   "request-edit",
		"request":  current,
		"purposes": entities.RequestPurposes(),
	})
}

func (h *OnsiteRequestHandler) Update(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(errMissingRequestID.HTTPStatus, errMissingRequestID.ToHTTPError())
		return
	}

	var payload request.UpdateOnsiteRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, payload)
	if err != nil {
		appErr := mapUpstreamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"request":    updated,
		"redirectTo": "/request/list",
	})
}

func (h *OnsiteRequestHandler) UpdateStatus(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(errMissingRequestID.HTTPStatus, errMissingRequestID.ToHTTPError())
		return
	}

	var payload request.UpdateOnsiteRequestStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), id, payload)
	if err != nil {
		appErr := mapUpstreamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": updated})
}

func (h *OnsiteRequestHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(errMissingRequestID.HTTPStatus, errMissingRequestID.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapUpstreamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"redirectTo": "/request/list"})
}

// Detail serves the request detail screen together with its activity trail.
// An optional action query narrows the trail to one log action.
func (h *OnsiteRequestHandler) Detail(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(errMissingRequestID.HTTPStatus, errMissingRequestID.ToHTTPError())
		return
	}

	current, err := h.usecase.FetchOne(c.Request.Context(), id)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/request/list")
		return
	}

	if action := c.Query("action"); action != "" {
		h.usecase.FetchLogs(c.Request.Context(), id, action)
	} else {
		h.usecase.FetchTimeline(c.Request.Context(), id)
	}

	c.JSON(http.StatusOK, gin.H{
		"screen":  "request-detail",
		"request": current,
		"state":   h.usecase.State(),
	})
}

// Export relays the backend spreadsheet to the operator's browser.
func (h *OnsiteRequestHandler) Export(c *gin.Context) {
	sheet, err := h.usecase.Export(c.Request.Context(), queryFilters(c))
	if err != nil {
		appErr := mapUpstreamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	writeSpreadsheet(c, "onsite-requests.xlsx", sheet)
}

func queryFilters(c *gin.Context) map[string]string {
	filters := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}
	return filters
}

func writeSpreadsheet(c *gin.Context, filename string, sheet entities.Spreadsheet) {
	contentType := sheet.ContentType
	if contentType == "" {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, sheet.Content)
}
