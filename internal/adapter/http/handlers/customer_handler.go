package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/request"
	"github.com/Fikriansyah-12/habitus-fe/internal/usecase"
	"github.com/Fikriansyah-12/habitus-fe/pkg"
)

var (
	errInvalidCustomerPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)
	errMissingCustomerID      = pkg.NewDomainErrorSimple("MISSING_CUSTOMER_ID", "Missing customer id", http.StatusBadRequest)
)

// CustomerHandler serves the customer list screen and its actions.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) List(c *gin.Context) {
	h.usecase.FetchAll(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"screen": "customer-list",
		"state":  h.usecase.State(),
	})
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload)
	if err != nil {
		appErr := mapUpstreamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"customer": created})
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(errMissingCustomerID.HTTPStatus, errMissingCustomerID.ToHTTPError())
		return
	}

	var payload request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, payload)
	if err != nil {
		appErr := mapUpstreamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": updated})
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(errMissingCustomerID.HTTPStatus, errMissingCustomerID.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapUpstreamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"redirectTo": "/customer/list"})
}

func (h *CustomerHandler) Export(c *gin.Context) {
	sheet, err := h.usecase.Export(c.Request.Context(), queryFilters(c))
	if err != nil {
		appErr := mapUpstreamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	writeSpreadsheet(c, "customers.xlsx", sheet)
}
