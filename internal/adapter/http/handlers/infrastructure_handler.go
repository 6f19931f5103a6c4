package handlers

import (
	"errors"
	"net/http"

	request "idea_api/internal/adapter/http/dto/request"
	response "idea_api/internal/adapter/http/dto/response"
	"idea_api/internal/infrastructure/logging"
	"idea_api/internal/usecase"
	"idea_api/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidVMQueryPayload = pkg.NewDomainErrorSimple("INVALID_VM_QUERY_INPUT", "Invalid vm query payload", http.StatusBadRequest)

// InfrastructureHandler handles HTTP requests for the VM cost/role view.
type InfrastructureHandler struct {
	usecase usecase.IInfrastructureUseCase
}

func NewInfrastructureHandler(uc usecase.IInfrastructureUseCase) *InfrastructureHandler {
	return &InfrastructureHandler{usecase: uc}
}

// GetAll godoc
//
//	@Summary	Returns a list of all VMs in the environment
//	@Tags		Infrastructure
//	@Produce	json
//	@Success	200	{array}		response.VMRecordResponse
//	@Failure	500	{object}	pkg.HTTPError
//	@Router		/infrastructure/all [get]
func (h *InfrastructureHandler) GetAll(c *gin.Context) {
	records, err := h.usecase.GetAll(c.Request.Context())
	if err != nil {
		appErr := mapInfrastructureError(c, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVMRecords(records))
}

// QueryVMs godoc
//
//	@Summary		Returns a single or a list of VMs for one fiscal week
//	@Description	Read-only filter query; the POST verb only carries the filter payload.
//	@Tags			Infrastructure
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.VMQueryRequest	true	"VM names and fiscal week"
//	@Success		200		{object}	response.VMQueryResponse
//	@Failure		400		{object}	pkg.HTTPError
//	@Failure		500		{object}	pkg.HTTPError
//	@Router			/infrastructure/vms [post]
func (h *InfrastructureHandler) QueryVMs(c *gin.Context) {
	var payload request.VMQueryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVMQueryPayload.HTTPStatus, errInvalidVMQueryPayload.ToHTTPError())
		return
	}

	records, totalCount, err := h.usecase.QueryVMs(c.Request.Context(), payload.ResolveNames(), payload.ResolveFiscWk())
	if err != nil {
		appErr := mapInfrastructureError(c, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NewVMQueryResponse(records, totalCount))
}

func mapInfrastructureError(c *gin.Context, err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoVMNames), errors.Is(err, usecase.ErrInvalidFiscWk):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		logging.For(c.Request.Context()).Error(logging.FormatError(err, "Error fetching data from database"))
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
