package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	response "idea_api/internal/adapter/http/dto/response"
	"idea_api/internal/domain/entities"
	"idea_api/internal/infrastructure/logging"
	"idea_api/internal/usecase"
	"idea_api/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPagination = pkg.NewDomainErrorSimple("INVALID_PAGINATION", "skip must be >= 0 and limit must be > 0", http.StatusBadRequest)

// OrderingHandler handles HTTP requests for the SRF order-details view.
// Privilege checks run in middleware before any of these methods execute.
type OrderingHandler struct {
	usecase usecase.IOrderingUseCase
}

func NewOrderingHandler(uc usecase.IOrderingUseCase) *OrderingHandler {
	return &OrderingHandler{usecase: uc}
}

// GetAllOrders godoc
//
//	@Summary	Fetches all orders
//	@Tags		Ordering
//	@Produce	json
//	@Param		skip	query		int	false	"skip n records"		default(0)	minimum(0)
//	@Param		limit	query		int	false	"limit to n records"	default(1000)	minimum(1)
//	@Success	200		{array}		response.OrderResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Failure	403		{object}	pkg.HTTPError
//	@Failure	500		{object}	pkg.HTTPError
//	@Security	Bearer
//	@Router		/orders/ [get]
func (h *OrderingHandler) GetAllOrders(c *gin.Context) {
	h.listOrders(c, func(ctx context.Context, skip, limit int) ([]entities.Order, error) {
		return h.usecase.GetAllOrders(ctx, skip, limit)
	})
}

// GetOrderBySRF godoc
//
//	@Summary	Fetches all the records for given srf number
//	@Tags		Ordering
//	@Produce	json
//	@Param		srf_number	path		string	true	"Srf number to filter by"
//	@Param		skip		query		int		false	"skip n records"		default(0)	minimum(0)
//	@Param		limit		query		int		false	"limit to n records"	default(1000)	minimum(1)
//	@Success	200			{array}		response.OrderResponse
//	@Failure	400			{object}	pkg.HTTPError
//	@Failure	403			{object}	pkg.HTTPError
//	@Failure	500			{object}	pkg.HTTPError
//	@Security	Bearer
//	@Router		/orders/srf/{srf_number} [get]
func (h *OrderingHandler) GetOrderBySRF(c *gin.Context) {
	srfNumber := c.Param("srf_number")
	h.listOrders(c, func(ctx context.Context, skip, limit int) ([]entities.Order, error) {
		return h.usecase.GetBySRF(ctx, skip, limit, srfNumber)
	})
}

// GetOrderByOrderNumber godoc
//
//	@Summary	Returns all the orders for given order number
//	@Tags		Ordering
//	@Produce	json
//	@Param		order_number	path		string	true	"Order number"
//	@Param		skip			query		int		false	"skip n records"		default(0)	minimum(0)
//	@Param		limit			query		int		false	"limit to n records"	default(1000)	minimum(1)
//	@Success	200				{array}		response.OrderResponse
//	@Failure	400				{object}	pkg.HTTPError
//	@Failure	403				{object}	pkg.HTTPError
//	@Failure	500				{object}	pkg.HTTPError
//	@Security	Bearer
//	@Router		/orders/order/{order_number} [get]
func (h *OrderingHandler) GetOrderByOrderNumber(c *gin.Context) {
	orderNumber := c.Param("order_number")
	h.listOrders(c, func(ctx context.Context, skip, limit int) ([]entities.Order, error) {
		return h.usecase.GetByOrderNumber(ctx, skip, limit, orderNumber)
	})
}

// GetOrderByStatus godoc
//
//	@Summary	Fetches filtered data by order status
//	@Tags		Ordering
//	@Produce	json
//	@Param		order_status	path		string	true	"Status of the order"	Enums(Cancelled, In Production, Invoiced, Manifested, Manufacturing Invoiced, Pending Production, Production Complete, Rejected, Ship Complete, Waiting Order Fulfillment)
//	@Param		skip			query		int		false	"skip n records"		default(0)	minimum(0)
//	@Param		limit			query		int		false	"limit to n records"	default(1000)	minimum(1)
//	@Success	200				{array}		response.OrderResponse
//	@Failure	400				{object}	pkg.HTTPError
//	@Failure	403				{object}	pkg.HTTPError
//	@Failure	500				{object}	pkg.HTTPError
//	@Security	Bearer
//	@Router		/orders/status/{order_status} [get]
func (h *OrderingHandler) GetOrderByStatus(c *gin.Context) {
	orderStatus := c.Param("order_status")
	h.listOrders(c, func(ctx context.Context, skip, limit int) ([]entities.Order, error) {
		return h.usecase.GetByStatus(ctx, skip, limit, orderStatus)
	})
}

// GetTrackingLink godoc
//
//	@Summary	Returns tracking url for given order number
//	@Tags		Ordering
//	@Produce	json
//	@Param		order_number	path		string	true	"Order number"
//	@Success	200				{string}	string	"tracking url, or null when the order has none"
//	@Failure	400				{object}	pkg.HTTPError
//	@Failure	403				{object}	pkg.HTTPError
//	@Failure	500				{object}	pkg.HTTPError
//	@Security	Bearer
//	@Router		/orders/track/{order_number} [get]
func (h *OrderingHandler) GetTrackingLink(c *gin.Context) {
	link, err := h.usecase.GetTrackingLink(c.Request.Context(), c.Param("order_number"))
	if err != nil {
		appErr := mapOrderingError(c, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// link is nil when the order is unknown or untracked; that renders as
	// a bare JSON null with status 200, never a 404.
	c.JSON(http.StatusOK, link)
}

func (h *OrderingHandler) listOrders(
	c *gin.Context,
	fetch func(ctx context.Context, skip, limit int) ([]entities.Order, error),
) {
	skip, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	orders, err := fetch(c.Request.Context(), skip, limit)
	if err != nil {
		appErr := mapOrderingError(c, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// parsePagination reads skip/limit query params. On a malformed value it
// writes the 400 response itself and reports ok=false.
func parsePagination(c *gin.Context) (skip, limit int, ok bool) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", strconv.Itoa(usecase.DefaultSkip)))
	if err != nil || skip < 0 {
		c.JSON(errInvalidPagination.HTTPStatus, errInvalidPagination.ToHTTPError())
		return 0, 0, false
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultLimit)))
	if err != nil || limit <= 0 {
		c.JSON(errInvalidPagination.HTTPStatus, errInvalidPagination.ToHTTPError())
		return 0, 0, false
	}

	return skip, limit, true
}

func mapOrderingError(c *gin.Context, err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSkip),
		errors.Is(err, usecase.ErrInvalidLimit),
		errors.Is(err, usecase.ErrInvalidSRFNumber),
		errors.Is(err, usecase.ErrInvalidOrderNumber),
		errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		logging.For(c.Request.Context()).Error(logging.FormatError(err, "Error fetching data from database"))
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
