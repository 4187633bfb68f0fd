package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/tableauchef/tableauchef_backend/internal/core/ports/services"
	"github.com/tableauchef/tableauchef_backend/internal/dto"
)

// orderHandler manages order entry.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := &orderHandler{orderService: orderService}

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:id", h.getOrder)
		orders.POST("/:id/cancel", h.cancelOrder)
	}
}

// createOrder godoc
// @Summary Place an order
// @Description Records a settled counter sale; the total is priced server-side from the catalog.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Order lines"
// @Success 201 {object} dto.OrderResponse
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	actorUserID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), actorUserID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// listOrders godoc
// @Summary List the restaurant's orders
// @Tags orders
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.OrderResponse
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	actorUserID, ok := actorID(c)
	if !ok {
		return
	}
	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), actorUserID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.OrderResponse, len(orders))
	for i := range orders {
		out[i] = dto.ToOrderResponse(&orders[i])
	}
	c.JSON(http.StatusOK, out)
}

// getOrder godoc
// @Summary Get an order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	actorUserID, ok := actorID(c)
	if !ok {
		return
	}
	order, err := h.orderService.GetOrderByID(c.Request.Context(), actorUserID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// cancelOrder godoc
// @Summary Cancel an order
// @Tags orders
// @Param id path string true "Order ID"
// @Success 204 "No Content"
// @Failure 409 {object} ErrorResponse "Already cancelled"
// @Security BearerAuth
// @Router /orders/{id}/cancel [post]
func (h *orderHandler) cancelOrder(c *gin.Context) {
	actorUserID, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.orderService.CancelOrder(c.Request.Context(), actorUserID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
