package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/tableauchef/tableauchef_backend/internal/core/ports/services"
	"github.com/tableauchef/tableauchef_backend/internal/dto"
)

// inventoryHandler manages stock lines and stock mutations.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newInventoryHandler(is portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{inventoryService: is}
}

func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newInventoryHandler(inventoryService)

	inventory := rg.Group("/inventory")
	{
		inventory.POST("", h.createItem)
		inventory.GET("", h.listItems)
		inventory.GET("/:id", h.getItem)
		inventory.PUT("/:id", h.updateItem)
		inventory.DELETE("/:id", h.deleteItem)
		inventory.POST("/:id/mutations", h.applyMutation)
	}
}

// createItem godoc
// @Summary Create a stock line
// @Tags inventory
// @Accept json
// @Produce json
// @Param item body dto.CreateInventoryItemRequest true "Item details"
// @Success 201 {object} dto.InventoryItemResponse
// @Security BearerAuth
// @Router /inventory [post]
func (h *inventoryHandler) createItem(c *gin.Context) {
	actorUserID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), actorUserID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToInventoryItemResponse(item))
}

// listItems godoc
// @Summary List the restaurant's stock lines
// @Tags inventory
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.InventoryItemResponse
// @Security BearerAuth
// @Router /inventory [get]
func (h *inventoryHandler) listItems(c *gin.Context) {
	actorUserID, ok := actorID(c)
	if !ok {
		return
	}
	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	items, err := h.inventoryService.ListItems(c.Request.Context(), actorUserID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListInventoryResponse(items))
}

// getItem godoc
// @Summary Get a stock line
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.InventoryItemResponse
// @Security BearerAuth
// @Router /inventory/{id} [get]
func (h *inventoryHandler) getItem(c *gin.Context) {
	actorUserID, ok := actorID(c)
	if !ok {
		return
	}
	item, err := h.inventoryService.GetItemByID(c.Request.Context(), actorUserID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

// updateItem godoc
// @Summary Update a stock line's descriptive fields
// @Description Stock quantity itself only moves through mutations.
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param item body dto.UpdateInventoryItemRequest true "Fields to update"
// @Success 200 {object} dto.InventoryItemResponse
// @Security BearerAuth
// @Router /inventory/{id} [put]
func (h *inventoryHandler) updateItem(c *gin.Context) {
	actorUserID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), actorUserID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

// deleteItem godoc
// @Summary Delete a stock line
// @Tags inventory
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /inventory/{id} [delete]
func (h *inventoryHandler) deleteItem(c *gin.Context) {
	actorUserID, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.inventoryService.DeleteItem(c.Request.Context(), actorUserID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// applyMutation godoc
// @Summary Apply a stock mutation
// @Description Restock, consume or physically recount one item. Mutations that would drive stock negative are rejected.
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param mutation body dto.StockMutationRequest true "Mutation"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 422 {object} ErrorResponse "Stock would go negative"
// @Security BearerAuth
// @Router /inventory/{id}/mutations [post]
func (h *inventoryHandler) applyMutation(c *gin.Context) {
	actorUserID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.StockMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.inventoryService.ApplyMutation(c.Request.Context(), actorUserID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}
