package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	portssvc "github.com/tableauchef/tableauchef_backend/internal/core/ports/services"
	"github.com/tableauchef/tableauchef_backend/internal/dto"
)

// directoryHandler exposes the tenant directory projection and the
// restaurant-wide status toggle.
type directoryHandler struct {
	directoryService portssvc.DirectorySvcFacade
}

func registerDirectoryRoutes(rg *gin.RouterGroup, directoryService portssvc.DirectorySvcFacade) {
	h := &directoryHandler{directoryService: directoryService}

	restaurants := rg.Group("/restaurants")
	{
		restaurants.GET("", h.getDirectory)
		restaurants.GET("/:name/staff", h.listStaff)
		restaurants.PATCH("/:name/status", h.setStatus)
	}
}

// getDirectory godoc
// @Summary Get the restaurant directory
// @Description Projects all staff into per-restaurant buckets with one admin slot each.
// @Tags restaurants
// @Produce json
// @Success 200 {object} dto.DirectoryResponse
// @Security BearerAuth
// @Router /restaurants [get]
func (h *directoryHandler) getDirectory(c *gin.Context) {
	actorUserID, ok := actorID(c)
	if !ok {
		return
	}
	dir, err := h.directoryService.BuildDirectory(c.Request.Context(), actorUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDirectoryResponse(dir))
}

// listStaff godoc
// @Summary List one restaurant's staff
// @Description Returns every account of the named restaurant.
// @Tags restaurants
// @Produce json
// @Param name path string true "Restaurant name"
// @Success 200 {object} dto.ListUsersResponse
// @Failure 404 {object} ErrorResponse "Unknown restaurant"
// @Security BearerAuth
// @Router /restaurants/{name}/staff [get]
func (h *directoryHandler) listStaff(c *gin.Context) {
	actorUserID, ok := actorID(c)
	if !ok {
		return
	}
	staff, err := h.directoryService.ListRestaurantStaff(c.Request.Context(), actorUserID, c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListUsersResponse(staff))
}

// setStatus godoc
// @Summary Enable or disable a whole restaurant
// @Description Flips the status of every account of the restaurant in one atomic batch.
// @Tags restaurants
// @Accept json
// @Param name path string true "Restaurant name"
// @Param request body dto.SetRestaurantStatusRequest true "New status"
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /restaurants/{name}/status [patch]
func (h *directoryHandler) setStatus(c *gin.Context) {
	actorUserID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.SetRestaurantStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	err := h.directoryService.SetRestaurantStatus(c.Request.Context(), actorUserID, c.Param("name"), domain.UserStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
