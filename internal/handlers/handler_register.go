package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/tableauchef/tableauchef_backend/internal/core/ports/services"
	"github.com/tableauchef/tableauchef_backend/internal/dto"
)

// registerHandler drives the cash register lifecycle.
type registerHandler struct {
	registerService portssvc.RegisterSvcFacade
}

func newRegisterHandler(rs portssvc.RegisterSvcFacade) *registerHandler {
	return &registerHandler{registerService: rs}
}

// RegisterRegisterRoutes is exported for handler tests that mount the group
// on their own router.
func RegisterRegisterRoutes(rg *gin.RouterGroup, registerService portssvc.RegisterSvcFacade) {
	h := newRegisterHandler(registerService)

	register := rg.Group("/register")
	{
		register.GET("/session", h.getSession)
		register.POST("/open", h.openRegister)
		register.POST("/variance", h.computeVariance)
		register.POST("/close", h.closeRegister)
	}
}

// getSession godoc
// @Summary Get the current register session
// @Description Returns the register session of the caller's restaurant, pristine Closed if never opened.
// @Tags register
// @Produce json
// @Success 200 {object} dto.RegisterSessionResponse
// @Security BearerAuth
// @Router /register/session [get]
func (h *registerHandler) getSession(c *gin.Context) {
	actorUserID, ok := actorID(c)
	if !ok {
		return
	}
	session, err := h.registerService.GetSession(c.Request.Context(), actorUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRegisterSessionResponse(session))
}

// openRegister godoc
// @Summary Open the register
// @Description Opens the restaurant's register with a declared opening float. Fails if already open.
// @Tags register
// @Accept json
// @Produce json
// @Param request body dto.OpenRegisterRequest true "Opening cash"
// @Success 200 {object} dto.RegisterSessionResponse
// @Failure 400 {object} ErrorResponse "Missing or unparseable amount"
// @Failure 403 {object} ErrorResponse "Role cannot operate the register"
// @Failure 409 {object} ErrorResponse "Register already open"
// @Security BearerAuth
// @Router /register/open [post]
func (h *registerHandler) openRegister(c *gin.Context) {
	actorUserID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.OpenRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	session, err := h.registerService.OpenRegister(c.Request.Context(), actorUserID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRegisterSessionResponse(session))
}

// computeVariance godoc
// @Summary Compute cash variance
// @Description Compares counted cash against opening cash plus the day's cash sales. Repeatable while open.
// @Tags register
// @Accept json
// @Produce json
// @Param request body dto.ComputeVarianceRequest true "Counted cash"
// @Success 200 {object} dto.VarianceResponse
// @Failure 409 {object} ErrorResponse "Register not open"
// @Security BearerAuth
// @Router /register/variance [post]
func (h *registerHandler) computeVariance(c *gin.Context) {
	actorUserID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.ComputeVarianceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	report, err := h.registerService.ComputeVariance(c.Request.Context(), actorUserID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVarianceResponse(report))
}

// closeRegister godoc
// @Summary Close the register
// @Description Appends one journal entry with the last computed variance and resets the session.
// @Tags register
// @Produce json
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 409 {object} ErrorResponse "Register closed or no variance computed"
// @Security BearerAuth
// @Router /register/close [post]
func (h *registerHandler) closeRegister(c *gin.Context) {
	actorUserID, ok := actorID(c)
	if !ok {
		return
	}
	entry, err := h.registerService.CloseRegister(c.Request.Context(), actorUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}
