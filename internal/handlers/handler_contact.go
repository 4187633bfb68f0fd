package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/tableauchef/tableauchef_backend/internal/core/ports/services"
	"github.com/tableauchef/tableauchef_backend/internal/dto"
)

// contactHandler takes public contact-form submissions and lists them for
// back-office staff.
type contactHandler struct {
	contactService portssvc.ContactSvcFacade
}

// registerContactPublicRoutes registers the unauthenticated submission route.
func registerContactPublicRoutes(r *gin.Engine, contactService portssvc.ContactSvcFacade) {
	h := &contactHandler{contactService: contactService}
	r.POST("/api/v1/contact", h.submitMessage)
}

// registerContactAdminRoutes registers the authenticated listing route.
func registerContactAdminRoutes(rg *gin.RouterGroup, contactService portssvc.ContactSvcFacade) {
	h := &contactHandler{contactService: contactService}
	rg.GET("/contact-messages", h.listMessages)
}

// submitMessage godoc
// @Summary Submit a contact message
// @Description Public marketing-site contact form. No authentication.
// @Tags contact
// @Accept json
// @Produce json
// @Param message body dto.CreateContactMessageRequest true "Message"
// @Success 201 {object} dto.ContactMessageResponse
// @Router /contact [post]
func (h *contactHandler) submitMessage(c *gin.Context) {
	var req dto.CreateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	msg, err := h.contactService.SubmitMessage(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToContactMessageResponse(msg))
}

// listMessages godoc
// @Summary List contact messages
// @Tags contact
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.ContactMessageResponse
// @Security BearerAuth
// @Router /contact-messages [get]
func (h *contactHandler) listMessages(c *gin.Context) {
	actorUserID, ok := actorID(c)
	if !ok {
		return
	}
	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	msgs, err := h.contactService.ListMessages(c.Request.Context(), actorUserID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListContactMessagesResponse(msgs))
}
