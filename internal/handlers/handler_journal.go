package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/tableauchef/tableauchef_backend/internal/core/ports/services"
	"github.com/tableauchef/tableauchef_backend/internal/dto"
)

// journalHandler reads the append-only register closure journal.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := &journalHandler{journalService: journalService}

	journals := rg.Group("/journals")
	{
		journals.GET("", h.listJournals)
		journals.GET("/:id", h.getJournal)
	}
}

// listJournals godoc
// @Summary List register closure records
// @Description Returns the caller's restaurant journal, newest first. Entries are append-only.
// @Tags journals
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListJournalsResponse
// @Security BearerAuth
// @Router /journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	actorUserID, ok := actorID(c)
	if !ok {
		return
	}
	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	entries, err := h.journalService.ListEntries(c.Request.Context(), actorUserID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListJournalsResponse(entries))
}

// getJournal godoc
// @Summary Get one closure record
// @Tags journals
// @Produce json
// @Param id path string true "Journal ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Security BearerAuth
// @Router /journals/{id} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	actorUserID, ok := actorID(c)
	if !ok {
		return
	}
	entry, err := h.journalService.GetEntryByID(c.Request.Context(), actorUserID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}
