package handlers

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
	portssvc "github.com/tableauchef/tableauchef_backend/internal/core/ports/services"
	"github.com/tableauchef/tableauchef_backend/internal/platform/events"
)

// eventsHandler streams a restaurant's live events over SSE.
type eventsHandler struct {
	userService portssvc.UserReaderSvc
	broadcaster *events.Broadcaster
}

func registerEventRoutes(rg *gin.RouterGroup, userService portssvc.UserReaderSvc, broadcaster *events.Broadcaster) {
	h := &eventsHandler{userService: userService, broadcaster: broadcaster}
	rg.GET("/events", h.stream)
}

// stream godoc
// @Summary Subscribe to live events
// @Description Server-sent event stream of the caller's restaurant: register transitions, stock changes and notifications. The subscription is disposed when the client disconnects.
// @Tags events
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Security BearerAuth
// @Router /events [get]
func (h *eventsHandler) stream(c *gin.Context) {
	actorUserID, ok := actorID(c)
	if !ok {
		return
	}
	actor, err := h.userService.GetUserByID(c.Request.Context(), actorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	ch, dispose := h.broadcaster.Subscribe(actor.RestaurantName)
	defer dispose()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case ev, open := <-ch:
			if !open {
				return false
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				return true
			}
			c.SSEvent(ev.Kind, string(payload))
			return true
		}
	})
}
