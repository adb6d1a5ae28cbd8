package handler

import (
	"net/http"

	"mealdesk/internal/logger"
	"mealdesk/internal/model"
	"mealdesk/internal/service"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct{ guests *service.GuestService }

func NewGuestHandler(guests *service.GuestService) *GuestHandler {
	return &GuestHandler{guests: guests}
}

// GET /api/guests?q=...
func (h *GuestHandler) Search(c *gin.Context) {
	query := c.Query("q")
	guests, err := h.guests.Search(c.Request.Context(), query)
	if err != nil {
		logger.Error("guest.search.failed", "q", query, "err", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Message: "Unable to search guests right now"})
		return
	}
	c.JSON(http.StatusOK, model.GuestsResponse{Guests: guests})
}
