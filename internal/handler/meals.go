package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"mealdesk/internal/logger"
	"mealdesk/internal/model"
	"mealdesk/internal/service"

	"github.com/gin-gonic/gin"
)

type MealHandler struct{ meals *service.MealService }

func NewMealHandler(meals *service.MealService) *MealHandler {
	return &MealHandler{meals: meals}
}

// POST /api/meals  body: {"guestId":"...","quantity":1}
func (h *MealHandler) Record(c *gin.Context) {
	var req model.RecordMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "Invalid guest ID or quantity"})
		return
	}

	quantity, ok := coerceQuantity(req.Quantity)
	if req.GuestID == "" || !ok {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "Invalid guest ID or quantity"})
		return
	}

	err := h.meals.Record(c.Request.Context(), req.GuestID, quantity)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "Invalid guest ID or quantity"})
	case errors.Is(err, service.ErrDuplicateMeal):
		logger.Info("meal.duplicate", "guest_id", req.GuestID)
		c.JSON(http.StatusConflict, model.ErrorResponse{Message: "Guest already received a meal today"})
	case err != nil:
		logger.Error("meal.record.failed", "guest_id", req.GuestID, "err", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Message: "Unable to record meal"})
	default:
		logger.Info("meal.recorded", "guest_id", req.GuestID, "quantity", quantity)
		c.JSON(http.StatusOK, model.RecordMealResponse{Success: true})
	}
}

// GET /api/totals
func (h *MealHandler) Totals(c *gin.Context) {
	total, err := h.meals.TodayTotal(c.Request.Context())
	if err != nil {
		logger.Error("totals.load.failed", "err", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Message: "Unable to load totals"})
		return
	}
	c.JSON(http.StatusOK, model.TotalsResponse{Total: total})
}

// coerceQuantity accepts the shapes a JSON body can carry a quantity in:
// a number, a numeric string, or an int from an in-process caller. Whole
// values only; anything else is invalid input.
func coerceQuantity(v any) (int, bool) {
	switch q := v.(type) {
	case float64:
		if q != math.Trunc(q) {
			return 0, false
		}
		return int(q), true
	case int:
		return q, true
	case string:
		n, err := strconv.Atoi(q)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
