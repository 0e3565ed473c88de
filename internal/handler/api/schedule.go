package api

import (
	"errors"
	"net/http"

	"expo-gateway/internal/pkg/errs"
	"expo-gateway/internal/usecase/queries"
	"expo-gateway/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleQueries queries.ScheduleQueries
}

func NewScheduleHandler(scheduleQueries queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleQueries: scheduleQueries,
	}
}

// @Summary Get exhibition schedule
// @Description Get event info with the day/time grid projection
// @Tags schedule
// @Produce json
// @Success 200 {object} readmodel.ScheduleRM
// @Failure 502 {object} map[string]string
// @Router /schedule [get]
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	scheduleRM, err := h.scheduleQueries.GetSchedule(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBackendUnreachable):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Nije moguće kontaktirati server.",
			})
		default:
			c.JSON(backendStatus(err, http.StatusBadGateway), gin.H{
				"error": shared.RejectionDetails(err, "Ne mogu učitati dane."),
			})
		}
		return
	}

	c.JSON(http.StatusOK, scheduleRM)
}

// backendStatus passes a backend rejection status through; anything else maps
// to the fallback.
func backendStatus(err error, fallback int) int {
	if rej, ok := shared.AsRejection(err); ok && rej.Status >= 400 && rej.Status < 500 {
		return rej.Status
	}
	return fallback
}
