package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/telegram-backend/internal/application/usecase/stats"
	"github.com/finance-tracker/telegram-backend/internal/integration/entrypoint/dto"
)

// StatsController handles aggregated statistics endpoints.
type StatsController struct {
	getStatsUseCase *stats.GetStatsUseCase
}

// NewStatsController creates a new stats controller instance.
func NewStatsController(getStatsUseCase *stats.GetStatsUseCase) *StatsController {
	return &StatsController{
		getStatsUseCase: getStatsUseCase,
	}
}

// Get handles GET /stats/:telegram_id requests.
// Totals are recomputed from current rows on every call. A user with no
// accounts gets all-zero totals rather than an error.
func (c *StatsController) Get(ctx *gin.Context) {
	telegramID, ok := parseTelegramID(ctx)
	if !ok {
		return
	}

	output, err := c.getStatsUseCase.Execute(ctx.Request.Context(), stats.GetStatsInput{
		UserID: telegramID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute statistics",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatsResponse(output.Stats))
}
