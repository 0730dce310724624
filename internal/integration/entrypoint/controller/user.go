package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/telegram-backend/internal/application/usecase/user"
	domainerror "github.com/finance-tracker/telegram-backend/internal/domain/error"
	"github.com/finance-tracker/telegram-backend/internal/integration/entrypoint/dto"
)

// UserController handles user endpoints.
type UserController struct {
	getOrCreateUseCase *user.GetOrCreateUserUseCase
	getOverviewUseCase *user.GetOverviewUseCase
	deleteUseCase      *user.DeleteUserUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getOrCreateUseCase *user.GetOrCreateUserUseCase,
	getOverviewUseCase *user.GetOverviewUseCase,
	deleteUseCase *user.DeleteUserUseCase,
) *UserController {
	return &UserController{
		getOrCreateUseCase: getOrCreateUseCase,
		getOverviewUseCase: getOverviewUseCase,
		deleteUseCase:      deleteUseCase,
	}
}

// GetOrCreate handles POST /users/:telegram_id requests.
// Registration is idempotent: an existing user is returned unchanged.
func (c *UserController) GetOrCreate(ctx *gin.Context) {
	telegramID, ok := parseTelegramID(ctx)
	if !ok {
		return
	}

	output, err := c.getOrCreateUseCase.Execute(ctx.Request.Context(), user.GetOrCreateUserInput{
		TelegramID: telegramID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to register user",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// GetOverview handles GET /users/:telegram_id requests.
func (c *UserController) GetOverview(ctx *gin.Context) {
	telegramID, ok := parseTelegramID(ctx)
	if !ok {
		return
	}

	output, err := c.getOverviewUseCase.Execute(ctx.Request.Context(), user.GetOverviewInput{
		TelegramID: telegramID,
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	response := dto.ToOverviewResponse(output.User, output.Accounts, output.Transactions)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /users/:telegram_id requests.
// Removes the user and everything they own in a single transaction.
func (c *UserController) Delete(ctx *gin.Context) {
	telegramID, ok := parseTelegramID(ctx)
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), user.DeleteUserInput{
		TelegramID: telegramID,
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleUserError handles user errors and returns appropriate HTTP responses.
func (c *UserController) handleUserError(ctx *gin.Context, err error) {
	var userErr *domainerror.UserError
	if errors.As(err, &userErr) {
		statusCode := http.StatusInternalServerError
		if userErr.Code == domainerror.ErrCodeUserNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: userErr.Message,
			Code:  string(userErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// parseTelegramID extracts the telegram_id path parameter. On failure it
// writes a 400 response and returns ok=false.
func parseTelegramID(ctx *gin.Context) (int64, bool) {
	telegramID, err := strconv.ParseInt(ctx.Param("telegram_id"), 10, 64)
	if err != nil || telegramID <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid telegram ID format",
		})
		return 0, false
	}
	return telegramID, true
}
