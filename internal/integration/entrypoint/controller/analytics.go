package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ledgertrack/backend/internal/application/usecase/analytics"
	"github.com/ledgertrack/backend/internal/domain/entity"
	domainerror "github.com/ledgertrack/backend/internal/domain/error"
	"github.com/ledgertrack/backend/internal/integration/entrypoint/dto"
	"github.com/ledgertrack/backend/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles analytics endpoints.
type AnalyticsController struct {
	summaryUseCase           *analytics.GetSummaryUseCase
	monthlyBreakdownUseCase  *analytics.GetMonthlyBreakdownUseCase
	categoryBreakdownUseCase *analytics.GetCategoryBreakdownUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	summaryUseCase *analytics.GetSummaryUseCase,
	monthlyBreakdownUseCase *analytics.GetMonthlyBreakdownUseCase,
	categoryBreakdownUseCase *analytics.GetCategoryBreakdownUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		summaryUseCase:           summaryUseCase,
		monthlyBreakdownUseCase:  monthlyBreakdownUseCase,
		categoryBreakdownUseCase: categoryBreakdownUseCase,
	}
}

// Summary handles GET /analytics/summary requests.
func (c *AnalyticsController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), analytics.GetSummaryInput{UserID: userID})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.Summary))
}

// Monthly handles GET /analytics/monthly requests. An optional year query
// parameter restricts the breakdown to one year.
func (c *AnalyticsController) Monthly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := analytics.GetMonthlyBreakdownInput{UserID: userID}

	if raw := ctx.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "year must be an integer",
			})
			return
		}
		input.Year = &year
	}

	output, err := c.monthlyBreakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyBreakdownResponse(output.Months))
}

// Categories handles GET /analytics/categories requests. The type query
// parameter picks income or expense; expense is the default.
func (c *AnalyticsController) Categories(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionType := entity.TransactionType(ctx.DefaultQuery("type", string(entity.TransactionTypeExpense)))

	output, err := c.categoryBreakdownUseCase.Execute(ctx.Request.Context(), analytics.GetCategoryBreakdownInput{
		UserID: userID,
		Type:   transactionType,
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(transactionType, output.Categories))
}

// handleAnalyticsError handles analytics errors and returns appropriate HTTP responses.
func (c *AnalyticsController) handleAnalyticsError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
