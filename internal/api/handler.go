package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/internal/domain/dto"
	"github.com/guttosm/stockpulse/internal/service"
)

// Handler provides HTTP handlers for the stock report endpoint.
//
// Responsibilities:
//   - Validate incoming HTTP path parameters
//   - Interact with the service layer for report computation
//   - Translate service results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.ReportService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.ReportService): Service dependency used for building reports.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.ReportService) *Handler {
	return &Handler{svc: svc}
}

// GetStock handles GET /api/stocks/:ticker requests.
//
// Path Parameters:
//   - ticker (string, required): Exchange symbol (e.g., "AAPL"). Passed to the
//     provider verbatim; the provider decides whether it is a real security.
//
// Responses:
//   - 200 OK: StockResponse with the current price and all percent changes.
//   - 400 Bad Request: The provider has no usable current price for the symbol.
//   - 500 Internal Server Error: Provider or network fault.
//
// GetStock godoc
// @Summary      Get stock price and percent changes
// @Description  Returns the current price, percent change vs. previous close, and percent change over 1mo/6mo/1y for the given ticker
// @Tags         stocks
// @Produce      json
// @Param        ticker  path      string  true  "Stock ticker"  example(AAPL)
// @Success      200     {object}  dto.StockResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse  "Invalid ticker"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/stocks/{ticker} [get]
func (h *Handler) GetStock(c *gin.Context) {
	ticker := strings.TrimSpace(c.Param("ticker"))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid ticker!", nil))
		return
	}

	report, err := h.svc.GetStockReport(c.Request.Context(), ticker)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTicker) {
			// Fixed body: {"error": "Invalid ticker!"}
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid ticker!", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch stock data", err))
		return
	}

	resp := dto.StockResponse{
		Stock:      report.Stock,
		Price:      report.Price,
		Percent:    report.Percent,
		Percent1Mo: report.Percent1Mo,
		Percent6Mo: report.Percent6Mo,
		Percent1Y:  report.Percent1Y,
	}

	c.JSON(http.StatusOK, resp)
}
