package rest

import (
	"context"
	"net/http"
	"strconv"

	"movieRadar/business/forecast"
	"movieRadar/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type ForecastService interface {
	Symbols(ctx context.Context) ([]domain.StockSymbol, error)
	Forecast(ctx context.Context, symbol string, days int) (forecast.Result, error)
}

type ForecastHandler struct {
	service ForecastService
}

func NewForecastHandler(service ForecastService) *ForecastHandler {
	return &ForecastHandler{service: service}
}

// GET /api/v1/stocks
func (h *ForecastHandler) GetSymbols(c echo.Context) error {
	symbols, err := h.service.Symbols(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(symbols))
}

// GET /api/v1/forecast/:symbol?days=30
func (h *ForecastHandler) Forecast(c echo.Context) error {
	symbol := c.Param("symbol")
	if symbol == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "symbol is required"})
	}

	days := 30
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 365 {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "days must be between 1 and 365"})
		}
		days = parsed
	}

	result, err := h.service.Forecast(c.Request().Context(), symbol, days)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}
