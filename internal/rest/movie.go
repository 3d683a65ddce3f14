package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"movieRadar/domain"
	"movieRadar/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type MovieCatalog interface {
	FindAll(ctx context.Context) ([]domain.Movie, error)
	FindByID(ctx context.Context, id uint64) (domain.Movie, error)
}

type MovieHandler struct {
	catalog MovieCatalog
	timeout time.Duration
}

func NewMovieHandler(catalog MovieCatalog) *MovieHandler {
	return &MovieHandler{
		catalog: catalog,
		timeout: 10 * time.Second,
	}
}

func (h *MovieHandler) GetAllMovies(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	movies, err := h.catalog.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to list movies", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(movies))
}

func (h *MovieHandler) GetMovieByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid movie id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	movie, err := h.catalog.FindByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(movie))
}
