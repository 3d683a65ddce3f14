package router

import (
	"movieRadar/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupMovieRoutes(api *echo.Group, handler *rest.MovieHandler) {
	movies := api.Group("/movies")

	movies.GET("", handler.GetAllMovies)
	movies.GET("/:id", handler.GetMovieByID)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	api.GET("/recommendations", handler.Recommend)

	ratings := api.Group("/ratings")
	ratings.POST("", handler.AddRating)
	ratings.GET("", handler.GetRatings)
}

func SetupForecastRoutes(api *echo.Group, handler *rest.ForecastHandler) {
	api.GET("/stocks", handler.GetSymbols)
	api.GET("/forecast/:symbol", handler.Forecast)
}
