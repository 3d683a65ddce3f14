package middleware

import (
	"net/http"

	"movieRadar/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo HTTPErrorHandler: known HTTP errors pass through,
// everything else becomes a logged 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	} else {
		logger.Error("Unhandled error",
			"request_id", RequestIDFromContext(c.Request().Context()),
			"path", c.Path(),
			"error", err,
		)
	}

	if jsonErr := c.JSON(code, map[string]string{"message": message}); jsonErr != nil {
		logger.Error("Failed to write error response", "error", jsonErr)
	}
}
