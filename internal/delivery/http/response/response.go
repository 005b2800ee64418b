// Package response renders the wire shapes the production backend uses, so
// clients developed against the stub behave identically against the real
// service.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DetailBody is the error body shape: a single "detail" field.
type DetailBody struct {
	Detail any `json:"detail"`
}

// JSON writes a plain JSON success body.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Detail writes an error body with the given status and detail message.
func Detail(c echo.Context, statusCode int, detail string) error {
	if detail == "" {
		detail = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, DetailBody{Detail: detail})
}

// BadRequest 400 error
func BadRequest(c echo.Context, detail string) error {
	return Detail(c, http.StatusBadRequest, detail)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, detail string) error {
	return Detail(c, http.StatusUnauthorized, detail)
}

// NotFound 404 error
func NotFound(c echo.Context, detail string) error {
	return Detail(c, http.StatusNotFound, detail)
}

// Conflict 409 error
func Conflict(c echo.Context, detail string) error {
	return Detail(c, http.StatusConflict, detail)
}

// UnprocessableEntity 422 error, the backend's validation failure status.
func UnprocessableEntity(c echo.Context, detail string) error {
	return Detail(c, http.StatusUnprocessableEntity, detail)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, detail string) error {
	return Detail(c, http.StatusInternalServerError, detail)
}
