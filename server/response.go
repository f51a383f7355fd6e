package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stratakit/strata/errors"
)

// OK writes a 200 response with the given payload.
func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Created writes a 201 response with the given payload.
func Created(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// NoContent writes a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error translates err into the uniform JSON error envelope and writes it
// with the AppError's HTTP status. Non-AppError values become a 500.
func Error(c *gin.Context, err error) {
	appErr := errors.FromError(err)
	status := appErr.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.AbortWithStatusJSON(status, appErr.ToResponse())
}
