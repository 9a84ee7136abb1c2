package handler

import (
	"errors"
	"net/http"
	"strconv"

	"mealdash-be/internal/apperr"
	"mealdash-be/internal/logger"
	"mealdash-be/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError translates domain errors into HTTP status codes.
func respondError(c *gin.Context, err error) {
	var status int

	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case apperr.IsNotFound(err):
		status = http.StatusNotFound
	case apperr.IsConflict(err):
		status = http.StatusConflict
	case apperr.IsValidation(err):
		status = http.StatusUnprocessableEntity
	case apperr.IsInvalidState(err):
		status = http.StatusBadRequest
	default:
		logger.FromCtx(c.Request.Context()).Error("unhandled error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

// uintParam parses a positive integer path parameter.
func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity,
			gin.H{"error": "invalid " + name + " parameter"})
		return 0, false
	}
	return uint(v), true
}

// queryInt32 parses an optional int32 query parameter, nil when absent.
func queryInt32(c *gin.Context, name string) *int32 {
	s := c.Query(name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return nil
	}
	n := int32(v)
	return &n
}

// queryUint parses an optional uint query parameter, nil when absent.
func queryUint(c *gin.Context, name string) *uint {
	s := c.Query(name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil
	}
	n := uint(v)
	return &n
}
