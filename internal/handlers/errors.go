package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/walleto/internal/apperrors"
	"github.com/SscSPs/walleto/internal/core/domain"
	"github.com/SscSPs/walleto/internal/dto"
	"github.com/SscSPs/walleto/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// statusFor maps a service error onto an HTTP status code.
func statusFor(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		if appErr.Code >= 400 && appErr.Code < 600 {
			return appErr.Code
		}
		return http.StatusInternalServerError
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrInsufficientFunds),
		errors.Is(err, apperrors.ErrCurrencyMismatch),
		errors.Is(err, apperrors.ErrInvalidState):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the JSON error body for err. Server errors hide the cause behind
// fallback; client errors expose the domain message and kind.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallback})
		return
	}

	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	var domainErr *domain.Error
	isDomainErr := errors.As(err, &domainErr)
	if errors.Is(err, apperrors.ErrNotFound) && !isDomainErr {
		// Repository misses share one body so callers cannot probe for other users' IDs.
		c.JSON(status, gin.H{"error": "Resource not found"})
		return
	}

	body := gin.H{"error": err.Error()}
	if kind := domain.KindOf(err); kind != "" {
		body["kind"] = kind
	}
	if isDomainErr && domainErr.Field != "" {
		body["field"] = domainErr.Field
	}
	var insufficient *domain.InsufficientFundsError
	if errors.As(err, &insufficient) {
		body["balance"] = dto.ToMoneyResponse(insufficient.Balance)
		body["requested"] = dto.ToMoneyResponse(insufficient.Requested)
	}
	var mismatch *domain.CurrencyMismatchError
	if errors.As(err, &mismatch) {
		body["expectedCurrency"] = mismatch.Expected.Code()
		body["actualCurrency"] = mismatch.Actual.Code()
	}
	c.JSON(status, body)
}

// requireUserID reads the authenticated user, answering 401 when it is missing.
func requireUserID(c *gin.Context, logger *slog.Logger) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses the named path parameter as a UUID, answering 400 when it is malformed.
func pathID(c *gin.Context, logger *slog.Logger, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		logger.Warn("Invalid path ID", slog.String("param", name), slog.String("value", c.Param(name)))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": must be a UUID"})
		return uuid.Nil, false
	}
	return id, true
}
