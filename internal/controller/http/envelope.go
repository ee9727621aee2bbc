package http

import (
	"errors"
	"net/http"

	"github.com/Bobur2828/Technical-assignment/internal/entity"
	"github.com/Bobur2828/Technical-assignment/internal/usecase"
	"github.com/Bobur2828/Technical-assignment/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Every response goes through the {status, data} envelope.

func respondSuccess(c *gin.Context, code int, data gin.H) {
	c.JSON(code, gin.H{"status": "success", "data": data})
}

func respondFail(c *gin.Context, code int, data gin.H) {
	c.JSON(code, gin.H{"status": "fail", "data": data})
}

// respondError maps the usecase error taxonomy onto HTTP codes. Anything
// outside the taxonomy degrades to a generic 500 envelope and is logged.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		respondFail(c, http.StatusBadRequest, gin.H{"message": validationErr.Message})
		return
	}

	var forbiddenErr *usecase.ForbiddenError
	if errors.As(err, &forbiddenErr) {
		respondFail(c, http.StatusForbidden, gin.H{"message": forbiddenErr.Message})
		return
	}

	if errors.Is(err, usecase.ErrArticleNotFound) {
		respondFail(c, http.StatusNotFound, gin.H{"message": "Article not found or it does not belong to you."})
		return
	}

	if errors.Is(err, usecase.ErrInvalidCredentials) {
		respondFail(c, http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	log.Error("Unexpected error: %v", err)
	respondFail(c, http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

// principalFromContext rebuilds the principal set by the auth middleware.
// Returns nil for anonymous requests.
func principalFromContext(c *gin.Context) *entity.Principal {
	userID, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	return &entity.Principal{
		ID:   userID.(string),
		Role: entity.Role(c.GetString("user_role")),
	}
}
