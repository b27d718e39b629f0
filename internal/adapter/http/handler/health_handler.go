package handler

import (
	"net/http"
	"strconv"

	"fractional-asset-registry/internal/adapter/http/middleware"
	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/pkg/apperror"
	"fractional-asset-registry/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HealthCheck handles GET /health, verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}

// caller returns the authenticated principal, writing the error response
// when there is none.
func caller(c *gin.Context) (domain.Address, bool) {
	p, ok := middleware.Principal(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
	}
	return p, ok
}

// assetIDParam parses the :id path segment as an asset id.
func assetIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, apperror.Validation("asset id must be a positive integer"))
		return 0, false
	}
	return id, true
}

// vaultIDParam parses the :id path segment as a vault id.
func vaultIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("vault id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// bind decodes the JSON body into req, writing a validation error on failure.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	return true
}
