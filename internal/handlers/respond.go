package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerbridge/job-portal-api/internal/apperrors"
	"github.com/careerbridge/job-portal-api/internal/dtos"
)

// respond/fail keep the envelope convention in one place:
// {success, data|message} on success, {success, message[, error]} on failure.

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

func respondPage(c *gin.Context, data interface{}, page dtos.PageInfo) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      page.Count,
		"total":      page.Total,
		"page":       page.Page,
		"totalPages": page.TotalPages,
		"data":       data,
	})
}

// fail translates a service error into the envelope. Unexpected errors get a
// generic message plus the underlying detail for diagnostics.
func fail(c *gin.Context, err error, serverMessage string) {
	status := apperrors.HTTPStatus(err)

	body := gin.H{"success": false}
	var ve *apperrors.ValidationError
	switch {
	case errors.As(err, &ve):
		body["message"] = ve.Message
		body["field"] = ve.Field
	case status == http.StatusInternalServerError:
		body["message"] = serverMessage
		body["error"] = err.Error()
	default:
		body["message"] = err.Error()
	}
	c.JSON(status, body)
}

// failBinding reports gin binding errors as validation failures.
func failBinding(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Invalid request: " + err.Error(),
	})
}

// HealthCheck responds to liveness probes.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
