package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadmatch/internal/models"
)

// pipelineError is the terminal state of a failed pipeline stage. The
// upstream error detail ends up in the response body for diagnostics; stack
// traces never do.
type pipelineError struct {
	status  int
	message string
	details string
}

func badRequest(message string) *pipelineError {
	return &pipelineError{status: http.StatusBadRequest, message: message}
}

func badRequestDetails(message string, err error) *pipelineError {
	return &pipelineError{status: http.StatusBadRequest, message: message, details: err.Error()}
}

func upstream(message string, err error) *pipelineError {
	return &pipelineError{status: http.StatusInternalServerError, message: message, details: err.Error()}
}

func respondError(c *gin.Context, perr *pipelineError) {
	c.JSON(perr.status, models.ErrorResponse{Error: perr.message, Details: perr.details})
}
