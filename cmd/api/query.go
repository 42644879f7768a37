package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// QueryRequest is the body of a trip question
type QueryRequest struct {
	Message string `json:"message" example:"What's the weather in Paris?"` // Free-text trip question
}

// QueryResponse carries the composed reply
type QueryResponse struct {
	Reply string `json:"reply" example:"In Paris it's currently 21.4°C."` // Natural-language answer
}

// handleQuery godoc
// @Summary Answer a trip question
// @Description Classify the question, resolve the place it names and reply with weather and/or places to visit
// @Tags query
// @Accept json
// @Produce json
// @Param request body QueryRequest true "Trip question"
// @Success 200 {object} QueryResponse
// @Failure 400 {object} QueryResponse
// @Failure 500 {object} QueryResponse
// @Router /api/query [post]
func (app *App) handleQuery(c *gin.Context) {
	var req QueryRequest

	// A malformed body is treated the same as a missing message
	_ = c.ShouldBindJSON(&req)

	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusBadRequest, QueryResponse{
			Reply: "Please enter your question or trip plan.",
		})
		return
	}

	reply, err := app.conciergeService.HandleRequest(message)
	if err != nil {
		// Upstream failures are not recoverable here; answer generically
		app.logger.Error("failed to handle trip question",
			"message", message,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, QueryResponse{
			Reply: "Sorry, something went wrong while answering your question.",
		})
		return
	}

	c.JSON(http.StatusOK, QueryResponse{Reply: reply})
}
