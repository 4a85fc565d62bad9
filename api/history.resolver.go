package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type historyRequest struct {
	UserID uuid.UUID `json:"userID"`
	Range  string    `json:"range"`
}

func (m ApiHandler) history(c *gin.Context) {
	var requestBody historyRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}
	if err := parseUserID(requestBody.UserID); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Range == "" {
		requestBody.Range = defaultRange
	}

	history, err := m.HistoryService.GetHistory(c.Request.Context(), requestBody.UserID, requestBody.Range)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, history)
}

type snapshotRequest struct {
	UserID uuid.UUID `json:"userID"`
}

func (m ApiHandler) snapshot(c *gin.Context) {
	var requestBody snapshotRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}
	if err := parseUserID(requestBody.UserID); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	point, err := m.HistoryService.RecordSnapshot(c.Request.Context(), requestBody.UserID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, point)
}
