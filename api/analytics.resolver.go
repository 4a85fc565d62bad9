package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type analyticsRequest struct {
	UserID uuid.UUID `json:"userID"`
	Range  string    `json:"range"`
}

const defaultRange = "30D"

func (m ApiHandler) analytics(c *gin.Context) {
	var requestBody analyticsRequest
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

	analysis, err := m.PortfolioAnalysisService.GeneratePortfolioAnalysis(
		c.Request.Context(),
		requestBody.UserID,
		requestBody.Range,
	)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, analysis)
}
