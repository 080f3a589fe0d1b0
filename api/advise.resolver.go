package api

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
)

type adviseRequest struct {
	Question string `json:"question"`
}

type adviseResponse struct {
	Insights string `json:"insights"`
}

func (m ApiHandler) advise(c *gin.Context) {
	if m.GptRepository == nil {
		returnErrorJsonCode(fmt.Errorf("advisor is not configured"), c, 503)
		return
	}

	var requestBody adviseRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Question == "" {
		requestBody.Question = "Give me an overall assessment of this portfolio."
	}

	snapshot, err := m.PortfolioService.Snapshot()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	report, err := m.RiskService.Analyze(context.Background())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	insights, err := m.GptRepository.GeneratePortfolioInsights(context.Background(), *snapshot, *report, requestBody.Question)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, adviseResponse{Insights: insights})
}
