package api

import (
	"github.com/gin-gonic/gin"
)

type riskProfileRequest struct {
	// Answers maps question id to the selected option value.
	Answers map[int]string `json:"answers"`
}

func (m ApiHandler) riskQuestions(c *gin.Context) {
	c.JSON(200, gin.H{
		"questions": m.RiskProfileService.Questions(),
	})
}

func (m ApiHandler) riskProfile(c *gin.Context) {
	var requestBody riskProfileRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	evaluation, err := m.RiskProfileService.Evaluate(requestBody.Answers)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, evaluation)
}
