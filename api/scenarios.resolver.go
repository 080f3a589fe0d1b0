package api

import (
	"context"
	"portfolioadvisor/internal/domain"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) rateScenarios(c *gin.Context) {
	seed := domain.DefaultSimulationConfig().Seed
	if raw := c.Query("seed"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		seed = parsed
	}

	scenarios, err := m.SimulationService.RateScenarios(context.Background(), seed)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, scenarios)
}

func (m ApiHandler) riskAnalysis(c *gin.Context) {
	report, err := m.RiskService.Analyze(context.Background())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, report)
}
