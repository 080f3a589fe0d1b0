package api

import (
	"portfolioadvisor/internal/domain"

	"github.com/gin-gonic/gin"
)

type rebalanceRequest struct {
	Target map[domain.AssetClass]float64 `json:"targetAllocation"`
}

func (m ApiHandler) rebalance(c *gin.Context) {
	var requestBody rebalanceRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	plan, err := m.PortfolioService.PlanRebalance(requestBody.Target)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, plan)
}

// applyRebalance is the explicit mutation step. Planning never mutates;
// callers confirm a plan and then post the same target here.
func (m ApiHandler) applyRebalance(c *gin.Context) {
	var requestBody rebalanceRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if err := m.PortfolioService.ApplyRebalance(requestBody.Target); err != nil {
		returnErrorJson(err, c)
		return
	}

	snapshot, err := m.PortfolioService.Snapshot()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, snapshot)
}
