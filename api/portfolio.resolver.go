package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) portfolio(c *gin.Context) {
	snapshot, err := m.PortfolioService.Snapshot()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, snapshot)
}
