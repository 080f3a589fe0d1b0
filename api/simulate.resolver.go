package api

import (
	"context"
	"portfolioadvisor/internal/domain"

	"github.com/gin-gonic/gin"
)

type simulateRequest struct {
	Iterations     *int    `json:"iterations"`
	HorizonPeriods *int    `json:"horizonPeriods"`
	Seed           *uint64 `json:"seed"`
}

type simulateResponse struct {
	RunID          string                 `json:"runID"`
	Iterations     int                    `json:"iterations"`
	HorizonPeriods int                    `json:"horizonPeriods"`
	Seed           uint64                 `json:"seed"`
	Statistics     domain.SimulationStats `json:"statistics"`
}

func (m ApiHandler) simulate(c *gin.Context) {
	var requestBody simulateRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	defaults := domain.DefaultSimulationConfig()
	iterations := defaults.Iterations
	if requestBody.Iterations != nil {
		iterations = *requestBody.Iterations
	}
	horizonPeriods := defaults.HorizonPeriods
	if requestBody.HorizonPeriods != nil {
		horizonPeriods = *requestBody.HorizonPeriods
	}
	seed := defaults.Seed
	if requestBody.Seed != nil {
		seed = *requestBody.Seed
	}

	run, err := m.SimulationService.RunMonteCarlo(context.Background(), iterations, horizonPeriods, seed)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	// Trajectories are large and only consumed internally; the wire
	// response carries the summary.
	c.JSON(200, simulateResponse{
		RunID:          run.RunID.String(),
		Iterations:     run.Iterations,
		HorizonPeriods: run.HorizonPeriods,
		Seed:           run.Seed,
		Statistics:     run.Stats,
	})
}
