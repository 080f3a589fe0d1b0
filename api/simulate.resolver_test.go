package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"portfolioadvisor/internal/domain"
	"portfolioadvisor/internal/service"
	"portfolioadvisor/internal/util"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestApiHandler(t *testing.T) ApiHandler {
	t.Helper()

	config := domain.DefaultSimulationConfig()
	portfolioService, err := service.NewPortfolioService(domain.SeedAssets(), domain.DefaultProfileName, config.RiskFreeRate)
	require.NoError(t, err)
	simulationService, err := service.NewSimulationService(portfolioService, config)
	require.NoError(t, err)

	return ApiHandler{
		PortfolioService:  portfolioService,
		SimulationService: simulationService,
	}
}

func Test_simulate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTestApiHandler(t)
	router := gin.New()
	router.POST("/simulate", handler.simulate)

	t.Run("honors request overrides", func(t *testing.T) {
		body, err := json.Marshal(simulateRequest{
			Iterations:     util.IntPointer(50),
			HorizonPeriods: util.IntPointer(10),
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/simulate", bytes.NewReader(body))
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var response simulateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Equal(t, 50, response.Iterations)
		require.Equal(t, 10, response.HorizonPeriods)
		require.Equal(t, domain.DefaultSimulationConfig().Seed, response.Seed)
		require.Greater(t, response.Statistics.InitialValue, 0.0)
	})

	t.Run("rejects negative iterations", func(t *testing.T) {
		body, err := json.Marshal(simulateRequest{Iterations: util.IntPointer(-1)})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/simulate", bytes.NewReader(body))
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
