package api

import (
	"errors"
	"fmt"
	"net/http"
	"portfolioadvisor/internal/domain"
	"portfolioadvisor/internal/logger"
	"portfolioadvisor/internal/repository"
	"portfolioadvisor/internal/service"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	PortfolioService   service.PortfolioService
	RiskProfileService service.RiskProfileService
	SimulationService  service.SimulationService
	RiskService        service.RiskService
	GptRepository      repository.GptRepository
	Logger             *zap.SugaredLogger
}

func (m ApiHandler) StartApi(port int) error {
	router := m.Router()
	return router.Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) Router() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to portfolio advisor"})
	})
	router.GET("/portfolio", m.portfolio)
	router.GET("/riskQuestions", m.riskQuestions)
	router.POST("/riskProfile", m.riskProfile)
	router.POST("/rebalance", m.rebalance)
	router.POST("/rebalance/apply", m.applyRebalance)
	router.POST("/simulate", m.simulate)
	router.GET("/rateScenarios", m.rateScenarios)
	router.GET("/riskAnalysis", m.riskAnalysis)
	router.POST("/advise", m.advise)

	return router
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, statusFromError(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c).Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func statusFromError(err error) int {
	if errors.Is(err, domain.ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	log := m.Logger
	if log == nil {
		log = zap.S()
	}
	ctx.Set(logger.ContextKey, log)

	start := time.Now()
	ctx.Next()
	log.Infow("request",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
