package cmd

import (
	"fmt"
	"portfolioadvisor/api"
	"portfolioadvisor/internal/domain"
	"portfolioadvisor/internal/logger"
	"portfolioadvisor/internal/repository"
	"portfolioadvisor/internal/service"
	"portfolioadvisor/internal/util"

	"github.com/joho/godotenv"
)

func InitializeDependencies() (*api.ApiHandler, error) {
	// .env is a local-dev convenience; a missing file is fine.
	_ = godotenv.Load()

	log := logger.New()

	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	config := domain.DefaultSimulationConfig()

	portfolioService, err := service.NewPortfolioService(domain.SeedAssets(), domain.DefaultProfileName, config.RiskFreeRate)
	if err != nil {
		return nil, fmt.Errorf("failed to construct portfolio: %w", err)
	}

	riskProfileService, err := service.NewRiskProfileService(
		domain.DefaultRiskQuestions(),
		domain.DefaultRiskProfiles(),
		domain.DefaultProfileName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to construct risk profiler: %w", err)
	}

	simulationService, err := service.NewSimulationService(portfolioService, config)
	if err != nil {
		return nil, fmt.Errorf("failed to construct simulator: %w", err)
	}

	riskService := service.NewRiskService(portfolioService, simulationService, config)

	var gptRepository repository.GptRepository
	if secrets.ChatGPTApiKey != "" {
		gptRepository, err = repository.NewGptRepository(secrets.ChatGPTApiKey)
		if err != nil {
			return nil, err
		}
	} else {
		log.Warn("no gpt api key configured - /advise will be unavailable")
	}

	return &api.ApiHandler{
		PortfolioService:   portfolioService,
		RiskProfileService: riskProfileService,
		SimulationService:  simulationService,
		RiskService:        riskService,
		GptRepository:      gptRepository,
		Logger:             log,
	}, nil
}
