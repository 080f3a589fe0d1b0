package main

import (
	"context"
	"log"
	"portfolioadvisor/cmd"
	"portfolioadvisor/internal/domain"
	"portfolioadvisor/internal/util"
)

// Runs the whole analysis pipeline against the seed portfolio and pretty
// prints each stage.
func main() {
	handler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	config := domain.DefaultSimulationConfig()

	snapshot, err := handler.PortfolioService.Snapshot()
	if err != nil {
		log.Fatal(err)
	}
	util.Pprint(snapshot)

	run, err := handler.SimulationService.RunMonteCarlo(ctx, config.Iterations, config.HorizonPeriods, config.Seed)
	if err != nil {
		log.Fatal(err)
	}
	util.Pprint(run.Stats)

	scenarios, err := handler.SimulationService.RateScenarios(ctx, config.Seed)
	if err != nil {
		log.Fatal(err)
	}
	util.Pprint(scenarios)

	report, err := handler.RiskService.Analyze(ctx)
	if err != nil {
		log.Fatal(err)
	}
	util.Pprint(report)
}
