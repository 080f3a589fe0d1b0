package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"portfolioadvisor/internal/domain"

	"github.com/ayush6624/go-chatgpt"
)

// GptRepository is the narrative-generation collaborator. The engine
// never depends on it for correctness - it only consumes snapshots and
// reports the engine already produced.
type GptRepository interface {
	GeneratePortfolioInsights(ctx context.Context, snapshot domain.PortfolioSnapshot, report domain.RiskReport, question string) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const advisorPrompt = `
You are a professional investment advisor. You will receive a portfolio
snapshot and a risk report as JSON, followed by a client question. Answer
the question using only the supplied data. Be specific about allocations,
risk figures, and rebalancing, and do not invent holdings or prices that
are not in the snapshot.
`

func (h gptRepositoryHandler) GeneratePortfolioInsights(ctx context.Context, snapshot domain.PortfolioSnapshot, report domain.RiskReport, question string) (string, error) {
	snapshotJson, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	reportJson, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize risk report: %w", err)
	}

	userMessage := fmt.Sprintf("portfolio snapshot:\n%s\n\nrisk report:\n%s\n\nquestion: %s", snapshotJson, reportJson, question)

	response, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: advisorPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: userMessage,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("gpt request failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("gpt returned no choices")
	}

	return response.Choices[0].Message.Content, nil
}
