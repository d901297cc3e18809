package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"aifolio/internal/domain"

	"github.com/ayush6624/go-chatgpt"
)

type EstimationRepository interface {
	GetEstimation(ctx context.Context, snapshot domain.SymbolSnapshot) (*domain.Estimation, error)
}

type estimationRepositoryHandler struct {
	GptClient *chatgpt.Client
	Model     chatgpt.ChatGPTModel
}

func NewEstimationRepository(apiKey string, model string) (EstimationRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	m := chatgpt.GPT4
	if model != "" {
		m = chatgpt.ChatGPTModel(model)
	}

	return estimationRepositoryHandler{
		GptClient: client,
		Model:     m,
	}, nil
}

const systemContext = `
You are a quantitative analyst producing a one-day directional estimate for a single stock.

You will receive a JSON document with the stock symbol, its most recent daily bars (newest first, each with close, high, low, volume, vwap, and SMA/RSI indicators computed over a 14 day window), and recent news headlines with summaries.

Decide whether the stock is more likely to close higher (long) or lower (short) today, and how certain you are on a 0 to 100 scale. A certainty of 0 means you have no conviction at all; your certainty is used directly to weight a portfolio allocation, so report it honestly rather than defaulting to round numbers.

Respond with ONLY a JSON object in this exact schema, no surrounding prose:
{
  "symbol": "<the symbol being analyzed>",
  "side": "long" or "short",
  "reasoning": "<reason for the prediction in not more than 1000 characters>",
  "certainty": <number from 0 to 100>
}
`

func (h estimationRepositoryHandler) GetEstimation(ctx context.Context, snapshot domain.SymbolSnapshot) (*domain.Estimation, error) {
	snapshotJson, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot for %s: %w", snapshot.Symbol, err)
	}

	response, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: h.Model,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: systemContext,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: string(snapshotJson),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("estimation request for %s failed: %w", snapshot.Symbol, err)
	}
	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty completion for %s", domain.ErrMalformedEstimation, snapshot.Symbol)
	}

	return parseEstimation(snapshot.Symbol, response.Choices[0].Message.Content)
}

// parseEstimation tolerates markdown code fences around the JSON body,
// which some models emit despite instructions.
func parseEstimation(symbol string, content string) (*domain.Estimation, error) {
	cleaned := strings.NewReplacer("```json", "", "```", "", "\n", "").Replace(content)

	estimation := &domain.Estimation{}
	if err := json.Unmarshal([]byte(cleaned), estimation); err != nil {
		return nil, fmt.Errorf("%w: failed to parse reply for %s: %s", domain.ErrMalformedEstimation, symbol, cleaned)
	}
	if err := estimation.Validate(); err != nil {
		return nil, err
	}
	if estimation.Symbol != symbol {
		return nil, fmt.Errorf("%w: reply for %s names symbol %s", domain.ErrMalformedEstimation, symbol, estimation.Symbol)
	}

	return estimation, nil
}
