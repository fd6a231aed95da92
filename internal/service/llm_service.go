package service

import (
	"context"
	"fmt"
	"strings"

	"wedconnect/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

type LLMService struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
}

// buildSystemInstruction sets the assistant persona for every completion.
func buildSystemInstruction() string {
	return `You are a wedding planning assistant working for a wedding-vendor marketplace.
You help couples find the most suitable vendor listings for their wedding.

Rules:
- Base every recommendation only on the listings provided in the request. Never invent listings.
- Respect the couple's budget, style, location and category preferences when they are given.
- When asked for structured output, respond with exactly one valid JSON object and nothing else: no markdown fences, no commentary before or after.
- Match scores are integers from 0 to 100, where 100 is a perfect fit.`
}

func NewLLMService(cfg *config.GigaChatConfig, logger *zap.Logger) (*LLMService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel("GigaChat")
	model.SystemInstruction = buildSystemInstruction()
	// Deterministic enough for ranking, not fully greedy. Output is capped
	// so a long candidate list cannot produce an unbounded completion.
	model.Temperature = 0.7
	model.MaxTokens = 2048

	return &LLMService{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Complete sends a single prompt and returns the raw completion text.
func (s *LLMService) Complete(ctx context.Context, prompt string) (string, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}
