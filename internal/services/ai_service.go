package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"marketBack/internal/models"
)

const aiDefaultModel = "gpt-4o-mini"

// AIService turns draft listing details into generated descriptions and
// price suggestions.
type AIService struct {
	Client  ChatCompletionClient
	Model   string
	Timeout time.Duration
}

func NewAIService(client ChatCompletionClient, model string) *AIService {
	if model == "" {
		model = aiDefaultModel
	}
	return &AIService{
		Client:  client,
		Model:   model,
		Timeout: 25 * time.Second,
	}
}

func (s *AIService) GenerateDescription(ctx context.Context, req models.AIDescriptionRequest) (string, error) {
	prompt := fmt.Sprintf(
		"Write a short, appealing second-hand marketplace listing description.\nTitle: %s\nCategory: %s\n%sKeep it under 80 words, no emojis, no headings.",
		req.Title, req.Category, formatFields(req.CategoryFields),
	)
	return s.complete(ctx, "You write concise product descriptions for a classifieds marketplace.", prompt)
}

func (s *AIService) SuggestPrice(ctx context.Context, req models.AIPriceRequest) (string, error) {
	condition := "unspecified"
	if req.Condition != nil && *req.Condition != "" {
		condition = *req.Condition
	}
	prompt := fmt.Sprintf(
		"Suggest a fair asking price in euros for this second-hand item.\nTitle: %s\nCategory: %s\nCondition: %s\n%sAnswer with a price range and one sentence of reasoning.",
		req.Title, req.Category, condition, formatFields(req.CategoryFields),
	)
	return s.complete(ctx, "You estimate second-hand market prices for a classifieds marketplace.", prompt)
}

func (s *AIService) complete(ctx context.Context, system, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	resp, err := s.Client.Complete(ctx, ChatCompletionRequest{
		Model:       s.Model,
		Temperature: 0.7,
		Messages: []ChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Content), nil
}

func formatFields(fields map[string]interface{}) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("Details:\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "- %s: %v\n", k, fields[k])
	}
	return b.String()
}
