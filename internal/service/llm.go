package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vitatrack/backend/config"
	"github.com/vitatrack/backend/internal/apperror"
)

const (
	nutritionSystemPrompt = "You are a nutrition assistant. Based on the user's description, provide an estimated nutrition summary. " +
		"Respond with a short English paragraph (max 50 words) that includes total calories (kcal) and rough estimates of carbs/protein/fat (in grams). " +
		"If quantities are unclear, make reasonable assumptions and mention 1-2 key assumptions in parentheses at the end. " +
		"Do not output lists or JSON; avoid medical advice; keep the tone friendly and concise."

	workoutSystemPrompt = "You are an exercise metabolism assistant. Based on the user's workout description, estimate calories burned. " +
		"Respond with a single short English paragraph (max 50 words) that includes total calories (kcal). " +
		"Make reasonable assumptions when details are missing (e.g., 70 kg body weight, typical pace/intensity) and mention 1-2 key assumptions in parentheses at the end. " +
		"Do not output lists or JSON; avoid medical advice; keep the tone friendly and concise."
)

// Message represents a message in the chat.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// completionRequest is a request to the chat-completions API.
type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

// completionResponse is the subset of the API response we read.
type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// LLMService turns free-text meal and workout descriptions into short
// natural-language estimates via an OpenAI-compatible completion API.
// One attempt per call, no retries; output constraints live in the
// prompt, not in validation.
type LLMService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

func NewLLMService(cfg *config.Config) *LLMService {
	return &LLMService{
		apiKey: cfg.OpenAIAPIKey,
		apiURL: cfg.OpenAIAPIURL,
		model:  cfg.OpenAIModel,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// NutritionSummary estimates the nutrition content of a meal description.
func (s *LLMService) NutritionSummary(ctx context.Context, text string) (string, error) {
	user := fmt.Sprintf("User's meal description: %s\nPlease output one paragraph directly.", text)
	return s.complete(ctx, nutritionSystemPrompt, user)
}

// WorkoutSummary estimates the calories burned by a workout description.
func (s *LLMService) WorkoutSummary(ctx context.Context, text string) (string, error) {
	user := fmt.Sprintf("User's workout description: %s\nPlease output one paragraph directly.", text)
	return s.complete(ctx, workoutSystemPrompt, user)
}

func (s *LLMService) complete(ctx context.Context, system, user string) (string, error) {
	reqBody := completionRequest{
		Model: s.model,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.2,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", apperror.Internal(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", apperror.Internal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", apperror.Upstream("ai service request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperror.Upstream("ai service response unreadable", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", apperror.Upstream("ai service error", fmt.Errorf("status %d: %s", resp.StatusCode, string(body)))
	}

	var completion completionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", apperror.Upstream("ai service returned malformed response", err)
	}

	if len(completion.Choices) == 0 {
		return "", apperror.New(apperror.KindUpstream, "ai service returned no content")
	}
	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		return "", apperror.New(apperror.KindUpstream, "ai service returned no content")
	}
	return content, nil
}
