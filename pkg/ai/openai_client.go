package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type openAI struct {
	endpoint string
	key      string
	model    string
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{endpoint: endpoint, key: key, model: model}
}

func (c *openAI) AnalyzeObjectives(course CourseContext, objectives string) (map[string]any, error) {
	return c.chat(objectiveAnalysisSystemPrompt, objectiveAnalysisUserPrompt(course, objectives))
}

func (c *openAI) SuggestActivities(course CourseContext, objectives string) (map[string]any, error) {
	return c.chat(activitySuggestionSystemPrompt, activitySuggestionUserPrompt(course, objectives))
}

func (c *openAI) RecommendAssessments(course CourseContext, objectives, activities string) (map[string]any, error) {
	return c.chat(assessmentRecommendationSystemPrompt, assessmentRecommendationUserPrompt(course, objectives, activities))
}

func (c *openAI) chat(systemPrompt, userPrompt string) (map[string]any, error) {
	if c.key == "" {
		return nil, fmt.Errorf("%w: set OPENAI_API_KEY", ErrNotConfigured)
	}

	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
		"temperature": 0.7,
	}
	b, _ := json.Marshal(reqBody)

	httpc := &http.Client{Timeout: 60 * time.Second}
	req, err := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, mapProviderError("openai", resp.StatusCode, string(body))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("openai decode: %w", err)
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("openai: no choices in response")
	}
	return ParseResponse(out.Choices[0].Message.Content), nil
}

// mapProviderError turns an HTTP error status into one of the sentinel
// conditions. 429 means quota when the body says so, otherwise rate limit.
func mapProviderError(provider string, status int, body string) error {
	lower := strings.ToLower(body)
	switch {
	case status == http.StatusTooManyRequests && strings.Contains(lower, "quota"):
		return fmt.Errorf("%w: %s billing not enabled or quota exhausted", ErrQuota, provider)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s, retry later", ErrRateLimited, provider)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %s rejected the API key", ErrAuth, provider)
	}
	return fmt.Errorf("%s request failed with status %d: %s", provider, status, strings.TrimSpace(body))
}
