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

type anthropic struct {
	endpoint string
	key      string
	model    string
}

func NewAnthropic(endpoint, key, model string) Client {
	return &anthropic{endpoint: endpoint, key: key, model: model}
}

func (c *anthropic) AnalyzeObjectives(course CourseContext, objectives string) (map[string]any, error) {
	return c.chat(objectiveAnalysisSystemPrompt, objectiveAnalysisUserPrompt(course, objectives))
}

func (c *anthropic) SuggestActivities(course CourseContext, objectives string) (map[string]any, error) {
	return c.chat(activitySuggestionSystemPrompt, activitySuggestionUserPrompt(course, objectives))
}

func (c *anthropic) RecommendAssessments(course CourseContext, objectives, activities string) (map[string]any, error) {
	return c.chat(assessmentRecommendationSystemPrompt, assessmentRecommendationUserPrompt(course, objectives, activities))
}

func (c *anthropic) chat(systemPrompt, userPrompt string) (map[string]any, error) {
	if c.key == "" {
		return nil, fmt.Errorf("%w: set ANTHROPIC_API_KEY", ErrNotConfigured)
	}

	reqBody := map[string]any{
		"model":      c.model,
		"max_tokens": 4096,
		"system":     systemPrompt,
		"messages": []map[string]string{
			{"role": "user", "content": userPrompt},
		},
	}
	b, _ := json.Marshal(reqBody)

	httpc := &http.Client{Timeout: 60 * time.Second}
	req, err := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/messages", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.key)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, mapProviderError("anthropic", resp.StatusCode, string(body))
	}

	var out struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("anthropic decode: %w", err)
	}
	if len(out.Content) == 0 {
		return nil, fmt.Errorf("anthropic: empty content in response")
	}
	return ParseResponse(out.Content[0].Text), nil
}
