package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type gemini struct {
	endpoint string
	key      string
	model    string
}

func NewGemini(endpoint, key, model string) Client {
	return &gemini{endpoint: endpoint, key: key, model: model}
}

func (c *gemini) AnalyzeObjectives(course CourseContext, objectives string) (map[string]any, error) {
	return c.generate(objectiveAnalysisSystemPrompt, objectiveAnalysisUserPrompt(course, objectives))
}

func (c *gemini) SuggestActivities(course CourseContext, objectives string) (map[string]any, error) {
	return c.generate(activitySuggestionSystemPrompt, activitySuggestionUserPrompt(course, objectives))
}

func (c *gemini) RecommendAssessments(course CourseContext, objectives, activities string) (map[string]any, error) {
	return c.generate(assessmentRecommendationSystemPrompt, assessmentRecommendationUserPrompt(course, objectives, activities))
}

// GeminiModel describes one model available to a Gemini API key.
type GeminiModel struct {
	Name                       string   `json:"name"`
	DisplayName                string   `json:"display_name"`
	SupportedGenerationMethods []string `json:"supported_generation_methods"`
}

// ListGeminiModels fetches the models the key can use. Helpful when a
// configured model name is not found or not supported.
func ListGeminiModels(endpoint, key string) ([]GeminiModel, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: set GEMINI_API_KEY", ErrNotConfigured)
	}

	u := fmt.Sprintf("%s/v1beta/models?key=%s", strings.TrimRight(endpoint, "/"), url.QueryEscape(key))
	httpc := &http.Client{Timeout: 30 * time.Second}
	resp, err := httpc.Get(u)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, mapProviderError("gemini", resp.StatusCode, string(body))
	}

	var out struct {
		Models []struct {
			Name                       string   `json:"name"`
			DisplayName                string   `json:"displayName"`
			SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("gemini decode: %w", err)
	}

	models := make([]GeminiModel, 0, len(out.Models))
	for _, m := range out.Models {
		// The wire name carries a "models/" prefix callers never type.
		name := strings.TrimPrefix(m.Name, "models/")
		models = append(models, GeminiModel{
			Name:                       name,
			DisplayName:                m.DisplayName,
			SupportedGenerationMethods: m.SupportedGenerationMethods,
		})
	}
	return models, nil
}

func (c *gemini) generate(systemPrompt, userPrompt string) (map[string]any, error) {
	if c.key == "" {
		return nil, fmt.Errorf("%w: set GEMINI_API_KEY", ErrNotConfigured)
	}

	reqBody := map[string]any{
		"system_instruction": map[string]any{
			"parts": []map[string]string{{"text": systemPrompt}},
		},
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": userPrompt}}},
		},
		"generationConfig": map[string]any{"temperature": 0.7},
	}
	b, _ := json.Marshal(reqBody)

	u := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimRight(c.endpoint, "/"), c.model, url.QueryEscape(c.key))

	httpc := &http.Client{Timeout: 60 * time.Second}
	req, err := http.NewRequest("POST", u, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, mapProviderError("gemini", resp.StatusCode, string(body))
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("gemini decode: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini: empty candidates in response")
	}
	return ParseResponse(out.Candidates[0].Content.Parts[0].Text), nil
}
