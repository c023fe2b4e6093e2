// Package ai wraps the configured LLM provider behind one interface. Every
// method returns the provider's JSON payload as a generic object so the
// rest of the system never depends on a provider SDK.
package ai

import "errors"

// Provider failures the HTTP layer maps to 503. Anything else is a plain
// 500.
var (
	ErrNotConfigured = errors.New("llm provider not configured")
	ErrQuota         = errors.New("llm quota exceeded")
	ErrRateLimited   = errors.New("llm rate limit exceeded")
	ErrAuth          = errors.New("llm authentication failed")
)

// IsUnavailable reports whether err is a provider-side condition the
// caller cannot fix by retrying the same request.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrNotConfigured) ||
		errors.Is(err, ErrQuota) ||
		errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrAuth)
}

// CourseContext carries the session fields every prompt embeds.
type CourseContext struct {
	CourseTitle string
	Level       string
	Modality    string
	Constraints string
}

type Client interface {
	AnalyzeObjectives(course CourseContext, objectives string) (map[string]any, error)
	SuggestActivities(course CourseContext, objectives string) (map[string]any, error)
	RecommendAssessments(course CourseContext, objectives, activities string) (map[string]any, error)
}
