package serviceImp

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"iddss/pkg/export/types"
)

// Snapshot reads the full session export: the session row plus every step
// with its recommendations and actions. The result is immutable input for
// reconciliation and is also served verbatim as the JSON export.
func (s *ExportSvc) Snapshot(sessionID uint) (*types.Snapshot, error) {
	sess, err := s.sessions.FindByID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session %d: %w", sessionID, err)
	}

	steps, err := s.steps.ListBySession(sessionID)
	if err != nil {
		return nil, err
	}

	snap := &types.Snapshot{
		Session: types.SessionExport{
			ID:                 sess.SessionID,
			CourseTitle:        sess.CourseTitle,
			Level:              sess.Level,
			Modality:           sess.Modality,
			Constraints:        sess.Constraints,
			LearningObjectives: sess.LearningObjectives,
			CreatedAt:          sess.CreatedAt.Format(time.RFC3339),
		},
		DesignSteps: []types.StepExport{},
		Summary: types.Summary{
			TotalSteps:    len(steps),
			ActionsByType: map[string]int{},
		},
		ExportedAt: s.now().UTC().Format(time.RFC3339),
	}

	for _, step := range steps {
		se := types.StepExport{
			ID:              step.StepID,
			Phase:           step.Phase,
			UserInput:       step.UserInput,
			CreatedAt:       step.CreatedAt.Format(time.RFC3339),
			Recommendations: []types.RecommendationExport{},
			UserActions:     []types.ActionExport{},
		}

		recs, err := s.recommendations.ListByStep(step.StepID)
		if err != nil {
			return nil, err
		}
		for _, rec := range recs {
			se.Recommendations = append(se.Recommendations, types.RecommendationExport{
				ID:        rec.RecommendationID,
				Phase:     rec.Phase,
				Response:  parseResponse(rec.RawResponse),
				CreatedAt: rec.CreatedAt.Format(time.RFC3339),
			})
			snap.Summary.TotalRecommendations++
		}

		actions, err := s.actions.ListByStep(step.StepID)
		if err != nil {
			return nil, err
		}
		for _, a := range actions {
			se.UserActions = append(se.UserActions, types.ActionExport{
				ID:               a.ActionID,
				RecommendationID: a.RecommendationID,
				ActionType:       a.ActionType,
				EditedContent:    a.EditedContent,
				Comment:          a.Comment,
				CreatedAt:        a.CreatedAt.Format(time.RFC3339),
			})
			snap.Summary.TotalActions++
			snap.Summary.ActionsByType[a.ActionType]++
		}

		snap.DesignSteps = append(snap.DesignSteps, se)
	}

	return snap, nil
}

// parseResponse decodes a stored provider payload. Unparsable text stays
// an opaque string; it must never fail the export.
func parseResponse(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

// IsNotFound reports whether err means the session does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
