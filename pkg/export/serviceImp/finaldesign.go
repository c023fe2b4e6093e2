package serviceImp

import (
	"sort"

	"iddss/pkg/export/markdown"
	"iddss/pkg/export/types"
)

// FinalDesignTitle heads every rendered export.
const FinalDesignTitle = "Instructional Design Plan"

// stepsSorted returns the snapshot's steps ordered by creation time
// ascending. Unparsable timestamps read as the zero time and sort first.
func stepsSorted(snap *types.Snapshot) []types.StepExport {
	steps := make([]types.StepExport, len(snap.DesignSteps))
	copy(steps, snap.DesignSteps)
	sort.SliceStable(steps, func(i, j int) bool {
		return markdown.ParseTime(steps[i].CreatedAt).Before(markdown.ParseTime(steps[j].CreatedAt))
	})
	return steps
}

// latestStep finds the most recently created step of the given phase.
func latestStep(snap *types.Snapshot, phase types.Phase) *types.StepExport {
	var found *types.StepExport
	for _, step := range stepsSorted(snap) {
		if step.Phase == string(phase) {
			s := step
			found = &s
		}
	}
	return found
}

// latestResponse returns the payload of the newest recommendation on the
// newest step of the phase, or nil when either is missing.
func latestResponse(snap *types.Snapshot, phase types.Phase) any {
	step := latestStep(snap, phase)
	if step == nil || len(step.Recommendations) == 0 {
		return nil
	}
	recs := make([]types.RecommendationExport, len(step.Recommendations))
	copy(recs, step.Recommendations)
	sort.SliceStable(recs, func(i, j int) bool {
		return markdown.ParseTime(recs[i].CreatedAt).Before(markdown.ParseTime(recs[j].CreatedAt))
	})
	return recs[len(recs)-1].Response
}

// Optional-field extraction. Provider payloads have no guaranteed shape;
// every access goes through one of these, never a bare assertion.

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asList(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}

func asBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	case nil:
		return false
	default:
		return true
	}
}

func cleanStrings(v any) []string {
	l, ok := asList(v)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(l))
	for _, item := range l {
		if s := markdown.Clean(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// finalObjectiveAnalysis projects the latest objective-analysis payload
// into a display-ready structure, or nil when no object-shaped response
// exists.
func finalObjectiveAnalysis(snap *types.Snapshot) *types.ObjectiveAnalysis {
	resp, ok := asMap(latestResponse(snap, types.PhaseObjectiveAnalysis))
	if !ok {
		return nil
	}

	out := &types.ObjectiveAnalysis{
		OverallAssessment:  markdown.Clean(resp["overall_assessment"]),
		AlignmentNotes:     markdown.Clean(resp["alignment_notes"]),
		BloomAnalysis:      []types.BloomNote{},
		ImprovedObjectives: cleanStrings(resp["improved_objectives"]),
		MissingCoverage:    cleanStrings(resp["missing_coverage"]),
	}
	if bloom, ok := asList(resp["bloom_analysis"]); ok {
		for _, item := range bloom {
			m, ok := asMap(item)
			if !ok {
				continue
			}
			out.BloomAnalysis = append(out.BloomAnalysis, types.BloomNote{
				Objective:    markdown.Clean(m["objective"]),
				CurrentLevel: markdown.Clean(m["current_level"]),
				Domain:       markdown.Clean(m["domain"]),
				IsMeasurable: asBool(m["is_measurable"]),
				Suggestion:   markdown.Clean(m["suggestion"]),
			})
		}
	}
	return out
}

// finalAssessments projects the latest assessment-recommendation payload.
// Returns nil when the response is not an object or has no assessments
// list.
func finalAssessments(snap *types.Snapshot) *types.AssessmentPlan {
	resp, ok := asMap(latestResponse(snap, types.PhaseAssessmentRecommendation))
	if !ok {
		return nil
	}
	items, ok := asList(resp["assessments"])
	if !ok {
		return nil
	}

	cleaned := make([]map[string]any, 0, len(items))
	for _, item := range items {
		m, ok := asMap(item)
		if !ok {
			continue
		}
		a := make(map[string]any, len(m))
		for k, v := range m {
			a[k] = v
		}
		for _, k := range []string{"title", "type", "method", "description", "timing", "weight", "feedback_strategy"} {
			if v, present := a[k]; present {
				a[k] = markdown.Clean(v)
			}
		}
		for _, k := range []string{"objective_alignment", "rubric_criteria"} {
			if v, present := a[k]; present {
				if _, isList := asList(v); isList {
					a[k] = cleanStrings(v)
				}
			}
		}
		cleaned = append(cleaned, a)
	}

	return &types.AssessmentPlan{
		StrategyRationale:         markdown.Clean(resp["assessment_strategy_rationale"]),
		FormativeSummativeBalance: markdown.Clean(resp["formative_summative_balance"]),
		Assessments:               cleaned,
	}
}

// buildFinalDesign composes the canonical merged document. Deterministic:
// the same snapshot always yields the same design.
func buildFinalDesign(snap *types.Snapshot) *types.FinalDesign {
	objectives := markdown.Clean(snap.Session.LearningObjectives)
	return &types.FinalDesign{
		Title:      FinalDesignTitle,
		ExportedAt: markdown.Clean(snap.ExportedAt),
		Session: types.SessionSummary{
			ID:                 snap.Session.ID,
			CourseTitle:        markdown.Clean(snap.Session.CourseTitle),
			Level:              markdown.Clean(snap.Session.Level),
			Modality:           markdown.Clean(snap.Session.Modality),
			Constraints:        markdown.Clean(snap.Session.Constraints),
			LearningObjectives: objectives,
			ObjectiveLines:     markdown.CleanLines(objectives),
		},
		ObjectiveAnalysis: finalObjectiveAnalysis(snap),
		ActivityPlan:      finalActivities(snap),
		AssessmentPlan:    finalAssessments(snap),
	}
}
