package ai

import "strings"

// mockClient returns deterministic canned payloads so the app runs end to
// end without any provider key.
type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) AnalyzeObjectives(course CourseContext, objectives string) (map[string]any, error) {
	notes := make([]any, 0, 4)
	for _, line := range strings.Split(objectives, "\n") {
		obj := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*0123456789. "))
		if obj == "" {
			continue
		}
		notes = append(notes, map[string]any{
			"objective":     obj,
			"current_level": "Comprehension",
			"domain":        "Cognitive",
			"is_measurable": strings.Contains(strings.ToLower(obj), "explain") || strings.Contains(strings.ToLower(obj), "apply"),
			"suggestion":    "Use a measurable action verb and name the evidence of mastery.",
		})
	}
	return map[string]any{
		"overall_assessment": "Objectives are a reasonable starting point for " + course.CourseTitle + " (mock analysis).",
		"bloom_analysis":     notes,
		"alignment_notes":    "Objectives build on each other in rough order of cognitive demand.",
		"missing_coverage":   []any{"Higher-order evaluation or synthesis work"},
		"improved_objectives": []any{
			"Students will be able to explain the core concepts in their own words.",
			"Students will be able to apply the concepts to a novel problem.",
		},
	}, nil
}

func (m *mockClient) SuggestActivities(course CourseContext, objectives string) (map[string]any, error) {
	return map[string]any{
		"activities": []any{
			map[string]any{
				"title":               "Guided Concept Discussion",
				"type":                "Discussion",
				"description":         "Small groups unpack the key objectives and report back (mock suggestion).",
				"objective_alignment": []any{"All stated objectives"},
				"duration":            "45 minutes",
				"materials_needed":    []any{"Discussion prompts"},
				"instructions":        []any{"Form groups of four", "Assign one objective per group", "Share conclusions in plenary"},
				"assessment_criteria": "Quality of group summary and participation.",
				"adaptations": map[string]any{
					"online":        "Run in breakout rooms with a shared document.",
					"accessibility": "Provide prompts in advance in written form.",
				},
			},
			map[string]any{
				"title":               "Applied Mini Project",
				"type":                "Project",
				"description":         "Learners apply the concepts to a realistic scenario over one week (mock suggestion).",
				"objective_alignment": []any{"Application-level objectives"},
				"duration":            "1 week",
				"materials_needed":    []any{"Scenario brief", "Rubric"},
				"instructions":        []any{"Review the scenario", "Draft a solution", "Submit for peer feedback"},
				"assessment_criteria": "Rubric-based review of the submitted solution.",
				"adaptations": map[string]any{
					"online":        "Submit and review asynchronously.",
					"accessibility": "Allow alternative submission formats.",
				},
			},
		},
		"sequence_rationale":   "Discussion builds shared understanding before individual application.",
		"total_estimated_time": "1 week plus 45 minutes of class time",
	}, nil
}

func (m *mockClient) RecommendAssessments(course CourseContext, objectives, activities string) (map[string]any, error) {
	return map[string]any{
		"assessments": []any{
			map[string]any{
				"title":               "Concept Check Quiz",
				"type":                "Formative",
				"method":              "Quiz",
				"description":         "Short low-stakes quiz on the core concepts (mock recommendation).",
				"objective_alignment": []any{"Comprehension objectives"},
				"timing":              "End of week 1",
				"weight":              "0%",
				"rubric_criteria":     []any{"Accuracy"},
				"feedback_strategy":   "Automated feedback with links back to the material.",
			},
			map[string]any{
				"title":               "Final Applied Project",
				"type":                "Summative",
				"method":              "Project",
				"description":         "Capstone applying every objective to one scenario (mock recommendation).",
				"objective_alignment": []any{"All stated objectives"},
				"timing":              "Final week",
				"weight":              "40%",
				"rubric_criteria":     []any{"Correct application of concepts", "Clarity of rationale"},
				"feedback_strategy":   "Written rubric feedback within one week.",
			},
		},
		"assessment_strategy_rationale": "Frequent formative checks reduce the stakes of the single summative project.",
		"formative_summative_balance":   "One ungraded formative check per unit, one weighted summative capstone.",
	}, nil
}
