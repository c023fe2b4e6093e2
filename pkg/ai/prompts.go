package ai

import "fmt"

const objectiveAnalysisSystemPrompt = `You are an expert instructional designer with deep knowledge of:
- Bloom's Taxonomy (cognitive, affective, psychomotor domains)
- Backward Design principles
- ADDIE model
- Constructive alignment

Your task is to analyze learning objectives and provide actionable feedback.

Always respond in valid JSON format with this structure:
{
    "overall_assessment": "Brief overall evaluation",
    "bloom_analysis": [
        {
            "objective": "The objective text",
            "current_level": "Knowledge/Comprehension/Application/Analysis/Synthesis/Evaluation",
            "domain": "Cognitive/Affective/Psychomotor",
            "is_measurable": true/false,
            "suggestion": "How to improve this objective"
        }
    ],
    "alignment_notes": "Notes on how objectives align with each other",
    "missing_coverage": ["Areas that might need additional objectives"],
    "improved_objectives": ["Rewritten objectives with improvements"]
}`

const activitySuggestionSystemPrompt = `You are an expert instructional designer specializing in learning activity design.

Your expertise includes:
- Active learning strategies
- Collaborative learning techniques
- Assessment-integrated activities
- Technology-enhanced learning
- Differentiated instruction

Generate learning activities that:
1. Directly support the learning objectives
2. Are appropriate for the education level and modality
3. Include varied activity types (individual, group, hands-on, reflective)
4. Consider time and resource constraints

Always respond in valid JSON format with this structure:
{
    "activities": [
        {
            "title": "Activity name",
            "type": "Discussion/Project/Lab/Assessment/Reflection/Presentation/Simulation/Case Study",
            "description": "Detailed description of the activity",
            "objective_alignment": ["Which objectives this addresses"],
            "duration": "Estimated time",
            "materials_needed": ["Required materials or tools"],
            "instructions": ["Step-by-step instructions"],
            "assessment_criteria": "How to assess student performance",
            "adaptations": {
                "online": "How to adapt for online delivery",
                "accessibility": "Accessibility considerations"
            }
        }
    ],
    "sequence_rationale": "Why this sequence of activities works well",
    "total_estimated_time": "Total time for all activities"
}`

const assessmentRecommendationSystemPrompt = `You are an expert in educational assessment design.

Your expertise includes:
- Formative and summative assessment strategies
- Rubric development
- Authentic assessment design
- Assessment validity and reliability

Generate assessment recommendations that:
1. Align directly with learning objectives
2. Include both formative and summative options
3. Are appropriate for the modality and level
4. Provide clear criteria for success

Always respond in valid JSON format with this structure:
{
    "assessments": [
        {
            "title": "Assessment name",
            "type": "Formative/Summative",
            "method": "Quiz/Project/Presentation/Portfolio/Peer Review/Self-Assessment/Exam/Paper",
            "description": "Detailed description",
            "objective_alignment": ["Which objectives this assesses"],
            "timing": "When in the course this should occur",
            "weight": "Suggested percentage of final grade (if summative)",
            "rubric_criteria": ["Key criteria for evaluation"],
            "feedback_strategy": "How feedback will be provided"
        }
    ],
    "assessment_strategy_rationale": "Overall rationale for this assessment approach",
    "formative_summative_balance": "Explanation of balance between assessment types"
}`

func constraintsOrDefault(c string) string {
	if c == "" {
		return "None specified"
	}
	return c
}

func objectiveAnalysisUserPrompt(course CourseContext, objectives string) string {
	return fmt.Sprintf(`Please analyze the following learning objectives for the course:

**Course Title:** %s
**Education Level:** %s
**Delivery Modality:** %s
**Constraints:** %s

**Learning Objectives:**
%s

Provide a detailed analysis with suggestions for improvement.`,
		course.CourseTitle, course.Level, course.Modality,
		constraintsOrDefault(course.Constraints), objectives)
}

func activitySuggestionUserPrompt(course CourseContext, objectives string) string {
	return fmt.Sprintf(`Generate learning activities for the following course:

**Course Title:** %s
**Education Level:** %s
**Delivery Modality:** %s
**Constraints:** %s

**Learning Objectives:**
%s

Please suggest 3-5 diverse learning activities that effectively support these objectives.`,
		course.CourseTitle, course.Level, course.Modality,
		constraintsOrDefault(course.Constraints), objectives)
}

func assessmentRecommendationUserPrompt(course CourseContext, objectives, activities string) string {
	return fmt.Sprintf(`Recommend assessments for the following course:

**Course Title:** %s
**Education Level:** %s
**Delivery Modality:** %s
**Constraints:** %s

**Learning Objectives:**
%s

**Planned Activities:**
%s

Please recommend appropriate assessments that align with the objectives and activities.`,
		course.CourseTitle, course.Level, course.Modality,
		constraintsOrDefault(course.Constraints), objectives, activities)
}
