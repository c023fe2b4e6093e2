package types

// Phase tags the stage of the design workflow a step belongs to. The set
// is open-ended on the wire; reconciliation only dispatches on the three
// known tags and treats everything else as opaque.
type Phase string

const (
	PhaseObjectiveAnalysis        Phase = "objective-analysis"
	PhaseActivitySuggestion       Phase = "activity-suggestion"
	PhaseAssessmentRecommendation Phase = "assessment-recommendation"
	PhaseUnknown                  Phase = ""
)

func ParsePhase(s string) Phase {
	switch Phase(s) {
	case PhaseObjectiveAnalysis, PhaseActivitySuggestion, PhaseAssessmentRecommendation:
		return Phase(s)
	}
	return PhaseUnknown
}

// ActionType classifies a user action for reconciliation. Anything outside
// the three known types is ignored by the fold.
type ActionType string

const (
	ActionAccept  ActionType = "accept"
	ActionReject  ActionType = "reject"
	ActionEdit    ActionType = "edit"
	ActionIgnored ActionType = ""
)

func ParseActionType(s string) ActionType {
	switch ActionType(s) {
	case ActionAccept, ActionReject, ActionEdit:
		return ActionType(s)
	}
	return ActionIgnored
}

// Status is the reconciled state of one activity.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Snapshot is the full read-only export of one session: the session row
// plus every step with its recommendations and user actions, as of export
// time. It is also the JSON export payload.
type Snapshot struct {
	Session     SessionExport `json:"session"`
	DesignSteps []StepExport  `json:"design_steps"`
	Summary     Summary       `json:"summary"`
	ExportedAt  string        `json:"exported_at"`
}

type SessionExport struct {
	ID                 uint   `json:"id"`
	CourseTitle        string `json:"course_title"`
	Level              string `json:"level"`
	Modality           string `json:"modality"`
	Constraints        string `json:"constraints"`
	LearningObjectives string `json:"learning_objectives"`
	CreatedAt          string `json:"created_at"`
}

type StepExport struct {
	ID              uint                   `json:"id"`
	Phase           string                 `json:"phase"`
	UserInput       string                 `json:"user_input"`
	CreatedAt       string                 `json:"created_at"`
	Recommendations []RecommendationExport `json:"recommendations"`
	UserActions     []ActionExport         `json:"user_actions"`
}

// RecommendationExport carries the provider payload. Response is the
// parsed JSON value when RawResponse decodes, otherwise the raw string.
type RecommendationExport struct {
	ID        uint   `json:"id"`
	Phase     string `json:"phase"`
	Response  any    `json:"response"`
	CreatedAt string `json:"created_at"`
}

type ActionExport struct {
	ID               uint   `json:"id"`
	RecommendationID *uint  `json:"recommendation_id"`
	ActionType       string `json:"action_type"`
	EditedContent    string `json:"edited_content"`
	Comment          string `json:"comment"`
	CreatedAt        string `json:"created_at"`
}

type Summary struct {
	TotalSteps           int            `json:"total_steps"`
	TotalRecommendations int            `json:"total_recommendations"`
	TotalActions         int            `json:"total_actions"`
	ActionsByType        map[string]int `json:"actions_by_type"`
}

// FinalDesign is the canonical merged view both renderers consume. It is a
// pure function of the snapshot: same snapshot, same design.
type FinalDesign struct {
	Title             string             `json:"title"`
	ExportedAt        string             `json:"exported_at"`
	Session           SessionSummary     `json:"session"`
	ObjectiveAnalysis *ObjectiveAnalysis `json:"objective_analysis"`
	ActivityPlan      *ActivityPlan      `json:"activity_plan"`
	AssessmentPlan    *AssessmentPlan    `json:"assessment_plan"`
}

type SessionSummary struct {
	ID                 uint     `json:"id"`
	CourseTitle        string   `json:"course_title"`
	Level              string   `json:"level"`
	Modality           string   `json:"modality"`
	Constraints        string   `json:"constraints"`
	LearningObjectives string   `json:"learning_objectives"`
	ObjectiveLines     []string `json:"learning_objectives_lines"`
}

type ObjectiveAnalysis struct {
	OverallAssessment  string      `json:"overall_assessment"`
	AlignmentNotes     string      `json:"alignment_notes"`
	BloomAnalysis      []BloomNote `json:"bloom_analysis"`
	ImprovedObjectives []string    `json:"improved_objectives"`
	MissingCoverage    []string    `json:"missing_coverage"`
}

type BloomNote struct {
	Objective    string `json:"objective"`
	CurrentLevel string `json:"current_level"`
	Domain       string `json:"domain"`
	IsMeasurable bool   `json:"is_measurable"`
	Suggestion   string `json:"suggestion"`
}

// ActivityPlan is the reconciled activity list. Activities stay dynamic
// maps: the provider's field set is not a contract, and normalization only
// touches the fields it knows about.
type ActivityPlan struct {
	SelectionNote      string           `json:"selection_note"`
	SequenceRationale  string           `json:"sequence_rationale"`
	TotalEstimatedTime string           `json:"total_estimated_time"`
	Activities         []map[string]any `json:"activities"`
}

type AssessmentPlan struct {
	StrategyRationale         string           `json:"assessment_strategy_rationale"`
	FormativeSummativeBalance string           `json:"formative_summative_balance"`
	Assessments               []map[string]any `json:"assessments"`
}
