package serviceImp

import (
	"path/filepath"
	"testing"
	"time"

	"iddss/database"
	"iddss/entities"
	actionrepoimp "iddss/pkg/action/repositoryImp"
	recrepoimp "iddss/pkg/recommendation/repositoryImp"
	sessrepoimp "iddss/pkg/session/repositoryImp"
	steprepoimp "iddss/pkg/step/repositoryImp"
)

func newTestEnv(t *testing.T) *ExportSvc {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	svc := New(
		sessrepoimp.New(db),
		steprepoimp.New(db),
		recrepoimp.New(db),
		actionrepoimp.New(db),
	)
	svc.now = func() time.Time {
		return time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func seedSession(t *testing.T, svc *ExportSvc) *entities.Session {
	t.Helper()
	sess := &entities.Session{
		CourseTitle:        "Intro to Databases",
		Level:              "undergraduate",
		Modality:           "online",
		LearningObjectives: "- Explain normalization",
	}
	if err := svc.sessions.Create(sess); err != nil {
		t.Fatal(err)
	}
	return sess
}

func TestSnapshotNotFound(t *testing.T) {
	svc := newTestEnv(t)
	_, err := svc.Snapshot(42)
	if err == nil {
		t.Fatal("expected error for missing session")
	}
	if !IsNotFound(err) {
		t.Fatalf("IsNotFound(%v) = false", err)
	}
}

func TestSnapshotEmptySession(t *testing.T) {
	svc := newTestEnv(t)
	sess := seedSession(t, svc)

	snap, err := svc.Snapshot(sess.SessionID)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Session.CourseTitle != "Intro to Databases" {
		t.Fatalf("course title = %q", snap.Session.CourseTitle)
	}
	if snap.DesignSteps == nil || len(snap.DesignSteps) != 0 {
		t.Fatalf("steps = %v, want empty non-nil slice", snap.DesignSteps)
	}
	if snap.ExportedAt != "2026-01-05T10:00:00Z" {
		t.Fatalf("exported_at = %q", snap.ExportedAt)
	}
	if snap.Summary.TotalSteps != 0 || snap.Summary.TotalActions != 0 {
		t.Fatalf("summary = %+v", snap.Summary)
	}
}

func TestSnapshotFullSession(t *testing.T) {
	svc := newTestEnv(t)
	sess := seedSession(t, svc)

	step := &entities.DesignStep{
		SessionID: sess.SessionID,
		Phase:     "activity-suggestion",
		UserInput: "90 minute sessions",
	}
	if err := svc.steps.Create(step); err != nil {
		t.Fatal(err)
	}
	rec := &entities.Recommendation{
		StepID:      step.StepID,
		Phase:       "activity-suggestion",
		RawResponse: `{"activities": [{"title": "Workshop"}]}`,
	}
	if err := svc.recommendations.Create(rec); err != nil {
		t.Fatal(err)
	}
	for _, a := range []*entities.UserAction{
		{StepID: step.StepID, RecommendationID: &rec.RecommendationID, ActionType: "accept", Comment: "activity-0"},
		{StepID: step.StepID, RecommendationID: &rec.RecommendationID, ActionType: "comment", Comment: "looks good"},
	} {
		if err := svc.actions.Create(a); err != nil {
			t.Fatal(err)
		}
	}

	snap, err := svc.Snapshot(sess.SessionID)
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.DesignSteps) != 1 {
		t.Fatalf("steps = %d, want 1", len(snap.DesignSteps))
	}
	se := snap.DesignSteps[0]
	if len(se.Recommendations) != 1 || len(se.UserActions) != 2 {
		t.Fatalf("recs = %d actions = %d", len(se.Recommendations), len(se.UserActions))
	}

	// Stored JSON comes back parsed.
	resp, ok := se.Recommendations[0].Response.(map[string]any)
	if !ok {
		t.Fatalf("response type %T, want object", se.Recommendations[0].Response)
	}
	if _, ok := resp["activities"]; !ok {
		t.Fatal("activities key missing from parsed response")
	}

	if snap.Summary.TotalSteps != 1 || snap.Summary.TotalRecommendations != 1 || snap.Summary.TotalActions != 2 {
		t.Fatalf("summary = %+v", snap.Summary)
	}
	if snap.Summary.ActionsByType["accept"] != 1 || snap.Summary.ActionsByType["comment"] != 1 {
		t.Fatalf("actions by type = %v", snap.Summary.ActionsByType)
	}

	// End to end: the snapshot reconciles and renders in every format.
	design := svc.FinalDesign(snap)
	if design.ActivityPlan == nil || len(design.ActivityPlan.Activities) != 1 {
		t.Fatalf("activity plan = %+v", design.ActivityPlan)
	}
	for _, render := range []func() ([]byte, error){
		func() ([]byte, error) { return svc.RenderDOCX(snap) },
		func() ([]byte, error) { return svc.RenderPDF(snap) },
		func() ([]byte, error) { return svc.RenderXLSX(snap) },
	} {
		out, err := render()
		if err != nil {
			t.Fatal(err)
		}
		if len(out) == 0 {
			t.Fatal("empty render output")
		}
	}
}

func TestSnapshotUnparsableResponseKeptRaw(t *testing.T) {
	svc := newTestEnv(t)
	sess := seedSession(t, svc)

	step := &entities.DesignStep{SessionID: sess.SessionID, Phase: "objective-analysis"}
	if err := svc.steps.Create(step); err != nil {
		t.Fatal(err)
	}
	if err := svc.recommendations.Create(&entities.Recommendation{
		StepID:      step.StepID,
		Phase:       "objective-analysis",
		RawResponse: "the model rambled instead of returning JSON",
	}); err != nil {
		t.Fatal(err)
	}

	snap, err := svc.Snapshot(sess.SessionID)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := snap.DesignSteps[0].Recommendations[0].Response.(string)
	if !ok || got != "the model rambled instead of returning JSON" {
		t.Fatalf("response = %v (%T), want raw string", got, snap.DesignSteps[0].Recommendations[0].Response)
	}
	// A non-object response yields no objective analysis section.
	if design := svc.FinalDesign(snap); design.ObjectiveAnalysis != nil {
		t.Fatalf("objective analysis = %+v, want nil", design.ObjectiveAnalysis)
	}
}
