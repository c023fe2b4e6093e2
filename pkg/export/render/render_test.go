package render

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"iddss/pkg/export/types"
)

func sampleDesign() *types.FinalDesign {
	return &types.FinalDesign{
		Title:      "Instructional Design Plan",
		ExportedAt: "2026-01-05T10:00:00Z",
		Session: types.SessionSummary{
			ID:             7,
			CourseTitle:    "Intro to Databases",
			Level:          "undergraduate",
			Modality:       "online",
			Constraints:    "8 weeks, no lab access",
			ObjectiveLines: []string{"Explain normalization", "Write basic SQL"},
		},
		ObjectiveAnalysis: &types.ObjectiveAnalysis{
			OverallAssessment: "Objectives are mostly measurable.",
			AlignmentNotes:    "Both objectives map to the midterm.",
			BloomAnalysis: []types.BloomNote{
				{Objective: "Explain normalization", CurrentLevel: "Understand", Suggestion: "Push toward Apply."},
			},
		},
		ActivityPlan: &types.ActivityPlan{
			SelectionNote:      "Included activities you marked as accepted.",
			SequenceRationale:  "Concepts before practice.",
			TotalEstimatedTime: "3 hours",
			Activities: []map[string]any{
				{
					"id":          "activity-0",
					"title":       "Normalization Workshop",
					"type":        "workshop",
					"duration":    "60 min",
					"status":      "accepted",
					"description": "Decompose a denormalized table.",
					"objective_alignment": []any{"Explain normalization"},
					"materials_needed":    []any{"worksheet"},
					"adaptations": map[string]any{
						"remote":   "use a shared doc",
						"advanced": "add BCNF cases",
					},
				},
			},
		},
		AssessmentPlan: &types.AssessmentPlan{
			StrategyRationale: "Frequent low-stakes checks.",
			Assessments: []map[string]any{
				{
					"title":             "SQL Quiz",
					"type":              "formative",
					"timing":            "week 3",
					"weight":            "10%",
					"description":       "Ten short queries.",
					"rubric_criteria":   []any{"correctness", "style"},
					"feedback_strategy": "auto-graded with hints",
				},
			},
		},
	}
}

func findHeading(t *testing.T, blocks []Block, text string) int {
	t.Helper()
	for i, b := range blocks {
		if b.Kind == KindHeading && b.Text == text {
			return i
		}
	}
	t.Fatalf("heading %q not found", text)
	return -1
}

func TestBuildSectionOrder(t *testing.T) {
	blocks := Build(sampleDesign())

	if blocks[0].Kind != KindHeading || blocks[0].Level != 0 || blocks[0].Text != "Instructional Design Plan" {
		t.Fatalf("first block = %+v, want level-0 title", blocks[0])
	}

	ctx := findHeading(t, blocks, "Course Context")
	obj := findHeading(t, blocks, "Learning Objectives")
	ana := findHeading(t, blocks, "Objective Analysis (AI)")
	act := findHeading(t, blocks, "Learning Activities")
	asmt := findHeading(t, blocks, "Assessments (AI)")
	if !(ctx < obj && obj < ana && ana < act && act < asmt) {
		t.Fatalf("sections out of order: ctx=%d obj=%d ana=%d act=%d asmt=%d", ctx, obj, ana, act, asmt)
	}

	// Assessments begin on a fresh page.
	if blocks[asmt-1].Kind != KindPageBreak {
		t.Fatalf("block before assessments = %+v, want page break", blocks[asmt-1])
	}
}

func TestBuildActivityTitleMeta(t *testing.T) {
	blocks := Build(sampleDesign())
	findHeading(t, blocks, "Normalization Workshop (workshop • 60 min)")
	findHeading(t, blocks, "SQL Quiz (formative • week 3 • 10%)")
}

func TestBuildBloomLine(t *testing.T) {
	blocks := Build(sampleDesign())
	for i, b := range blocks {
		if b.Kind == KindBullet && b.Text == "Explain normalization — level: Understand" {
			if blocks[i+1].Kind != KindDetail || blocks[i+1].Text != "Push toward Apply." {
				t.Fatalf("block after bloom bullet = %+v, want detail suggestion", blocks[i+1])
			}
			return
		}
	}
	t.Fatal("bloom bullet not found")
}

func TestBuildAdaptationsSorted(t *testing.T) {
	blocks := Build(sampleDesign())
	at := findHeading(t, blocks, "Adaptations:")
	got := []string{blocks[at+1].Text, blocks[at+2].Text}
	want := []string{"advanced: add BCNF cases", "remote: use a shared doc"}
	if got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("adaptations = %v, want %v", got, want)
	}
}

func TestBuildOmitsAbsentSections(t *testing.T) {
	d := sampleDesign()
	d.ObjectiveAnalysis = nil
	d.ActivityPlan = nil
	d.AssessmentPlan = nil
	d.Session.Constraints = ""
	d.Session.ObjectiveLines = nil

	for _, b := range Build(d) {
		switch b.Text {
		case "Learning Objectives", "Objective Analysis (AI)", "Learning Activities", "Assessments (AI)", "Constraints":
			t.Fatalf("unexpected section %q for empty design", b.Text)
		}
		if b.Kind == KindPageBreak {
			t.Fatal("unexpected page break for empty design")
		}
	}
}

func TestBuildEmptyActivityListDropsSection(t *testing.T) {
	d := sampleDesign()
	d.ActivityPlan.Activities = nil
	for _, b := range Build(d) {
		if b.Kind == KindHeading && b.Text == "Learning Activities" {
			t.Fatal("activities section present with no activities")
		}
	}
}

func TestBuildUntitledItemsNumbered(t *testing.T) {
	d := sampleDesign()
	d.ActivityPlan.Activities = []map[string]any{{"description": "no title here"}}
	blocks := Build(d)
	findHeading(t, blocks, "Activity 1")
}

func TestRenderersProduceBytes(t *testing.T) {
	d := sampleDesign()
	for name, r := range map[string]Renderer{
		"docx": NewDOCX(),
		"pdf":  NewPDF(),
		"xlsx": NewXLSX(),
	} {
		out, err := r.Render(d)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(out) == 0 {
			t.Fatalf("%s: empty output", name)
		}
	}
}

func TestPDFStartsWithMagic(t *testing.T) {
	out, err := NewPDF().Render(sampleDesign())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("pdf output starts with %q", out[:8])
	}
}

func TestDOCXDetailUsesParagraphIndent(t *testing.T) {
	out, err := NewDOCX().Render(sampleDesign())
	if err != nil {
		t.Fatal(err)
	}

	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatalf("open docx: %v", err)
	}
	var doc string
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		doc = string(raw)
	}
	if doc == "" {
		t.Fatal("word/document.xml not found")
	}

	if !strings.Contains(doc, `w:left="720"`) {
		t.Fatal("detail paragraph missing half-inch left indent")
	}
	if strings.Contains(doc, "    Push toward Apply.") {
		t.Fatal("detail text still carries a space prefix")
	}
	if !strings.Contains(doc, "Push toward Apply.") {
		t.Fatal("detail text missing from document")
	}
}

func TestXLSXIsZip(t *testing.T) {
	out, err := NewXLSX().Render(sampleDesign())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out, []byte("PK")) {
		t.Fatalf("xlsx output starts with %q", out[:4])
	}
}
