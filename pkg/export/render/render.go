// Package render turns a final design into downloadable bytes. One shared
// walk (Build) flattens the design into blocks; each backend serializes
// the same block stream so the formats cannot drift apart.
package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"iddss/pkg/export/types"
)

// ErrUnavailable marks a failure of the backing document library. The
// export endpoint reports it instead of returning truncated bytes.
var ErrUnavailable = errors.New("renderer unavailable")

type Renderer interface {
	Render(d *types.FinalDesign) ([]byte, error)
}

type Kind int

const (
	KindHeading Kind = iota // Level 0 title, 1 section, 2 subsection, 3 label
	KindPara
	KindBullet
	KindDetail // follow-up paragraph aligned with the bullet text above
	KindPageBreak
)

type Block struct {
	Kind  Kind
	Level int
	Text  string
}

func heading(level int, text string) Block { return Block{Kind: KindHeading, Level: level, Text: text} }
func para(text string) Block               { return Block{Kind: KindPara, Text: text} }
func bullet(text string) Block             { return Block{Kind: KindBullet, Text: text} }
func detail(text string) Block             { return Block{Kind: KindDetail, Text: text} }

func getString(m map[string]any, k string) string {
	s, _ := m[k].(string)
	return s
}

func getStrings(m map[string]any, k string) []string {
	switch t := m[k].(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, v := range t {
			if s, ok := v.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func joinMeta(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " • ")
}

// Build flattens the design into the block stream both document backends
// consume. Empty fields and absent sections emit nothing.
func Build(d *types.FinalDesign) []Block {
	var b []Block
	add := func(blocks ...Block) { b = append(b, blocks...) }

	add(heading(0, d.Title))
	add(para("Exported at: "+d.ExportedAt))
	add(para(fmt.Sprintf("Session ID: %d", d.Session.ID)))

	add(heading(1, "Course Context"))
	add(para("Course Title: " + d.Session.CourseTitle))
	add(para("Level: " + d.Session.Level))
	add(para("Modality: " + d.Session.Modality))
	if d.Session.Constraints != "" {
		add(heading(2, "Constraints"))
		add(para(d.Session.Constraints))
	}

	if len(d.Session.ObjectiveLines) > 0 {
		add(heading(1, "Learning Objectives"))
		for _, ln := range d.Session.ObjectiveLines {
			add(bullet(ln))
		}
	}

	if oa := d.ObjectiveAnalysis; oa != nil {
		add(heading(1, "Objective Analysis (AI)"))
		if oa.OverallAssessment != "" {
			add(para(oa.OverallAssessment))
		}
		if oa.AlignmentNotes != "" {
			add(heading(2, "Alignment Notes"))
			add(para(oa.AlignmentNotes))
		}
		if len(oa.BloomAnalysis) > 0 {
			add(heading(2, "Bloom's Taxonomy Notes"))
			for _, note := range oa.BloomAnalysis {
				line := strings.Trim(note.Objective+" — level: "+note.CurrentLevel, " —")
				if line != "" {
					add(bullet(line))
				}
				if note.Suggestion != "" {
					add(detail(note.Suggestion))
				}
			}
		}
	}

	if ap := d.ActivityPlan; ap != nil && len(ap.Activities) > 0 {
		add(heading(1, "Learning Activities"))
		if ap.SelectionNote != "" {
			add(para(ap.SelectionNote))
		}
		if ap.TotalEstimatedTime != "" {
			add(para("Total estimated time: " + ap.TotalEstimatedTime))
		}
		if ap.SequenceRationale != "" {
			add(heading(2, "Sequence Rationale"))
			add(para(ap.SequenceRationale))
		}
		for idx, act := range ap.Activities {
			title := getString(act, "title")
			if title == "" {
				title = fmt.Sprintf("Activity %d", idx+1)
			}
			if meta := joinMeta(getString(act, "type"), getString(act, "duration")); meta != "" {
				title += " (" + meta + ")"
			}
			add(heading(2, title))
			if v := getString(act, "description"); v != "" {
				add(para(v))
			}
			addListed(add, "Aligns with objectives:", getStrings(act, "objective_alignment"))
			addListed(add, "Materials:", getStrings(act, "materials_needed"))
			addListed(add, "Instructions:", getStrings(act, "instructions"))
			if v := getString(act, "assessment_criteria"); v != "" {
				add(heading(3, "Assessment criteria:"))
				add(para(v))
			}
			if ad, ok := act["adaptations"].(map[string]any); ok && len(ad) > 0 {
				var lines []string
				for k := range ad {
					if v := getString(ad, k); v != "" {
						lines = append(lines, k+": "+v)
					}
				}
				// Map iteration order is random; sort so the export is
				// reproducible.
				sort.Strings(lines)
				addListed(add, "Adaptations:", lines)
			}
		}
	}

	if asmt := d.AssessmentPlan; asmt != nil && len(asmt.Assessments) > 0 {
		add(Block{Kind: KindPageBreak})
		add(heading(1, "Assessments (AI)"))
		if asmt.StrategyRationale != "" {
			add(para(asmt.StrategyRationale))
		}
		if asmt.FormativeSummativeBalance != "" {
			add(para(asmt.FormativeSummativeBalance))
		}
		for idx, a := range asmt.Assessments {
			title := getString(a, "title")
			if title == "" {
				title = fmt.Sprintf("Assessment %d", idx+1)
			}
			if meta := joinMeta(getString(a, "type"), getString(a, "timing"), getString(a, "weight")); meta != "" {
				title += " (" + meta + ")"
			}
			add(heading(2, title))
			if v := getString(a, "description"); v != "" {
				add(para(v))
			}
			addListed(add, "Aligns with objectives:", getStrings(a, "objective_alignment"))
			addListed(add, "Rubric criteria:", getStrings(a, "rubric_criteria"))
			if v := getString(a, "feedback_strategy"); v != "" {
				add(heading(3, "Feedback strategy:"))
				add(para(v))
			}
		}
	}

	return b
}

func addListed(add func(...Block), label string, items []string) {
	if len(items) == 0 {
		return
	}
	add(heading(3, label))
	for _, it := range items {
		add(bullet(it))
	}
}
