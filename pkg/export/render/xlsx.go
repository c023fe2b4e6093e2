package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"iddss/pkg/export/types"
)

// xlsxRenderer emits a spreadsheet summary of the final design. It is
// tabular rather than flowing, so it walks the design directly instead of
// the block stream.
type xlsxRenderer struct{}

func NewXLSX() Renderer { return &xlsxRenderer{} }

func (r *xlsxRenderer) Render(d *types.FinalDesign) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := r.writeOverview(f, d); err != nil {
		return nil, fmt.Errorf("%w: xlsx: %v", ErrUnavailable, err)
	}
	if ap := d.ActivityPlan; ap != nil && len(ap.Activities) > 0 {
		if err := writeItemSheet(f, "Activities", ap.Activities,
			[]string{"ID", "Title", "Type", "Duration", "Status", "Description", "Assessment Criteria"},
			[]string{"id", "title", "type", "duration", "status", "description", "assessment_criteria"},
		); err != nil {
			return nil, fmt.Errorf("%w: xlsx: %v", ErrUnavailable, err)
		}
	}
	if asmt := d.AssessmentPlan; asmt != nil && len(asmt.Assessments) > 0 {
		if err := writeItemSheet(f, "Assessments", asmt.Assessments,
			[]string{"Title", "Type", "Method", "Timing", "Weight", "Description", "Feedback Strategy"},
			[]string{"title", "type", "method", "timing", "weight", "description", "feedback_strategy"},
		); err != nil {
			return nil, fmt.Errorf("%w: xlsx: %v", ErrUnavailable, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("%w: xlsx: %v", ErrUnavailable, err)
	}
	return buf.Bytes(), nil
}

func (r *xlsxRenderer) writeOverview(f *excelize.File, d *types.FinalDesign) error {
	const sheet = "Overview"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	rows := [][2]string{
		{"Title", d.Title},
		{"Exported At", d.ExportedAt},
		{"Session ID", fmt.Sprintf("%d", d.Session.ID)},
		{"Course Title", d.Session.CourseTitle},
		{"Level", d.Session.Level},
		{"Modality", d.Session.Modality},
	}
	if d.Session.Constraints != "" {
		rows = append(rows, [2]string{"Constraints", d.Session.Constraints})
	}
	if len(d.Session.ObjectiveLines) > 0 {
		rows = append(rows, [2]string{"Learning Objectives", strings.Join(d.Session.ObjectiveLines, "\n")})
	}
	if oa := d.ObjectiveAnalysis; oa != nil && oa.OverallAssessment != "" {
		rows = append(rows, [2]string{"Objective Assessment", oa.OverallAssessment})
	}
	if ap := d.ActivityPlan; ap != nil {
		rows = append(rows, [2]string{"Activity Selection", ap.SelectionNote})
		if ap.TotalEstimatedTime != "" {
			rows = append(rows, [2]string{"Total Estimated Time", ap.TotalEstimatedTime})
		}
	}
	for i, row := range rows {
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", i+1), row[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", i+1), row[1]); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "A", 24)
}

func writeItemSheet(f *excelize.File, sheet string, items []map[string]any, headers, keys []string) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for row, item := range items {
		for col, k := range keys {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, getString(item, k)); err != nil {
				return err
			}
		}
	}
	return nil
}
