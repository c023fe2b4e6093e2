package serviceImp

import (
	"time"

	actionrepo "iddss/pkg/action/repository"
	"iddss/pkg/export/render"
	"iddss/pkg/export/service"
	"iddss/pkg/export/types"
	recrepo "iddss/pkg/recommendation/repository"
	sessrepo "iddss/pkg/session/repository"
	steprepo "iddss/pkg/step/repository"
)

type ExportSvc struct {
	sessions        sessrepo.SessionRepository
	steps           steprepo.StepRepository
	recommendations recrepo.RecommendationRepository
	actions         actionrepo.ActionRepository

	docx render.Renderer
	pdf  render.Renderer
	xlsx render.Renderer

	// now is swappable so tests get stable exported_at stamps.
	now func() time.Time
}

func New(
	sessions sessrepo.SessionRepository,
	steps steprepo.StepRepository,
	recommendations recrepo.RecommendationRepository,
	actions actionrepo.ActionRepository,
) *ExportSvc {
	return &ExportSvc{
		sessions:        sessions,
		steps:           steps,
		recommendations: recommendations,
		actions:         actions,
		docx:            render.NewDOCX(),
		pdf:             render.NewPDF(),
		xlsx:            render.NewXLSX(),
		now:             time.Now,
	}
}

var _ service.ExportService = (*ExportSvc)(nil)

func (s *ExportSvc) FinalDesign(snap *types.Snapshot) *types.FinalDesign {
	return buildFinalDesign(snap)
}

func (s *ExportSvc) RenderDOCX(snap *types.Snapshot) ([]byte, error) {
	return s.docx.Render(buildFinalDesign(snap))
}

func (s *ExportSvc) RenderPDF(snap *types.Snapshot) ([]byte, error) {
	return s.pdf.Render(buildFinalDesign(snap))
}

func (s *ExportSvc) RenderXLSX(snap *types.Snapshot) ([]byte, error) {
	return s.xlsx.Render(buildFinalDesign(snap))
}
