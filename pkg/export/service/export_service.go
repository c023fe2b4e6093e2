package service

import "iddss/pkg/export/types"

type ExportService interface {
	Snapshot(sessionID uint) (*types.Snapshot, error)
	FinalDesign(snap *types.Snapshot) *types.FinalDesign
	RenderDOCX(snap *types.Snapshot) ([]byte, error)
	RenderPDF(snap *types.Snapshot) ([]byte, error)
	RenderXLSX(snap *types.Snapshot) ([]byte, error)
}
