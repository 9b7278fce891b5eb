package repository

import (
	"context"

	"github.com/pyama86/irtrack/domain/entity"
)

const (
	UnknownStatusName        = "Unknown Status"
	UnknownStatusDescription = "Unknown Description"
	UnknownStatusColor       = "neutral"
)

// WorkflowStageTable is the fixed, ordered list of workflow stages.
// The last stage is terminal.
type WorkflowStageTable struct {
	stages []entity.WorkflowStage
}

func NewWorkflowStageTable() *WorkflowStageTable {
	return &WorkflowStageTable{stages: seedWorkflowStages()}
}

func (w *WorkflowStageTable) stage(i int) (entity.WorkflowStage, bool) {
	if i < 0 || i >= len(w.stages) {
		return entity.WorkflowStage{}, false
	}
	return w.stages[i], true
}

// ClosureIndex はクローズ(最終)ステージのインデックス
func (w *WorkflowStageTable) ClosureIndex() int {
	return len(w.stages) - 1
}

func (w *WorkflowStageTable) WorkflowStages(_ context.Context) []entity.WorkflowStage {
	stages := make([]entity.WorkflowStage, len(w.stages))
	for i, s := range w.stages {
		stages[i] = s.Clone()
	}
	return stages
}

func (w *WorkflowStageTable) StatusName(i int) string {
	s, ok := w.stage(i)
	if !ok || s.Status == "" {
		return UnknownStatusName
	}
	return s.Status
}

func (w *WorkflowStageTable) StatusDescription(i int) string {
	s, ok := w.stage(i)
	if !ok || s.Description == "" {
		return UnknownStatusDescription
	}
	return s.Description
}

func (w *WorkflowStageTable) StatusColor(i int) string {
	s, ok := w.stage(i)
	if !ok || s.Color == "" {
		return UnknownStatusColor
	}
	return s.Color
}

func (w *WorkflowStageTable) StageAllowsRole(i int, role string) bool {
	s, ok := w.stage(i)
	if !ok {
		return false
	}
	return s.AllowsRole(role)
}
