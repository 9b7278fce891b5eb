package repository

import (
	"context"
	"errors"

	"github.com/pyama86/irtrack/domain/entity"
)

var (
	ErrIncidentNotFound     = errors.New("incident not found")
	ErrIncidentTypeNotFound = errors.New("incident type not found")
)

// 見つからない場合はnil(またはfalse)を返す。エラーにはしない
type IncidentTypeRepository interface {
	IncidentTypeByID(context.Context, string) *entity.IncidentType
	IncidentTypes(context.Context) []entity.IncidentType
	IncidentTypesBySeverity(context.Context, entity.Severity) []entity.IncidentType
	AddIncidentType(context.Context, entity.IncidentTypeInput) *entity.IncidentType
	UpdateIncidentType(context.Context, string, entity.IncidentTypePatch) *entity.IncidentType
	DeleteIncidentType(context.Context, string) bool
}

type IncidentRepository interface {
	IncidentByID(context.Context, string) *entity.Incident
	Incidents(context.Context) []entity.Incident
	ActiveIncidents(context.Context) []entity.Incident
	IncidentWithStatus(context.Context, string) *entity.IncidentWithStatus
	IncidentsWithStatus(context.Context) []entity.IncidentWithStatus
	ActiveIncidentsWithStatus(context.Context) []entity.IncidentWithStatus
	InitialReportData(context.Context, string) [][]entity.Question
}

type WorkflowStageRepository interface {
	WorkflowStages(context.Context) []entity.WorkflowStage
	StatusName(int) string
	StatusDescription(int) string
	StatusColor(int) string
	StageAllowsRole(int, string) bool
}

type Repository interface {
	IncidentTypeRepository
	IncidentRepository
	WorkflowStageRepository
}

type RepositoryFacade struct {
	IncidentTypeRepository
	IncidentRepository
	WorkflowStageRepository
}

func NewRepository(incidentTypeRepository IncidentTypeRepository, incidentRepository IncidentRepository, workflowStageRepository WorkflowStageRepository) Repository {
	return RepositoryFacade{
		IncidentTypeRepository:  incidentTypeRepository,
		IncidentRepository:      incidentRepository,
		WorkflowStageRepository: workflowStageRepository,
	}
}

// ResolveIncidentType はインシデントが参照する種別を返す。
// 参照先が存在しない場合はnil (参照整合性はチェックしない)
func ResolveIncidentType(ctx context.Context, repo IncidentTypeRepository, incident *entity.Incident) *entity.IncidentType {
	if incident == nil || incident.Type == "" {
		return nil
	}
	return repo.IncidentTypeByID(ctx, incident.Type)
}

// DanglingIncidents returns incidents whose type names no catalog entry.
func DanglingIncidents(ctx context.Context, repo Repository) []entity.Incident {
	var dangling []entity.Incident
	for _, incident := range repo.Incidents(ctx) {
		if ResolveIncidentType(ctx, repo, &incident) == nil {
			dangling = append(dangling, incident)
		}
	}
	return dangling
}
