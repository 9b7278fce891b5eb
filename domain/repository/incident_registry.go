package repository

import (
	"context"
	"sync"
	"time"

	"github.com/pyama86/irtrack/domain/entity"
)

type RegistryOption func(*registryOptions)

type registryOptions struct {
	now       func() time.Time
	incidents []entity.Incident
}

// WithReferenceClock sets the clock the seed incidents' created times are relative to.
func WithReferenceClock(now func() time.Time) RegistryOption {
	return func(o *registryOptions) {
		o.now = now
	}
}

// WithIncidents replaces the seed incidents.
func WithIncidents(incidents []entity.Incident) RegistryOption {
	return func(o *registryOptions) {
		o.incidents = incidents
	}
}

// IncidentRegistry is the in-memory IncidentRepository. Incidents are
// read-only after construction.
type IncidentRegistry struct {
	mu        sync.RWMutex
	incidents map[string]entity.Incident
	order     []string
	stages    *WorkflowStageTable
}

func NewIncidentRegistry(stages *WorkflowStageTable, opts ...RegistryOption) *IncidentRegistry {
	o := &registryOptions{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	incidents := o.incidents
	if incidents == nil {
		incidents = seedIncidents(o.now())
	}

	r := &IncidentRegistry{
		incidents: make(map[string]entity.Incident, len(incidents)),
		stages:    stages,
	}
	for _, incident := range incidents {
		if _, ok := r.incidents[incident.ID]; !ok {
			r.order = append(r.order, incident.ID)
		}
		r.incidents[incident.ID] = incident.Clone()
	}
	return r
}

func (r *IncidentRegistry) IncidentByID(_ context.Context, id string) *entity.Incident {
	r.mu.RLock()
	defer r.mu.RUnlock()

	incident, ok := r.incidents[id]
	if !ok {
		return nil
	}
	c := incident.Clone()
	return &c
}

func (r *IncidentRegistry) Incidents(_ context.Context) []entity.Incident {
	r.mu.RLock()
	defer r.mu.RUnlock()

	incidents := make([]entity.Incident, 0, len(r.order))
	for _, id := range r.order {
		incidents = append(incidents, r.incidents[id].Clone())
	}
	return incidents
}

// ActiveIncidents はクローズステージに達していないインシデントを返す
func (r *IncidentRegistry) ActiveIncidents(ctx context.Context) []entity.Incident {
	var active []entity.Incident
	for _, incident := range r.Incidents(ctx) {
		if incident.StatusIndex < r.stages.ClosureIndex() {
			active = append(active, incident)
		}
	}
	return active
}

func (r *IncidentRegistry) withStatus(incident entity.Incident) entity.IncidentWithStatus {
	return entity.IncidentWithStatus{
		Incident:   incident,
		StatusName: r.stages.StatusName(incident.StatusIndex),
	}
}

func (r *IncidentRegistry) IncidentWithStatus(ctx context.Context, id string) *entity.IncidentWithStatus {
	incident := r.IncidentByID(ctx, id)
	if incident == nil {
		return nil
	}
	ws := r.withStatus(*incident)
	return &ws
}

func (r *IncidentRegistry) IncidentsWithStatus(ctx context.Context) []entity.IncidentWithStatus {
	incidents := r.Incidents(ctx)
	ret := make([]entity.IncidentWithStatus, 0, len(incidents))
	for _, incident := range incidents {
		ret = append(ret, r.withStatus(incident))
	}
	return ret
}

func (r *IncidentRegistry) ActiveIncidentsWithStatus(ctx context.Context) []entity.IncidentWithStatus {
	incidents := r.ActiveIncidents(ctx)
	ret := make([]entity.IncidentWithStatus, 0, len(incidents))
	for _, incident := range incidents {
		ret = append(ret, r.withStatus(incident))
	}
	return ret
}

// InitialReportData returns the incident's intake answers, nil when there are none.
func (r *IncidentRegistry) InitialReportData(ctx context.Context, id string) [][]entity.Question {
	incident := r.IncidentByID(ctx, id)
	if incident == nil {
		return nil
	}
	return incident.QuestionRows
}
