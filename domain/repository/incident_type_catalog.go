package repository

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pyama86/irtrack/domain/entity"
)

type CatalogOption func(*IncidentTypeCatalog)

// WithClock replaces time.Now as the source of Created/LastModified stamps.
func WithClock(now func() time.Time) CatalogOption {
	return func(c *IncidentTypeCatalog) {
		c.now = now
	}
}

func WithIDGenerator(gen func() string) CatalogOption {
	return func(c *IncidentTypeCatalog) {
		c.newID = gen
	}
}

// WithIncidentTypes replaces the seed catalog.
func WithIncidentTypes(types []entity.IncidentType) CatalogOption {
	return func(c *IncidentTypeCatalog) {
		c.types = make([]entity.IncidentType, len(types))
		for i, t := range types {
			c.types[i] = t.Clone()
		}
	}
}

// IncidentTypeCatalog is the in-memory IncidentTypeRepository.
type IncidentTypeCatalog struct {
	mu    sync.RWMutex
	types []entity.IncidentType
	now   func() time.Time
	newID func() string
}

func NewIncidentTypeCatalog(opts ...CatalogOption) *IncidentTypeCatalog {
	c := &IncidentTypeCatalog{
		types: seedIncidentTypes(),
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *IncidentTypeCatalog) indexOf(id string) int {
	return slices.IndexFunc(c.types, func(t entity.IncidentType) bool {
		return t.ID == id
	})
}

func (c *IncidentTypeCatalog) IncidentTypeByID(_ context.Context, id string) *entity.IncidentType {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i == -1 {
		return nil
	}
	t := c.types[i].Clone()
	return &t
}

func (c *IncidentTypeCatalog) IncidentTypes(_ context.Context) []entity.IncidentType {
	c.mu.RLock()
	defer c.mu.RUnlock()

	types := make([]entity.IncidentType, 0, len(c.types))
	for _, t := range c.types {
		types = append(types, t.Clone())
	}
	return types
}

func (c *IncidentTypeCatalog) IncidentTypesBySeverity(_ context.Context, severity entity.Severity) []entity.IncidentType {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var types []entity.IncidentType
	for _, t := range c.types {
		if t.Severity == severity {
			types = append(types, t.Clone())
		}
	}
	return types
}

func (c *IncidentTypeCatalog) AddIncidentType(_ context.Context, in entity.IncidentTypeInput) *entity.IncidentType {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	t := entity.IncidentType{
		ID:            c.newID(),
		Name:          in.Name,
		Title:         in.Title,
		Description:   in.Description,
		Severity:      in.Severity,
		Urgency:       in.Urgency,
		UrgencyClass:  in.UrgencyClass,
		Icon:          in.Icon,
		IconEmoji:     in.IconEmoji,
		Color:         in.Color,
		FormFields:    in.FormFields,
		DraftTemplate: in.DraftTemplate,
		Personnel:     in.Personnel,
		AutoAlerts:    in.AutoAlerts,
		SLAHours:      in.SLAHours,
		Created:       now,
		LastModified:  now,
	}.Clone()
	c.types = append(c.types, t)
	slog.Debug("incident type added", slog.String("id", t.ID), slog.String("name", t.Name))

	ret := t.Clone()
	return &ret
}

func (c *IncidentTypeCatalog) UpdateIncidentType(_ context.Context, id string, patch entity.IncidentTypePatch) *entity.IncidentType {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i == -1 {
		slog.Debug("incident type not found for update", slog.String("id", id))
		return nil
	}
	t := c.types[i].Clone()
	patch.Apply(&t)
	t.LastModified = c.now()
	c.types[i] = t
	slog.Debug("incident type updated", slog.String("id", id))

	ret := t.Clone()
	return &ret
}

func (c *IncidentTypeCatalog) DeleteIncidentType(_ context.Context, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i == -1 {
		return false
	}
	c.types = slices.Delete(c.types, i, i+1)
	slog.Debug("incident type deleted", slog.String("id", id))
	return true
}
