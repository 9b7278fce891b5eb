package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyama86/irtrack/domain/entity"
	"github.com/pyama86/irtrack/domain/repository"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newCatalog(t *testing.T) (*repository.IncidentTypeCatalog, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 10, 20, 9, 0, 0, 0, time.UTC)}
	seq := 0
	c := repository.NewIncidentTypeCatalog(
		repository.WithClock(clock.Now),
		repository.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("type-%d", seq)
		}),
	)
	return c, clock
}

func TestIncidentTypeByID(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)

	for _, it := range c.IncidentTypes(ctx) {
		got := c.IncidentTypeByID(ctx, it.ID)
		require.NotNil(t, got, it.ID)
		assert.Equal(t, it, *got)
	}

	assert.Nil(t, c.IncidentTypeByID(ctx, "nope"))
	assert.Nil(t, c.IncidentTypeByID(ctx, ""))
}

func TestIncidentTypesSeed(t *testing.T) {
	c, _ := newCatalog(t)
	types := c.IncidentTypes(context.Background())

	var ids []string
	for _, it := range types {
		ids = append(ids, it.ID)
		assert.False(t, it.LastModified.Before(it.Created), it.ID)
	}
	assert.Equal(t, []string{
		"ransomware",
		"phishing",
		"malware",
		"data-breach",
		"ddos",
		"insider-threat",
		"system-compromise",
		"suspicious-activity",
	}, ids)

	ransomware := types[0]
	assert.Equal(t, entity.SeverityCritical, ransomware.Severity)
	assert.Equal(t, 2, ransomware.SLAHours)
	require.Len(t, ransomware.Personnel, 2)
	assert.Equal(t, entity.AlertLevelImmediate, ransomware.Personnel[0].AlertLevel)
	assert.Equal(t, time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC), ransomware.Created)
}

func TestIncidentTypesReturnsCopies(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)

	got := c.IncidentTypeByID(ctx, "ransomware")
	require.NotNil(t, got)
	got.Name = "changed"
	got.FormFields[0].Options[0] = "changed"

	again := c.IncidentTypeByID(ctx, "ransomware")
	assert.Equal(t, "Ransomware Attack", again.Name)
	assert.Equal(t, "User reported encrypted files", again.FormFields[0].Options[0])
}

func TestIncidentTypesBySeverity(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)

	tests := []struct {
		severity entity.Severity
		want     []string
	}{
		{entity.SeverityCritical, []string{"ransomware", "data-breach", "system-compromise"}},
		{entity.SeverityHigh, []string{"phishing", "malware", "ddos"}},
		{entity.SeverityMedium, []string{"insider-threat", "suspicious-activity"}},
		{entity.SeverityLow, nil},
		{entity.Severity("Unknown"), nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			var ids []string
			for _, it := range c.IncidentTypesBySeverity(ctx, tt.severity) {
				ids = append(ids, it.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestAddIncidentType(t *testing.T) {
	ctx := context.Background()
	c, clock := newCatalog(t)
	before := len(c.IncidentTypes(ctx))

	added := c.AddIncidentType(ctx, entity.IncidentTypeInput{
		Name:     "Lost Device",
		Title:    "Lost Device",
		Severity: entity.SeverityLow,
		SLAHours: 48,
		FormFields: []entity.FormField{
			{ID: "device", Title: "Device type", Type: entity.FieldTypeText, Required: true},
		},
	})
	require.NotNil(t, added)
	assert.Equal(t, "type-1", added.ID)
	assert.Equal(t, clock.now, added.Created)
	assert.Equal(t, added.Created, added.LastModified)

	got := c.IncidentTypeByID(ctx, added.ID)
	require.NotNil(t, got)
	assert.Equal(t, *added, *got)
	assert.Equal(t, clock.now, got.Created)
	assert.Equal(t, got.Created, got.LastModified)

	types := c.IncidentTypes(ctx)
	assert.Len(t, types, before+1)
	assert.Equal(t, added.ID, types[len(types)-1].ID)

	second := c.AddIncidentType(ctx, entity.IncidentTypeInput{Name: "Lost Device"})
	assert.NotEqual(t, added.ID, second.ID)
}

func TestAddIncidentTypeGeneratesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2024, 10, 20, 9, 0, 0, 0, time.UTC)}
	c := repository.NewIncidentTypeCatalog(repository.WithClock(clock.Now))

	// 同一時刻でもIDは重複しない
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		added := c.AddIncidentType(ctx, entity.IncidentTypeInput{Name: "burst"})
		assert.False(t, seen[added.ID], added.ID)
		seen[added.ID] = true
	}
}

func TestUpdateIncidentType(t *testing.T) {
	ctx := context.Background()
	c, clock := newCatalog(t)

	prior := c.IncidentTypeByID(ctx, "phishing")
	require.NotNil(t, prior)

	clock.Advance(time.Hour)
	sla := 1
	severity := entity.SeverityCritical
	updated := c.UpdateIncidentType(ctx, "phishing", entity.IncidentTypePatch{
		SLAHours: &sla,
		Severity: &severity,
	})
	require.NotNil(t, updated)
	assert.Equal(t, 1, updated.SLAHours)
	assert.Equal(t, entity.SeverityCritical, updated.Severity)
	assert.Equal(t, clock.now, updated.LastModified)
	assert.False(t, updated.LastModified.Before(prior.LastModified))

	// 触れていないフィールドは保持される
	want := *prior
	want.SLAHours = 1
	want.Severity = entity.SeverityCritical
	want.LastModified = clock.now
	assert.Equal(t, want, *updated)
	assert.Equal(t, want, *c.IncidentTypeByID(ctx, "phishing"))
}

func TestUpdateIncidentTypeEmptyPatchRestamps(t *testing.T) {
	ctx := context.Background()
	c, clock := newCatalog(t)

	clock.Advance(time.Minute)
	updated := c.UpdateIncidentType(ctx, "ddos", entity.IncidentTypePatch{})
	require.NotNil(t, updated)
	assert.Equal(t, clock.now, updated.LastModified)
}

func TestUpdateIncidentTypeNotFound(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)
	before := c.IncidentTypes(ctx)

	name := "ghost"
	assert.Nil(t, c.UpdateIncidentType(ctx, "missing", entity.IncidentTypePatch{Name: &name}))
	assert.Equal(t, before, c.IncidentTypes(ctx))
}

func TestDeleteIncidentType(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)
	before := len(c.IncidentTypes(ctx))

	assert.True(t, c.DeleteIncidentType(ctx, "ddos"))
	assert.Nil(t, c.IncidentTypeByID(ctx, "ddos"))
	assert.Len(t, c.IncidentTypes(ctx), before-1)

	assert.False(t, c.DeleteIncidentType(ctx, "ddos"))
	assert.Len(t, c.IncidentTypes(ctx), before-1)
}

func TestDeleteIncidentTypeNotFound(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)
	before := c.IncidentTypes(ctx)

	assert.False(t, c.DeleteIncidentType(ctx, "missing"))
	assert.Equal(t, before, c.IncidentTypes(ctx))
}

func TestWithIncidentTypes(t *testing.T) {
	ctx := context.Background()
	c := repository.NewIncidentTypeCatalog(repository.WithIncidentTypes([]entity.IncidentType{
		{ID: "only", Name: "Only", Severity: entity.SeverityLow},
	}))
	types := c.IncidentTypes(ctx)
	require.Len(t, types, 1)
	assert.Equal(t, "only", types[0].ID)
}

func TestCatalogsAreIsolated(t *testing.T) {
	ctx := context.Background()
	a, _ := newCatalog(t)
	b, _ := newCatalog(t)

	require.True(t, a.DeleteIncidentType(ctx, "malware"))
	assert.NotNil(t, b.IncidentTypeByID(ctx, "malware"))
}
