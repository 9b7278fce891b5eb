package entity_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyama86/irtrack/domain/entity"
)

func TestSeverityClass(t *testing.T) {
	tests := []struct {
		severity string
		want     string
	}{
		{"Critical", "badge-error"},
		{"High", "badge-warning"},
		{"Medium", "badge-info"},
		{"Low", "badge-success"},
		{"critical", "badge-neutral"},
		{"", "badge-neutral"},
		{"Severe", "badge-neutral"},
	}
	for _, tt := range tests {
		t.Run(tt.severity, func(t *testing.T) {
			assert.Equal(t, tt.want, entity.SeverityClass(tt.severity))
		})
	}
}

func TestNewAnswer(t *testing.T) {
	single := entity.NewAnswer(entity.FieldTypeSelect, "Antivirus alert")
	assert.False(t, single.IsMulti())
	assert.Equal(t, "Antivirus alert", single.Value())
	assert.Equal(t, []string{"Antivirus alert"}, single.Values())

	multi := entity.NewAnswer(entity.FieldTypeCheckbox, "Dutch", "English")
	assert.True(t, multi.IsMulti())
	assert.Equal(t, "Dutch", multi.Value())
	assert.Equal(t, []string{"Dutch", "English"}, multi.Values())

	empty := entity.NewAnswer(entity.FieldTypeText)
	assert.False(t, empty.IsMulti())
	assert.Empty(t, empty.Value())
	assert.Nil(t, empty.Values())
}

func TestAnswerJSON(t *testing.T) {
	b, err := json.Marshal(entity.NewAnswer(entity.FieldTypeRadio, "Fully isolated"))
	require.NoError(t, err)
	assert.JSONEq(t, `"Fully isolated"`, string(b))

	b, err = json.Marshal(entity.NewAnswer(entity.FieldTypeCheckbox, "a", "b"))
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(b))

	b, err = json.Marshal(entity.NewAnswer(entity.FieldTypeCheckbox))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))

	var q entity.Question
	require.NoError(t, json.Unmarshal([]byte(`{"id":"langs","type":"checkbox","answer":["Dutch","German"]}`), &q))
	assert.True(t, q.Answer.IsMulti())
	assert.Equal(t, []string{"Dutch", "German"}, q.Answer.Values())

	require.NoError(t, json.Unmarshal([]byte(`{"id":"when","type":"date","answer":"2024-10-19"}`), &q))
	assert.False(t, q.Answer.IsMulti())
	assert.Equal(t, "2024-10-19", q.Answer.Value())

	assert.Error(t, json.Unmarshal([]byte(`{"answer":42}`), &q))
}

func TestIncidentTypePatchApply(t *testing.T) {
	created := time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)
	base := entity.IncidentType{
		ID:         "phishing",
		Name:       "Phishing Attack",
		Severity:   entity.SeverityHigh,
		SLAHours:   4,
		AutoAlerts: true,
		FormFields: []entity.FormField{{ID: "email_source", Options: []string{"Website"}}},
		Created:    created,
	}

	name := "Spear Phishing"
	sla := 2
	off := false
	got := base.Clone()
	entity.IncidentTypePatch{Name: &name, SLAHours: &sla, AutoAlerts: &off}.Apply(&got)

	assert.Equal(t, "Spear Phishing", got.Name)
	assert.Equal(t, 2, got.SLAHours)
	assert.False(t, got.AutoAlerts)
	assert.Equal(t, base.ID, got.ID)
	assert.Equal(t, base.Severity, got.Severity)
	assert.Equal(t, base.FormFields, got.FormFields)
	assert.Equal(t, created, got.Created)
}

func TestIncidentTypeClone(t *testing.T) {
	orig := entity.IncidentType{
		FormFields: []entity.FormField{{ID: "f", Options: []string{"a"}}},
		Personnel:  []entity.PersonnelAssignment{{ID: "1"}},
	}
	c := orig.Clone()
	c.FormFields[0].Options[0] = "changed"
	c.Personnel[0].ID = "2"

	assert.Equal(t, "a", orig.FormFields[0].Options[0])
	assert.Equal(t, "1", orig.Personnel[0].ID)
}

func TestPersonnelByAlertLevel(t *testing.T) {
	it := entity.IncidentType{Personnel: []entity.PersonnelAssignment{
		{ID: "1", AlertLevel: entity.AlertLevelImmediate},
		{ID: "2", AlertLevel: entity.AlertLevelStandard},
		{ID: "3", AlertLevel: entity.AlertLevelImmediate},
	}}
	ps := it.PersonnelByAlertLevel(entity.AlertLevelImmediate)
	require.Len(t, ps, 2)
	assert.Equal(t, "1", ps[0].ID)
	assert.Equal(t, "3", ps[1].ID)
	assert.Empty(t, it.PersonnelByAlertLevel(entity.AlertLevelUrgent))
}

func TestWorkflowStageAllowsRole(t *testing.T) {
	s := entity.WorkflowStage{AllowedRoles: []string{"Legal Team", "Compliance"}}
	assert.True(t, s.AllowsRole("Compliance"))
	assert.False(t, s.AllowsRole("PR Team"))
}
