package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pyama86/irtrack/domain/entity"
	"github.com/pyama86/irtrack/presentation/report"
)

func TestRender(t *testing.T) {
	incident := entity.Incident{
		ID:          "1",
		Title:       "Port of Rotterdam Malware Disruption",
		Priority:    entity.SeverityCritical,
		Assignee:    "Maritime Security Team",
		Created:     time.Date(2024, 10, 19, 10, 0, 0, 0, time.UTC),
		Type:        "malware",
		Description: "Wiper malware affecting critical port logistics systems.",
		QuestionRows: [][]entity.Question{
			{
				{
					ID:          "malware_type",
					Title:       "Malware type detected",
					Description: "Best guess is fine",
					Type:        entity.FieldTypeSelect,
					Answer:      entity.NewAnswer(entity.FieldTypeSelect, "Wiper malware"),
				},
				{
					ID:     "languages_required",
					Title:  "Languages for communications",
					Type:   entity.FieldTypeCheckbox,
					Answer: entity.NewAnswer(entity.FieldTypeCheckbox, "Dutch", "English"),
				},
				{
					ID:     "vessels_impacted",
					Title:  "Vessels currently impacted",
					Type:   entity.FieldTypeText,
					Answer: entity.NewAnswer(entity.FieldTypeText),
				},
			},
		},
	}

	out := report.Render(incident, "Initial Triage & Technical Review", "Malware Infection")
	assert.Contains(t, out, "# Port of Rotterdam Malware Disruption")
	assert.Contains(t, out, "## Status\n\nInitial Triage & Technical Review")
	assert.Contains(t, out, "## Type\n\nMalware Infection")
	assert.Contains(t, out, "2024-10-19 10:00:00")
	assert.Contains(t, out, "### Malware type detected\n\n_Best guess is fine_\n\nWiper malware")
	assert.Contains(t, out, "- Dutch\n- English")
	assert.Contains(t, out, "### Vessels currently impacted\n\n-")
}

func TestRenderWithoutQuestions(t *testing.T) {
	out := report.Render(entity.Incident{Title: "DDoS Attack - Web Services", Type: "ddos"}, "Unknown Status", "")
	assert.Contains(t, out, "## Type\n\nddos")
	assert.Contains(t, out, "_No intake answers recorded._")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "# DDoS Attack - Web Services"))
}
