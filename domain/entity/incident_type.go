package entity

import (
	"slices"
	"time"
)

type FieldType string

const (
	FieldTypeText          FieldType = "text"
	FieldTypeTextarea      FieldType = "textarea"
	FieldTypeSelect        FieldType = "select"
	FieldTypeRadio         FieldType = "radio"
	FieldTypeCheckbox      FieldType = "checkbox"
	FieldTypeDate          FieldType = "date"
	FieldTypeDatetimeLocal FieldType = "datetime-local"
)

// MultiValue は複数回答を持つ入力種別かどうか
func (f FieldType) MultiValue() bool {
	return f == FieldTypeCheckbox
}

type AlertLevel string

const (
	AlertLevelImmediate AlertLevel = "immediate"
	AlertLevelUrgent    AlertLevel = "urgent"
	AlertLevelStandard  AlertLevel = "standard"
)

type FormField struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	Options     []string  `json:"options,omitempty"`
}

type PersonnelAssignment struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Role       string     `json:"role"`
	Department string     `json:"department"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	AlertLevel AlertLevel `json:"alertLevel"`
}

type IncidentType struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	Severity      Severity              `json:"severity"`
	Urgency       Severity              `json:"urgency"`
	UrgencyClass  string                `json:"urgencyClass"`
	Icon          string                `json:"icon"`
	IconEmoji     string                `json:"iconEmoji"`
	Color         string                `json:"color"`
	FormFields    []FormField           `json:"formFields"`
	DraftTemplate string                `json:"draftTemplate"`
	Personnel     []PersonnelAssignment `json:"personnel"`
	AutoAlerts    bool                  `json:"autoAlerts"`
	SLAHours      int                   `json:"slaHours"`
	Created       time.Time             `json:"created"`
	LastModified  time.Time             `json:"lastModified"`
}

// Clone returns a copy that shares no slices with t.
func (t IncidentType) Clone() IncidentType {
	c := t
	c.FormFields = cloneFormFields(t.FormFields)
	c.Personnel = slices.Clone(t.Personnel)
	return c
}

// PersonnelByAlertLevel は指定レベルの担当者だけを返す
func (t IncidentType) PersonnelByAlertLevel(level AlertLevel) []PersonnelAssignment {
	var ps []PersonnelAssignment
	for _, p := range t.Personnel {
		if p.AlertLevel == level {
			ps = append(ps, p)
		}
	}
	return ps
}

// IncidentTypeInput carries every caller-supplied field of a new IncidentType.
// ID and timestamps are assigned by the catalog.
type IncidentTypeInput struct {
	Name          string
	Title         string
	Description   string
	Severity      Severity
	Urgency       Severity
	UrgencyClass  string
	Icon          string
	IconEmoji     string
	Color         string
	FormFields    []FormField
	DraftTemplate string
	Personnel     []PersonnelAssignment
	AutoAlerts    bool
	SLAHours      int
}

// IncidentTypePatch is a partial update. Nil fields are left untouched.
type IncidentTypePatch struct {
	Name          *string
	Title         *string
	Description   *string
	Severity      *Severity
	Urgency       *Severity
	UrgencyClass  *string
	Icon          *string
	IconEmoji     *string
	Color         *string
	FormFields    *[]FormField
	DraftTemplate *string
	Personnel     *[]PersonnelAssignment
	AutoAlerts    *bool
	SLAHours      *int
}

// Apply merges p into t. LastModified is left to the caller.
func (p IncidentTypePatch) Apply(t *IncidentType) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Severity != nil {
		t.Severity = *p.Severity
	}
	if p.Urgency != nil {
		t.Urgency = *p.Urgency
	}
	if p.UrgencyClass != nil {
		t.UrgencyClass = *p.UrgencyClass
	}
	if p.Icon != nil {
		t.Icon = *p.Icon
	}
	if p.IconEmoji != nil {
		t.IconEmoji = *p.IconEmoji
	}
	if p.Color != nil {
		t.Color = *p.Color
	}
	if p.FormFields != nil {
		t.FormFields = cloneFormFields(*p.FormFields)
	}
	if p.DraftTemplate != nil {
		t.DraftTemplate = *p.DraftTemplate
	}
	if p.Personnel != nil {
		t.Personnel = slices.Clone(*p.Personnel)
	}
	if p.AutoAlerts != nil {
		t.AutoAlerts = *p.AutoAlerts
	}
	if p.SLAHours != nil {
		t.SLAHours = *p.SLAHours
	}
}

func cloneFormFields(fields []FormField) []FormField {
	if fields == nil {
		return nil
	}
	c := make([]FormField, len(fields))
	for i, f := range fields {
		f.Options = slices.Clone(f.Options)
		c[i] = f
	}
	return c
}
