package report

import (
	"fmt"
	"strings"

	"github.com/pyama86/irtrack/domain/entity"
)

func Render(incident entity.Incident, statusName, typeName string) string {
	if typeName == "" {
		typeName = incident.Type
	}
	return fmt.Sprintf(`
# %s

## Status

%s

## Priority

%s

## Type

%s

## Assignee

%s

## Created

%s

## Description

%s

## Initial Report

%s
`, incident.Title, statusName, incident.Priority, typeName, incident.Assignee,
		incident.Created.Format("2006-01-02 15:04:05"), incident.Description, renderQuestionRows(incident.QuestionRows))
}

func renderQuestionRows(rows [][]entity.Question) string {
	if len(rows) == 0 {
		return "_No intake answers recorded._"
	}
	var b strings.Builder
	for _, row := range rows {
		for _, q := range row {
			fmt.Fprintf(&b, "### %s\n\n", q.Title)
			if q.Description != "" {
				fmt.Fprintf(&b, "_%s_\n\n", q.Description)
			}
			b.WriteString(renderAnswer(q.Answer))
			b.WriteString("\n\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderAnswer(a entity.Answer) string {
	if a.IsMulti() {
		values := a.Values()
		if len(values) == 0 {
			return "-"
		}
		return "- " + strings.Join(values, "\n- ")
	}
	if a.Value() == "" {
		return "-"
	}
	return a.Value()
}
