package blocks

import (
	"fmt"

	"github.com/pyama86/irtrack/domain/entity"
	"github.com/slack-go/slack"
)

var stageColorEmoji = map[string]string{
	"error":     "🔴",
	"warning":   "🟠",
	"secondary": "🟣",
	"info":      "🔵",
	"accent":    "🟡",
	"primary":   "🟦",
	"success":   "🟢",
}

func stageEmoji(color string) string {
	if e, ok := stageColorEmoji[color]; ok {
		return e
	}
	return "⚪"
}

// IncidentStatus はインシデントの現在ステージを表示するカード
func IncidentStatus(incident entity.IncidentWithStatus, statusColor, typeName string) []slack.Block {
	if typeName == "" {
		typeName = incident.Type
	}
	return []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject("plain_text", fmt.Sprintf("#%s %s", incident.ID, incident.Title), false, false),
		),
		slack.NewSectionBlock(
			slack.NewTextBlockObject("mrkdwn", incident.Description, false, false),
			[]*slack.TextBlockObject{
				slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*ステータス:* %s %s", stageEmoji(statusColor), incident.StatusName), false, false),
				slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*優先度:* %s", incident.Priority), false, false),
				slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*担当:* %s", incident.Assignee), false, false),
				slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*種別:* %s", typeName), false, false),
			},
			nil,
		),
		slack.NewContextBlock(
			"",
			slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("起票: %s", incident.Created.Format("2006-01-02 15:04:05")), false, false),
		),
	}
}
