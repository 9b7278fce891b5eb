package blocks

import (
	"fmt"
	"strings"

	"github.com/pyama86/irtrack/domain/entity"
	"github.com/slack-go/slack"
)

var alertLevelOrder = []entity.AlertLevel{
	entity.AlertLevelImmediate,
	entity.AlertLevelUrgent,
	entity.AlertLevelStandard,
}

// ResponderAlert は種別の担当者をアラートレベル順に並べた呼び出しメッセージ
// 自動アラートが無効な種別や担当者がいない場合はnil
func ResponderAlert(incident entity.Incident, t entity.IncidentType) []slack.Block {
	if !t.AutoAlerts || len(t.Personnel) == 0 {
		return nil
	}

	notificationType := "none"
	var sections []slack.Block
	for _, level := range alertLevelOrder {
		ps := t.PersonnelByAlertLevel(level)
		if len(ps) == 0 {
			continue
		}
		if notificationType == "none" {
			notificationType = NotificationTypeFor(level)
		}
		var lines []string
		for _, p := range ps {
			lines = append(lines, fmt.Sprintf("• %s (%s) %s %s", p.Name, p.Role, p.Email, p.Phone))
		}
		sections = append(sections, slack.NewSectionBlock(
			slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*%s*\n%s", level, strings.Join(lines, "\n")), false, false),
			nil,
			nil,
		))
	}

	header := AddNotification(
		fmt.Sprintf("%s *%s* が発生しました: %s (SLA %d時間)", t.IconEmoji, t.Name, incident.Title, t.SLAHours),
		notificationType,
	)
	return append([]slack.Block{
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", header, false, false), nil, nil),
	}, sections...)
}
