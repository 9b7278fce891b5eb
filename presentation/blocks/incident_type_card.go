package blocks

import (
	"fmt"
	"strings"

	"github.com/pyama86/irtrack/domain/entity"
	"github.com/slack-go/slack"
)

func IncidentTypeCard(t entity.IncidentType) []slack.Block {
	autoAlerts := "無効"
	if t.AutoAlerts {
		autoAlerts = "有効"
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject("plain_text", fmt.Sprintf("%s %s", t.IconEmoji, t.Name), true, false),
		),
		slack.NewSectionBlock(
			slack.NewTextBlockObject("mrkdwn", t.Description, false, false),
			[]*slack.TextBlockObject{
				slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*重大度:* %s (`%s`)", t.Severity, entity.SeverityClass(string(t.Severity))), false, false),
				slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*SLA:* %d時間", t.SLAHours), false, false),
				slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*自動アラート:* %s", autoAlerts), false, false),
				slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*入力項目:* %d件", len(t.FormFields)), false, false),
			},
			nil,
		),
	}

	if len(t.Personnel) > 0 {
		var lines []string
		for _, p := range t.Personnel {
			lines = append(lines, fmt.Sprintf("• %s (%s / %s) `%s`", p.Name, p.Role, p.Department, p.AlertLevel))
		}
		blocks = append(blocks,
			slack.NewDividerBlock(),
			slack.NewSectionBlock(
				slack.NewTextBlockObject("mrkdwn", "*対応メンバー*\n"+strings.Join(lines, "\n"), false, false),
				nil,
				nil,
			),
		)
	}
	return blocks
}
