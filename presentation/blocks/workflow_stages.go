package blocks

import (
	"fmt"
	"strings"

	"github.com/pyama86/irtrack/domain/entity"
	"github.com/slack-go/slack"
)

// WorkflowStages renders the stage list, marking current as in progress.
// A current index outside the table marks nothing.
func WorkflowStages(stages []entity.WorkflowStage, current int) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject("plain_text", "対応フロー", false, false),
		),
	}
	for i, s := range stages {
		mark := "⬜"
		switch {
		case i < current && current < len(stages):
			mark = "✅"
		case i == current:
			mark = "▶️"
		}
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(
				"mrkdwn",
				fmt.Sprintf("%s *%d. %s*\n%s\n_%s_", mark, i+1, s.Status, s.Description, strings.Join(s.AllowedRoles, ", ")),
				false,
				false,
			),
			nil,
			nil,
		))
	}
	return blocks
}
