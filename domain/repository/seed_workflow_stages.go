package repository

import "github.com/pyama86/irtrack/domain/entity"

const svgOpen = `<svg class="w-4 h-4" fill="none" stroke="currentColor" viewBox="0 0 24 24">`

func svgIcon(paths ...string) string {
	s := svgOpen
	for _, d := range paths {
		s += `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="` + d + `"></path>`
	}
	return s + `</svg>`
}

func seedWorkflowStages() []entity.WorkflowStage {
	return []entity.WorkflowStage{
		{
			Status:       "Incident Opened",
			Description:  "Initial incident report received and logged",
			Color:        "error",
			Icon:         svgIcon("M12 9v2m0 4h.01m-6.938 4h13.856c1.54 0 2.502-1.667 1.732-2.5L13.732 4c-.77-.833-1.964-.833-2.732 0L4.268 18.5c-.77.833.192 2.5z"),
			AllowedRoles: []string{"Security Team", "Operations", "IT Support"},
		},
		{
			Status:       "Initial Triage & Technical Review",
			Description:  "Technical assessment and impact analysis",
			Color:        "warning",
			Icon:         svgIcon("M9 5H7a2 2 0 00-2 2v12a2 2 0 002 2h10a2 2 0 002-2V7a2 2 0 00-2-2h-2M9 5a2 2 0 002 2h2a2 2 0 002-2M9 5a2 2 0 012-2h2a2 2 0 012 2m-6 9l2 2 4-4"),
			AllowedRoles: []string{"Security Team", "Technical Lead", "Incident Manager"},
		},
		{
			Status:       "Legal & Regulatory Assessment",
			Description:  "Legal review and regulatory compliance check",
			Color:        "secondary",
			Icon:         svgIcon("M3 6l3 1m0 0l-3 9a5.002 5.002 0 006.001 0M6 7l3 9M6 7l6-2m6 2l3-1m-3 1l-3 9a5.002 5.002 0 006.001 0M18 7l3 9m-3-9l-6-2m0-2v2m0 16V5m0 16l3-1m-3 1l-3-1"),
			AllowedRoles: []string{"Legal Team", "Compliance", "Risk Management"},
		},
		{
			Status:       "Communications Drafting",
			Description:  "Draft external communications and press materials",
			Color:        "info",
			Icon:         svgIcon("M11 5H6a2 2 0 00-2 2v11a2 2 0 002 2h11a2 2 0 002-2v-5m-1.414-9.414a2 2 0 112.828 2.828L11.828 15H9v-2.828l8.586-8.586z"),
			AllowedRoles: []string{"PR Team", "Communications", "Marketing"},
		},
		{
			Status:       "Management Approval",
			Description:  "Executive review and go/no-go decision",
			Color:        "accent",
			Icon:         svgIcon("M9 12l2 2 4-4m6 2a9 9 0 11-18 0 9 9 0 0118 0z"),
			AllowedRoles: []string{"C-Suite", "Executive Team", "Senior Management"},
		},
		{
			Status:       "External Notification & Publication",
			Description:  "Public disclosure and stakeholder notification",
			Color:        "primary",
			Icon:         svgIcon("M11.049 2.927c.3-.921 1.603-.921 1.902 0l1.519 4.674a1 1 0 00.95.69h4.915c.969 0 1.371 1.24.588 1.81l-3.976 2.888a1 1 0 00-.363 1.118l1.518 4.674c.3.922-.755 1.688-1.538 1.118l-3.976-2.888a1 1 0 00-1.176 0l-3.976 2.888c-.783.57-1.838-.197-1.538-1.118l1.518-4.674a1 1 0 00-.363-1.118l-3.976-2.888c-.784-.57-.38-1.81.588-1.81h4.914a1 1 0 00.951-.69l1.519-4.674z"),
			AllowedRoles: []string{"PR Team", "Communications", "Executive Team"},
		},
		{
			Status:      "Ongoing Updates & Monitoring",
			Description: "Monitor situation and provide status updates",
			Color:       "warning",
			Icon: svgIcon(
				"M15 12a3 3 0 11-6 0 3 3 0 016 0z",
				"M2.458 12C3.732 7.943 7.523 5 12 5c4.478 0 8.268 2.943 9.542 7-1.274 4.057-5.064 7-9.542 7-4.477 0-8.268-2.943-9.542-7z",
			),
			AllowedRoles: []string{"Incident Manager", "Communications", "Operations"},
		},
		{
			Status:       "Post-Incident Review & Closure",
			Description:  "Final review, lessons learned, and case closure",
			Color:        "success",
			Icon:         svgIcon("M9 12l2 2 4-4m6 2a9 9 0 11-18 0 9 9 0 0118 0z"),
			AllowedRoles: []string{"Incident Manager", "Security Team", "Quality Assurance"},
		},
	}
}
