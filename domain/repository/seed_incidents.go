package repository

import (
	"time"

	"github.com/pyama86/irtrack/domain/entity"
)

// seedIncidents builds the initial incidents with created times relative to now.
func seedIncidents(now time.Time) []entity.Incident {
	hoursAgo := func(h int) time.Time {
		return now.Add(-time.Duration(h) * time.Hour)
	}

	return []entity.Incident{
		{
			ID:          "1",
			Title:       "Port of Rotterdam Malware Disruption",
			StatusIndex: 1,
			Priority:    entity.SeverityCritical,
			Assignee:    "Maritime Security Team",
			Created:     hoursAgo(2),
			Type:        "malware",
			Description: "Wiper malware affecting critical port logistics systems. Container operations disrupted, multilingual stakeholder communications coordinated.",
			QuestionRows: [][]entity.Question{
				// 発見時の基本情報
				{
					{
						ID:       "discovery_time",
						Title:    "When discovered?",
						Type:     entity.FieldTypeDatetimeLocal,
						Required: true,
						Answer:   entity.NewAnswer(entity.FieldTypeDatetimeLocal, "2024-10-19T06:45"),
						Width:    entity.QuestionWidthHalf,
					},
					{
						ID:       "incident_discovery",
						Title:    "How discovered?",
						Type:     entity.FieldTypeSelect,
						Required: true,
						Options: []string{
							"User report",
							"Antivirus alert",
							"Performance issues",
							"System failure",
							"Monitoring alert",
							"Other",
						},
						Answer: entity.NewAnswer(entity.FieldTypeSelect, "Monitoring alert"),
						Width:  entity.QuestionWidthHalf,
					},
				},
				{
					{
						ID:          "affected_systems",
						Title:       "Affected systems",
						Description: "List compromised systems/devices",
						Type:        entity.FieldTypeTextarea,
						Required:    true,
						Answer: entity.NewAnswer(entity.FieldTypeTextarea,
							"• Terminal Operating System (TOS) - Container tracking affected\n"+
								"• Port Community System (PCS) - Cargo clearance disrupted\n"+
								"• Vessel Traffic Management System (VTMS) - Ship scheduling impacted\n"+
								"• Cargo Handling Equipment Control - 12 cranes offline\n"+
								"• Gate Access Control Systems - Entry/exit processing delayed"),
						Width: entity.QuestionWidthFull,
					},
				},
				{
					{
						ID:       "malware_type",
						Title:    "Malware type detected",
						Type:     entity.FieldTypeSelect,
						Required: true,
						Options:  []string{"Ransomware", "Wiper malware", "Trojan", "Rootkit", "Unknown", "Multiple types"},
						Answer:   entity.NewAnswer(entity.FieldTypeSelect, "Wiper malware"),
						Width:    entity.QuestionWidthThird,
					},
					{
						ID:       "infection_vector",
						Title:    "Suspected infection vector",
						Type:     entity.FieldTypeSelect,
						Required: false,
						Options: []string{
							"Email attachment",
							"USB device",
							"Network vulnerability",
							"Supply chain",
							"Remote access",
							"Unknown",
						},
						Answer: entity.NewAnswer(entity.FieldTypeSelect, "Email attachment"),
						Width:  entity.QuestionWidthThird,
					},
					{
						ID:       "spread_pattern",
						Title:    "Spread pattern",
						Type:     entity.FieldTypeSelect,
						Required: false,
						Options:  []string{"Lateral movement", "Targeted systems", "Random spread", "Contained", "Unknown"},
						Answer:   entity.NewAnswer(entity.FieldTypeSelect, "Lateral movement"),
						Width:    entity.QuestionWidthThird,
					},
				},
				{
					{
						ID:       "port_operations",
						Title:    "Port operations affected",
						Type:     entity.FieldTypeCheckbox,
						Required: true,
						Options: []string{
							"Container handling",
							"Ship scheduling",
							"Cargo clearance",
							"Gate operations",
							"Fuel services",
							"Logistics coordination",
						},
						Answer: entity.NewAnswer(entity.FieldTypeCheckbox,
							"Container handling", "Ship scheduling", "Cargo clearance", "Gate operations"),
						Width: entity.QuestionWidthHalf,
					},
					{
						ID:       "vessels_impacted",
						Title:    "Vessels currently impacted",
						Type:     entity.FieldTypeText,
						Required: true,
						Answer:   entity.NewAnswer(entity.FieldTypeText, "23 container ships, 8 bulk carriers awaiting clearance"),
						Width:    entity.QuestionWidthHalf,
					},
				},
				{
					{
						ID:       "systems_isolated",
						Title:    "Systems isolated?",
						Type:     entity.FieldTypeRadio,
						Required: true,
						Options: []string{
							"Fully isolated",
							"Critical systems only",
							"Partial isolation",
							"No isolation",
							"Unknown",
						},
						Answer: entity.NewAnswer(entity.FieldTypeRadio, "Critical systems only"),
						Width:  entity.QuestionWidthHalf,
					},
					{
						ID:       "backup_systems",
						Title:    "Backup systems status",
						Type:     entity.FieldTypeSelect,
						Required: true,
						Options: []string{
							"Fully operational",
							"Partially operational",
							"Manual procedures only",
							"No backup systems",
							"Under assessment",
						},
						Answer: entity.NewAnswer(entity.FieldTypeSelect, "Manual procedures only"),
						Width:  entity.QuestionWidthHalf,
					},
				},
				{
					{
						ID:       "stakeholder_notifications",
						Title:    "Stakeholder notifications required",
						Type:     entity.FieldTypeCheckbox,
						Required: true,
						Options: []string{
							"Port customers",
							"Shipping lines",
							"Customs authorities",
							"Media/Press",
							"Government agencies",
							"International partners",
						},
						Answer: entity.NewAnswer(entity.FieldTypeCheckbox,
							"Port customers", "Shipping lines", "Customs authorities", "Media/Press"),
						Width: entity.QuestionWidthFull,
					},
				},
				// 多言語対応
				{
					{
						ID:       "languages_required",
						Title:    "Languages for communications",
						Type:     entity.FieldTypeCheckbox,
						Required: true,
						Options:  []string{"Dutch", "English", "German", "French", "Chinese", "Spanish"},
						Answer:   entity.NewAnswer(entity.FieldTypeCheckbox, "Dutch", "English", "German"),
						Width:    entity.QuestionWidthHalf,
					},
					{
						ID:       "priority_communications",
						Title:    "Priority communication channels",
						Type:     entity.FieldTypeSelect,
						Required: true,
						Options: []string{
							"Press release",
							"Customer portal",
							"Direct notifications",
							"Social media",
							"All channels",
						},
						Answer: entity.NewAnswer(entity.FieldTypeSelect, "All channels"),
						Width:  entity.QuestionWidthHalf,
					},
				},
				{
					{
						ID:          "business_impact",
						Title:       "Operational and economic impact",
						Description: "Describe current and projected impact on port operations",
						Type:        entity.FieldTypeTextarea,
						Required:    true,
						Answer: entity.NewAnswer(entity.FieldTypeTextarea,
							"Severe disruption to Europe's largest port operations. Container throughput reduced by 75%. "+
								"Ship delays causing supply chain disruptions across Netherlands, Germany, and Belgium. "+
								"Estimated economic impact: €15M per day. 31 vessels currently waiting for berths. "+
								"Manual cargo processing causing 4-6 hour delays. Media attention requiring coordinated multilingual response."),
						Width: entity.QuestionWidthFull,
					},
				},
			},
		},
		{
			ID:          "2",
			Title:       "Phishing Campaign - HR Department",
			StatusIndex: 3,
			Priority:    entity.SeverityHigh,
			Assignee:    "Jane Smith",
			Created:     hoursAgo(1),
			Type:        "phishing",
			Description: "Employees reported suspicious emails claiming to be from HR with malicious attachments.",
		},
		{
			ID:          "3",
			Title:       "Data Breach - Customer Database",
			StatusIndex: 2,
			Priority:    entity.SeverityCritical,
			Assignee:    "Security Team Beta",
			Created:     hoursAgo(3),
			Type:        "data-breach",
			Description: "Unauthorized access detected to customer database. Investigation ongoing.",
		},
		{
			ID:          "4",
			Title:       "DDoS Attack - Web Services",
			StatusIndex: 4,
			Priority:    entity.SeverityHigh,
			Assignee:    "Network Team",
			Created:     hoursAgo(4),
			Type:        "ddos",
			Description: "Large-scale distributed denial of service attack targeting our web services.",
		},
		{
			ID:          "5",
			Title:       "Insider Threat - Suspicious Activity",
			StatusIndex: 7,
			Priority:    entity.SeverityMedium,
			Assignee:    "Security Team Alpha",
			Created:     hoursAgo(6),
			Type:        "insider-threat",
			Description: "Investigation completed. No malicious activity found.",
		},
	}
}
