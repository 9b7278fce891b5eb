package repository

import (
	"time"

	"github.com/pyama86/irtrack/domain/entity"
)

func seedDate(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

const (
	iconLock   = "M12 15v2m-6 4h12a2 2 0 002-2v-6a2 2 0 00-2-2H6a2 2 0 00-2 2v6a2 2 0 002 2zm10-10V7a4 4 0 00-8 0v4h8z"
	iconMail   = "M3 8l7.89 4.26a2 2 0 002.22 0L21 8M5 19h14a2 2 0 002-2V7a2 2 0 00-2-2H5a2 2 0 00-2 2v10a2 2 0 002 2z"
	iconShield = "M9 12l2 2 4-4m5.618-4.016A11.955 11.955 0 0112 2.944a11.955 11.955 0 01-8.618 3.04A12.02 12.02 0 003 9c0 5.591 3.824 10.29 9 11.622 5.176-1.332 9-6.03 9-11.622 0-1.042-.133-2.052-.382-3.016z"
	iconBolt   = "M13 10V3L4 14h7v7l9-11h-7z"
	iconUser   = "M16 7a4 4 0 11-8 0 4 4 0 018 0zM12 14a7 7 0 00-7 7h14a7 7 0 00-7-7z"
	iconAlert  = "M12 9v2m0 4h.01m-6.938 4h13.856c1.54 0 2.502-1.667 1.732-2.5L13.732 4c-.77-.833-1.964-.833-2.732 0L4.082 16.5c-.77.833.192 2.5 1.732 2.5z"
)

func seedIncidentTypes() []entity.IncidentType {
	return []entity.IncidentType{
		{
			ID:           "ransomware",
			Name:         "Ransomware Attack",
			Title:        "Ransomware Attack",
			Description:  "Report incidents involving file encryption, ransom demands, or suspected ransomware activity.",
			Severity:     entity.SeverityCritical,
			Urgency:      entity.SeverityCritical,
			UrgencyClass: "badge-error",
			Icon:         iconLock,
			IconEmoji:    "🔒",
			Color:        "error",
			FormFields: []entity.FormField{
				{
					ID:          "discovery_method",
					Title:       "How was the ransomware discovered?",
					Description: "Describe how you first became aware of the attack",
					Type:        entity.FieldTypeSelect,
					Required:    true,
					Options: []string{
						"User reported encrypted files",
						"Antivirus alert",
						"System monitoring",
						"Ransom note",
					},
				},
				{
					ID:          "affected_systems",
					Title:       "Which systems are affected?",
					Description: "List all compromised systems and devices",
					Type:        entity.FieldTypeTextarea,
					Required:    true,
				},
			},
			DraftTemplate: `# Ransomware Incident Response

## Executive Summary
[Brief overview of the ransomware attack]

## Incident Details
- **Discovery Time**: [When was it discovered]
- **Affected Systems**: [List of impacted systems]
- **Ransom Demand**: [Amount and payment method]

## Immediate Actions
- [ ] Isolate affected systems
- [ ] Preserve evidence
- [ ] Notify stakeholders
- [ ] Assess backup integrity

## Communication Plan
[Stakeholder notification strategy]`,
			Personnel: []entity.PersonnelAssignment{
				{
					ID:         "1",
					Name:       "Mike Johnson",
					Role:       "Security Team Lead",
					Department: "IT Security",
					Email:      "mike.johnson@bobolink.com",
					Phone:      "+1-555-0101",
					AlertLevel: entity.AlertLevelImmediate,
				},
				{
					ID:         "2",
					Name:       "Sarah Wilson",
					Role:       "IT Director",
					Department: "Information Technology",
					Email:      "sarah.wilson@bobolink.com",
					Phone:      "+1-555-0102",
					AlertLevel: entity.AlertLevelImmediate,
				},
			},
			AutoAlerts:   true,
			SLAHours:     2,
			Created:      seedDate("2024-10-15"),
			LastModified: seedDate("2024-10-17"),
		},
		{
			ID:           "phishing",
			Name:         "Phishing Attack",
			Title:        "Phishing Attack",
			Description:  "Report suspicious emails, fake websites, or social engineering attempts targeting credentials.",
			Severity:     entity.SeverityHigh,
			Urgency:      entity.SeverityHigh,
			UrgencyClass: "badge-warning",
			Icon:         iconMail,
			IconEmoji:    "🎣",
			Color:        "warning",
			FormFields: []entity.FormField{
				{
					ID:          "email_source",
					Title:       "Phishing email source",
					Description: "Where did the phishing attempt originate?",
					Type:        entity.FieldTypeSelect,
					Required:    true,
					Options: []string{
						"External email",
						"Internal email (compromised account)",
						"Text message",
						"Phone call",
						"Website",
					},
				},
				{
					ID:          "targets",
					Title:       "Who was targeted?",
					Description: "List affected users or departments",
					Type:        entity.FieldTypeTextarea,
					Required:    true,
				},
			},
			DraftTemplate: `# Phishing Incident Response

## Incident Overview
[Description of the phishing attempt]

## Analysis
- **Attack Vector**: [Email, SMS, phone, website]
- **Targeted Users**: [Who was targeted]
- **Information Sought**: [What data was the attacker after]

## Response Actions
- [ ] Block malicious domains/IPs
- [ ] Reset compromised credentials
- [ ] User awareness notification
- [ ] Email security review`,
			Personnel: []entity.PersonnelAssignment{
				{
					ID:         "3",
					Name:       "Security Team",
					Role:       "Incident Response",
					Department: "IT Security",
					Email:      "security@bobolink.com",
					Phone:      "+1-555-0103",
					AlertLevel: entity.AlertLevelUrgent,
				},
			},
			AutoAlerts:   true,
			SLAHours:     4,
			Created:      seedDate("2024-10-10"),
			LastModified: seedDate("2024-10-16"),
		},
		{
			ID:           "malware",
			Name:         "Malware Infection",
			Title:        "Malware Infection",
			Description:  "Report suspected malware, viruses, trojans, or any malicious software on systems.",
			Severity:     entity.SeverityHigh,
			Urgency:      entity.SeverityHigh,
			UrgencyClass: "badge-warning",
			Icon:         iconShield,
			IconEmoji:    "🦠",
			Color:        "warning",
			FormFields: []entity.FormField{
				{
					ID:          "malware_type",
					Title:       "Type of malware detected",
					Description: "What kind of malicious software was found?",
					Type:        entity.FieldTypeSelect,
					Required:    true,
					Options:     []string{"Virus", "Trojan", "Worm", "Spyware", "Adware", "Unknown"},
				},
			},
			DraftTemplate: `# Malware Incident Response

## Malware Analysis
- **Type**: [Virus, trojan, worm, etc.]
- **Affected Systems**: [List of infected systems]
- **Detection Method**: [How was it discovered]

## Containment
- [ ] Isolate infected systems
- [ ] Run full system scans
- [ ] Update antivirus signatures
- [ ] Network traffic analysis`,
			Personnel:    []entity.PersonnelAssignment{},
			AutoAlerts:   true,
			SLAHours:     6,
			Created:      seedDate("2024-10-12"),
			LastModified: seedDate("2024-10-15"),
		},
		{
			ID:           "data-breach",
			Name:         "Data Breach",
			Title:        "Data Breach",
			Description:  "Report unauthorized access, data theft, or exposure of sensitive information.",
			Severity:     entity.SeverityCritical,
			Urgency:      entity.SeverityCritical,
			UrgencyClass: "badge-error",
			Icon:         iconLock,
			IconEmoji:    "🛡️",
			Color:        "error",
			FormFields: []entity.FormField{
				{
					ID:          "breach_type",
					Title:       "Type of data breach",
					Description: "What type of data was potentially compromised",
					Type:        entity.FieldTypeCheckbox,
					Required:    true,
					Options: []string{
						"Customer data",
						"Employee records",
						"Financial data",
						"Healthcare records",
						"Other",
					},
				},
			},
			DraftTemplate: `# Data Breach Incident Response

## Incident Overview
[Description of the breach]

## Data Assessment
- **Type of Data**: [What data was accessed]
- **Number of Records**: [Estimated volume]
- **Data Sensitivity**: [Classification level]

## Legal and Compliance
- [ ] Notify legal team
- [ ] Review regulatory requirements
- [ ] Prepare breach notifications`,
			Personnel: []entity.PersonnelAssignment{
				{
					ID:         "4",
					Name:       "Legal Team",
					Role:       "Legal Counsel",
					Department: "Legal",
					Email:      "legal@bobolink.com",
					Phone:      "+1-555-0200",
					AlertLevel: entity.AlertLevelImmediate,
				},
			},
			AutoAlerts:   true,
			SLAHours:     1,
			Created:      seedDate("2024-10-10"),
			LastModified: seedDate("2024-10-16"),
		},
		{
			ID:           "ddos",
			Name:         "DDoS Attack",
			Title:        "DDoS Attack",
			Description:  "Report distributed denial of service attacks or unusual traffic patterns affecting services.",
			Severity:     entity.SeverityHigh,
			Urgency:      entity.SeverityHigh,
			UrgencyClass: "badge-warning",
			Icon:         iconBolt,
			IconEmoji:    "⚡",
			Color:        "warning",
			FormFields: []entity.FormField{
				{
					ID:          "attack_vector",
					Title:       "Attack vector",
					Description: "How is the DDoS attack being carried out?",
					Type:        entity.FieldTypeSelect,
					Required:    true,
					Options: []string{
						"Network layer (volumetric)",
						"Application layer",
						"Protocol attacks",
						"Mixed attack",
					},
				},
			},
			DraftTemplate: `# DDoS Attack Response

## Attack Analysis
- **Attack Type**: [Volumetric, application, protocol]
- **Target Services**: [Which services are affected]
- **Traffic Volume**: [Scale of the attack]

## Mitigation Steps
- [ ] Activate DDoS protection
- [ ] Traffic filtering implementation
- [ ] ISP coordination
- [ ] Service prioritization`,
			Personnel:    []entity.PersonnelAssignment{},
			AutoAlerts:   true,
			SLAHours:     2,
			Created:      seedDate("2024-10-14"),
			LastModified: seedDate("2024-10-17"),
		},
		{
			ID:           "insider-threat",
			Name:         "Insider Threat",
			Title:        "Insider Threat",
			Description:  "Report suspicious activities by employees or other authorized users within the organization.",
			Severity:     entity.SeverityMedium,
			Urgency:      entity.SeverityMedium,
			UrgencyClass: "badge-info",
			Icon:         iconUser,
			IconEmoji:    "👤",
			Color:        "info",
			FormFields: []entity.FormField{
				{
					ID:          "insider_type",
					Title:       "Type of insider threat",
					Description: "What kind of suspicious activity was observed?",
					Type:        entity.FieldTypeSelect,
					Required:    true,
					Options: []string{
						"Data exfiltration",
						"Unauthorized access",
						"Policy violation",
						"Suspicious behavior",
					},
				},
			},
			DraftTemplate: `# Insider Threat Investigation

## Threat Assessment
- **Individual**: [Name/ID if known]
- **Suspicious Activity**: [What was observed]
- **Data at Risk**: [What information might be compromised]

## Investigation Plan
- [ ] Preserve digital evidence
- [ ] Interview witnesses
- [ ] Access log review
- [ ] HR coordination`,
			Personnel:    []entity.PersonnelAssignment{},
			AutoAlerts:   false,
			SLAHours:     24,
			Created:      seedDate("2024-10-11"),
			LastModified: seedDate("2024-10-15"),
		},
		{
			ID:           "system-compromise",
			Name:         "System Compromise",
			Title:        "System Compromise",
			Description:  "Report unauthorized access to systems, servers, or network infrastructure.",
			Severity:     entity.SeverityCritical,
			Urgency:      entity.SeverityCritical,
			UrgencyClass: "badge-error",
			Icon:         iconShield,
			IconEmoji:    "🖥️",
			Color:        "error",
			FormFields: []entity.FormField{
				{
					ID:          "compromise_type",
					Title:       "Type of system compromise",
					Description: "How was the system compromised?",
					Type:        entity.FieldTypeSelect,
					Required:    true,
					Options: []string{
						"Remote access breach",
						"Privilege escalation",
						"Backdoor installation",
						"Unknown method",
					},
				},
			},
			DraftTemplate: `# System Compromise Response

## Compromise Analysis
- **Affected Systems**: [Which systems were compromised]
- **Attack Method**: [How the compromise occurred]
- **Data at Risk**: [What information is potentially exposed]

## Recovery Actions
- [ ] Isolate compromised systems
- [ ] Forensic imaging
- [ ] Credential reset
- [ ] Security patch review`,
			Personnel:    []entity.PersonnelAssignment{},
			AutoAlerts:   true,
			SLAHours:     1,
			Created:      seedDate("2024-10-13"),
			LastModified: seedDate("2024-10-16"),
		},
		{
			ID:           "suspicious-activity",
			Name:         "Suspicious Activity",
			Title:        "Suspicious Activity",
			Description:  "Report any other suspicious behavior, unusual network activity, or potential security concerns.",
			Severity:     entity.SeverityMedium,
			Urgency:      entity.SeverityMedium,
			UrgencyClass: "badge-info",
			Icon:         iconAlert,
			IconEmoji:    "🔍",
			Color:        "info",
			FormFields: []entity.FormField{
				{
					ID:          "activity_type",
					Title:       "Type of suspicious activity",
					Description: "What kind of unusual activity was observed?",
					Type:        entity.FieldTypeTextarea,
					Required:    true,
				},
			},
			DraftTemplate: `# Suspicious Activity Investigation

## Activity Description
[Detailed description of the suspicious behavior]

## Initial Assessment
- **Risk Level**: [Low/Medium/High]
- **Potential Impact**: [What could be affected]
- **Evidence**: [What evidence exists]

## Next Steps
- [ ] Gather additional evidence
- [ ] Determine if escalation needed
- [ ] Monitor for continued activity`,
			Personnel:    []entity.PersonnelAssignment{},
			AutoAlerts:   false,
			SLAHours:     12,
			Created:      seedDate("2024-10-09"),
			LastModified: seedDate("2024-10-14"),
		},
	}
}
