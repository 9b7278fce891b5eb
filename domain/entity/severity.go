package entity

type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityHigh     Severity = "High"
	SeverityMedium   Severity = "Medium"
	SeverityLow      Severity = "Low"
)

// SeverityClass はバッジのCSSクラスを返す。未知の値はneutral扱い
func SeverityClass(severity string) string {
	switch Severity(severity) {
	case SeverityCritical:
		return "badge-error"
	case SeverityHigh:
		return "badge-warning"
	case SeverityMedium:
		return "badge-info"
	case SeverityLow:
		return "badge-success"
	default:
		return "badge-neutral"
	}
}
