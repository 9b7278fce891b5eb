package blocks

import "github.com/pyama86/irtrack/domain/entity"

// AddNotification は通知タイプに応じてメッセージに通知を追加する
func AddNotification(message, notificationType string) string {
	switch notificationType {
	case "here":
		return "<!here> " + message
	case "channel":
		return "<!channel> " + message
	case "none":
		return message
	default:
		return message
	}
}

// NotificationTypeFor maps a responder alert level to a mention type.
func NotificationTypeFor(level entity.AlertLevel) string {
	switch level {
	case entity.AlertLevelImmediate:
		return "channel"
	case entity.AlertLevelUrgent:
		return "here"
	default:
		return "none"
	}
}
