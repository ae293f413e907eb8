package telegram

import (
	"html"
	"strings"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

var messengerLabels = map[domain.Messenger]string{
	domain.MessengerTelegram: "📱 Telegram",
	domain.MessengerWhatsApp: "💬 WhatsApp",
	domain.MessengerViber:    "📞 Viber",
	domain.MessengerNone:     "✉️ Email",
}

// FormatBookingMessage HTML-сообщение для Bot API
// ФИО, мессенджер и вопросы приходят уже экранированными
func FormatBookingMessage(b *domain.Booking) string {
	categoryEmoji := "👪"
	if b.Category == domain.CategoryApplicant {
		categoryEmoji = "🎓"
	}

	var sb strings.Builder
	sb.WriteString("🔔 <b>Новая запись на консультацию!</b>\n\n")
	sb.WriteString("👤 <b>ФИО:</b> " + b.FullName + "\n")
	sb.WriteString("📧 <b>Email:</b> " + html.EscapeString(b.Email) + "\n")
	sb.WriteString("📱 <b>Телефон:</b> " + html.EscapeString(b.Phone) + "\n")
	sb.WriteString("📅 <b>Дата:</b> " + b.Date.Format("02.01.2006") + "\n")
	sb.WriteString("🕐 <b>Время:</b> " + b.Time.String() + "\n")
	sb.WriteString(categoryEmoji + " <b>Категория:</b> " + b.Category.Title() + "\n")

	if b.Messenger != domain.MessengerNone && b.MessengerHandle != "" {
		sb.WriteString(messengerLabels[b.Messenger] + " <b>Мессенджер:</b> " + b.MessengerHandle + "\n")
	}

	if strings.TrimSpace(b.Questions) != "" {
		sb.WriteString("\n❓ <b>Вопросы:</b>\n" + b.Questions)
	}

	return sb.String()
}
