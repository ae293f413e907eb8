package resend

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

const clientTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <style>
    body { font-family: 'Segoe UI', Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #667eea; color: white; padding: 30px; border-radius: 10px 10px 0 0; text-align: center; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
    .info-block { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #667eea; }
    .label { font-weight: bold; color: #667eea; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header"><h1>✅ Запись подтверждена</h1></div>
    <div class="content">
      <p>Здравствуйте, <strong>{{.FullName}}</strong>!</p>
      <p>Ваша запись на консультацию успешно оформлена.</p>
      <div class="info-block">
        <p><span class="label">📅 Дата:</span> {{.Date}}</p>
        <p><span class="label">🕐 Время:</span> {{.Time}}</p>
        <p><span class="label">📧 Email:</span> {{.Email}}</p>
        <p><span class="label">📱 Телефон:</span> {{.Phone}}</p>
      </div>
      <p>Мы свяжемся с вами для подтверждения встречи.</p>
      <p>С уважением,<br><strong>Приёмная комиссия</strong></p>
    </div>
  </div>
</body>
</html>`

const adminTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <style>
    body { font-family: 'Segoe UI', Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #f5576c; color: white; padding: 30px; border-radius: 10px 10px 0 0; text-align: center; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
    .info-row { padding: 10px 0; border-bottom: 1px solid #eee; }
    .label { font-weight: bold; color: #f5576c; display: inline-block; width: 150px; }
    .questions-box { background: #fff3cd; padding: 15px; border-radius: 8px; border-left: 4px solid #ffc107; margin-top: 15px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header"><h1>🔔 Новая запись</h1></div>
    <div class="content">
      <p><strong>Получена новая запись на консультацию:</strong></p>
      <div class="info-row"><span class="label">👤 ФИО:</span> {{.FullName}}</div>
      <div class="info-row"><span class="label">📧 Email:</span> {{.Email}}</div>
      <div class="info-row"><span class="label">📱 Телефон:</span> {{.Phone}}</div>
      <div class="info-row"><span class="label">📅 Дата:</span> {{.Date}}</div>
      <div class="info-row"><span class="label">🕐 Время:</span> {{.Time}}</div>
      <div class="info-row"><span class="label">👥 Категория:</span> {{.Category}}</div>
      {{- if .MessengerHandle}}
      <div class="info-row"><span class="label">{{.Messenger}}:</span> {{.MessengerHandle}}</div>
      {{- end}}
      {{- if .Questions}}
      <div class="questions-box"><strong>❓ Вопросы:</strong><br>{{.Questions}}</div>
      {{- end}}
      <p style="margin-top: 20px;">Проверьте запись в админ-панели для подтверждения.</p>
    </div>
  </div>
</body>
</html>`

var (
	clientTmpl = template.Must(template.New("client").Parse(clientTemplate))
	adminTmpl  = template.Must(template.New("admin").Parse(adminTemplate))
)

// emailView данные шаблона
// Поля типа template.HTML экранированы при приеме записи и не экранируются повторно
type emailView struct {
	FullName        template.HTML
	Email           string
	Phone           string
	Date            string
	Time            string
	Category        string
	Messenger       string
	MessengerHandle template.HTML
	Questions       template.HTML
}

func newEmailView(b *domain.Booking) emailView {
	categoryEmoji := "👪 "
	if b.Category == domain.CategoryApplicant {
		categoryEmoji = "🎓 "
	}

	view := emailView{
		FullName: template.HTML(b.FullName),
		Email:    b.Email,
		Phone:    b.Phone,
		Date:     b.Date.Format("02.01.2006"),
		Time:     b.Time.String(),
		Category: categoryEmoji + b.Category.Title(),
		// Вопросы уже экранированы, переводы строк превращаются в <br>
		Questions: template.HTML(strings.ReplaceAll(strings.TrimSpace(b.Questions), "\n", "<br>")),
	}
	if b.Messenger != domain.MessengerNone {
		view.Messenger = b.Messenger.Title()
		view.MessengerHandle = template.HTML(b.MessengerHandle)
	}

	return view
}

func (c *Client) clientEmail(b *domain.Booking) (*Email, error) {
	var buf bytes.Buffer
	if err := clientTmpl.Execute(&buf, newEmailView(b)); err != nil {
		return nil, fmt.Errorf("%w: render client email: %w", ErrInternal, err)
	}

	return &Email{
		From:    c.cfg.From,
		To:      []string{b.Email},
		Subject: "Подтверждение записи на консультацию",
		HTML:    buf.String(),
	}, nil
}

func (c *Client) adminEmail(b *domain.Booking) (*Email, error) {
	var buf bytes.Buffer
	view := newEmailView(b)
	if err := adminTmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("%w: render admin email: %w", ErrInternal, err)
	}

	return &Email{
		From:    c.cfg.From,
		To:      []string{c.cfg.AdminEmail},
		Subject: fmt.Sprintf("🔔 Новая запись: %s (%s %s)", b.FullName, view.Date, view.Time),
		HTML:    buf.String(),
	}, nil
}
