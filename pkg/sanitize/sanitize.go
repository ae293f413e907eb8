package sanitize

import (
	"html"
	"strings"
)

// escaper заменяет символы, значимые для HTML-разметки, на сущности
var escaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// Escape экранирует текст перед сохранением, чтобы он безопасно выводился в HTML
func Escape(s string) string {
	return escaper.Replace(s)
}

// Text обрезает пробелы по краям и экранирует разметку
func Text(s string) string {
	return Escape(strings.TrimSpace(s))
}

// Unescape возвращает исходный текст для вывода вне HTML (ICS, обычный текст)
func Unescape(s string) string {
	return html.UnescapeString(s)
}
