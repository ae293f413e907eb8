package ics

import (
	"strings"
	"time"
)

// dateTimeLayout локальное "плавающее" время без часового пояса (RFC 5545 form #1)
const dateTimeLayout = "20060102T150405"

const crlf = "\r\n"

// Event событие VEVENT
type Event struct {
	UID         string
	Stamp       time.Time
	Start       time.Time
	End         time.Time
	Summary     string
	Description string
	Location    string
	Status      string // CONFIRMED, TENTATIVE, CANCELLED
}

// Calendar контейнер VCALENDAR
type Calendar struct {
	ProdID string
	Events []Event
}

// Render формирует текст календаря с переводами строк CRLF
func (c Calendar) Render() string {
	var b strings.Builder

	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:"+c.ProdID)
	writeLine(&b, "CALSCALE:GREGORIAN")
	writeLine(&b, "METHOD:PUBLISH")

	for _, e := range c.Events {
		writeLine(&b, "BEGIN:VEVENT")
		writeLine(&b, "UID:"+e.UID)
		writeLine(&b, "DTSTAMP:"+formatTime(e.Stamp))
		writeLine(&b, "DTSTART:"+formatTime(e.Start))
		writeLine(&b, "DTEND:"+formatTime(e.End))
		writeLine(&b, "SUMMARY:"+escapeText(e.Summary))
		if e.Description != "" {
			writeLine(&b, "DESCRIPTION:"+escapeText(e.Description))
		}
		if e.Location != "" {
			writeLine(&b, "LOCATION:"+escapeText(e.Location))
		}
		if e.Status != "" {
			writeLine(&b, "STATUS:"+e.Status)
		}
		writeLine(&b, "END:VEVENT")
	}

	writeLine(&b, "END:VCALENDAR")
	return b.String()
}

func formatTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// writeLine пишет строку контента с переносом длинных строк по 75 октетов
func writeLine(b *strings.Builder, line string) {
	const limit = 75
	for len(line) > limit {
		cut := limit
		// не разрываем многобайтовый символ UTF-8
		for cut > 0 && line[cut]&0xC0 == 0x80 {
			cut--
		}
		b.WriteString(line[:cut])
		b.WriteString(crlf)
		b.WriteString(" ")
		line = line[cut:]
	}
	b.WriteString(line)
	b.WriteString(crlf)
}
