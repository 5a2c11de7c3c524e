// Package calendar gera exportações de agenda (arquivo ICS e links de
// composição de evento Google/Outlook) a partir das datas de vencimento
// extraídas. Entradas sem data_iso são ignoradas.
package calendar

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fvictoor/analisador-contrato/types"
)

const DefaultTitle = "Vencimento de contrato"

// Links monta os links de criação de evento de dia inteiro para cada data
// válida (Google Calendar + Outlook live/office).
func Links(datas []types.DataVencimento, tituloBase, detalhes string) []types.CalendarLink {
	if tituloBase == "" {
		tituloBase = DefaultTitle
	}
	var links []types.CalendarLink
	for _, item := range datas {
		day, ok := parseISO(item.DataISO)
		if !ok {
			continue
		}
		title := eventTitle(tituloBase, item.Descricao)
		start := day.Format("20060102")
		end := day.AddDate(0, 0, 1).Format("20060102")
		startISO := day.Format("2006-01-02")
		endISO := day.AddDate(0, 0, 1).Format("2006-01-02")

		google := fmt.Sprintf(
			"https://calendar.google.com/calendar/render?action=TEMPLATE&text=%s&dates=%s/%s&details=%s",
			url.QueryEscape(title), start, end, url.QueryEscape(detalhes))

		outlookQuery := fmt.Sprintf(
			"allday=true&subject=%s&body=%s&startdt=%s&enddt=%s&ctz=%s",
			url.QueryEscape(title), url.QueryEscape(detalhes), startISO, endISO,
			url.QueryEscape("America/Sao_Paulo"))

		links = append(links, types.CalendarLink{
			Descricao: orDate(item.Descricao, *item.DataISO),
			DataISO:   *item.DataISO,
			Google:    google,
			Outlook:   "https://outlook.live.com/calendar/0/deeplink/compose?" + outlookQuery,
			Office:    "https://outlook.office.com/calendar/0/deeplink/compose?" + outlookQuery,
		})
	}
	return links
}

// ICS gera um calendário com um evento de dia inteiro por data válida.
func ICS(datas []types.DataVencimento, tituloBase, detalhes string) string {
	if tituloBase == "" {
		tituloBase = DefaultTitle
	}
	now := time.Now().UTC().Format("20060102T150405Z")
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//AnalisadorContrato//PT-BR//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
	}
	for _, item := range datas {
		day, ok := parseISO(item.DataISO)
		if !ok {
			continue
		}
		title := eventTitle(tituloBase, item.Descricao)
		lines = append(lines,
			"BEGIN:VEVENT",
			"UID:"+uuid.New().String(),
			"DTSTAMP:"+now,
			"SUMMARY:"+title,
			"DESCRIPTION:"+strings.ReplaceAll(detalhes, "\n", "\\n"),
			"DTSTART;VALUE=DATE:"+day.Format("20060102"),
			"DTEND;VALUE=DATE:"+day.AddDate(0, 0, 1).Format("20060102"),
			"END:VEVENT",
		)
	}
	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\r\n")
}

func parseISO(iso *string) (time.Time, bool) {
	if iso == nil || *iso == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", *iso)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func eventTitle(base, descricao string) string {
	if descricao == "" {
		return base
	}
	return base + " - " + descricao
}

func orDate(descricao, iso string) string {
	if descricao == "" {
		return iso
	}
	return descricao
}
