package response

import (
	"fmt"
	"strings"
	"time"

	"fieldpilot/internal/domain/entities"
)

type CalendarEventResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Type         string    `json:"type"`
	EngagementID string    `json:"engagement_id,omitempty"`
	OwnerID      string    `json:"owner_id,omitempty"`
}

func FromCalendarEvent(ev entities.CalendarEvent) CalendarEventResponse {
	return CalendarEventResponse{
		ID:           ev.ID,
		Title:        ev.Title,
		Start:        ev.Start,
		End:          ev.End,
		Type:         string(ev.Type),
		EngagementID: ev.EngagementID,
		OwnerID:      ev.OwnerID,
	}
}

func FromCalendarEvents(evs []entities.CalendarEvent) []CalendarEventResponse {
	out := make([]CalendarEventResponse, 0, len(evs))
	for _, ev := range evs {
		out = append(out, FromCalendarEvent(ev))
	}
	return out
}

const icsTimeLayout = "20060102T150405Z"

// ICSFromEvents renders the events as an iCalendar feed for subscription
// from external calendar apps. Text fields are escaped per RFC 5545.
func ICSFromEvents(evs []entities.CalendarEvent, now time.Time) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//fieldpilot//portal//EN\r\n")
	b.WriteString("CALSCALE:GREGORIAN\r\n")

	stamp := now.UTC().Format(icsTimeLayout)
	for _, ev := range evs {
		b.WriteString("BEGIN:VEVENT\r\n")
		fmt.Fprintf(&b, "UID:%s\r\n", escapeICSText(ev.ID))
		fmt.Fprintf(&b, "DTSTAMP:%s\r\n", stamp)
		fmt.Fprintf(&b, "DTSTART:%s\r\n", ev.Start.UTC().Format(icsTimeLayout))
		fmt.Fprintf(&b, "DTEND:%s\r\n", ev.End.UTC().Format(icsTimeLayout))
		fmt.Fprintf(&b, "SUMMARY:%s\r\n", escapeICSText(ev.Title))
		fmt.Fprintf(&b, "CATEGORIES:%s\r\n", escapeICSText(string(ev.Type)))
		b.WriteString("END:VEVENT\r\n")
	}

	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

func escapeICSText(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
		"\r", "",
	)
	return r.Replace(s)
}
