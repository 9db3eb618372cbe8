// Package ics renders schedule entries as an iCalendar feed so a day's
// plan can be imported into external calendar apps.
package ics

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout  = "20060102"
	stampLayout = "20060102T150405Z"

	prodID = "-//CreatorStudio//Schedule Export//EN"
)

// Event is one all-day calendar entry.
type Event struct {
	UID         string
	Summary     string
	Description string
	Category    string
	Date        time.Time
}

// BuildCalendar renders events as a VCALENDAR with one all-day VEVENT
// per entry. Events without a date are skipped; the export only carries
// entries that have a concrete day. Lines are CRLF-joined per RFC 5545.
func BuildCalendar(name string, events []Event, now time.Time) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
	}
	if name = strings.TrimSpace(name); name != "" {
		lines = append(lines, "X-WR-CALNAME:"+escapeText(name))
	}

	stamp := now.UTC().Format(stampLayout)
	for i, ev := range events {
		if ev.Date.IsZero() {
			continue
		}

		summary := strings.TrimSpace(ev.Summary)
		if summary == "" {
			summary = "Scheduled item"
		}
		uid := strings.TrimSpace(ev.UID)
		if uid == "" {
			uid = fmt.Sprintf("export-%d-%d@creator-studio", now.UnixNano(), i)
		}
		end := ev.Date.AddDate(0, 0, 1)

		lines = append(lines,
			"BEGIN:VEVENT",
			"UID:"+escapeText(uid),
			"DTSTAMP:"+stamp,
			"SUMMARY:"+escapeText(summary),
			"DTSTART;VALUE=DATE:"+ev.Date.Format(dateLayout),
			"DTEND;VALUE=DATE:"+end.Format(dateLayout),
		)
		if desc := strings.TrimSpace(ev.Description); desc != "" {
			lines = append(lines, "DESCRIPTION:"+escapeText(desc))
		}
		if cat := strings.TrimSpace(ev.Category); cat != "" {
			lines = append(lines, "CATEGORIES:"+escapeText(cat))
		}
		lines = append(lines, "END:VEVENT")
	}

	lines = append(lines, "END:VCALENDAR", "")
	return strings.Join(lines, "\r\n")
}

func escapeText(s string) string {
	repl := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
		"\r", "\\n",
	)
	return repl.Replace(s)
}
