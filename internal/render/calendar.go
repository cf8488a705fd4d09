package render

import (
	"net/url"
	"strings"
	"time"

	"gameday-hub/internal/page"
)

const (
	calendarBase    = "https://calendar.google.com/calendar/render"
	calendarDetails = "Unofficial Gameday Hub"
	gameLength      = 3 * time.Hour
	calendarStamp   = "20060102T150405Z"

	calendarGroupClass = "calendar-actions"
)

// CalendarURL builds a Google Calendar template link for a game starting at
// kickoff.
func CalendarURL(title string, kickoff time.Time, venue string) string {
	start := kickoff.UTC()
	end := start.Add(gameLength)
	return calendarBase +
		"?action=TEMPLATE" +
		"&text=" + escapeComponent(title) +
		"&dates=" + start.Format(calendarStamp) + "/" + end.Format(calendarStamp) +
		"&location=" + escapeComponent(venue) +
		"&details=" + escapeComponent(calendarDetails)
}

// componentUnescaper maps url.QueryEscape output onto the encodeURIComponent
// character set: spaces as %20 and !'()* left literal.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escapeComponent percent-encodes s for a query value.
func escapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// ShowICS points the download links at href and makes them visible.
func ShowICS(out Output, href string) {
	out.SetAttr(page.DownloadICS, "href", href)
	out.SetAttr(page.DownloadICS, "style", "display:inline-flex")
}

// HideICS hides the download links.
func HideICS(out Output) {
	out.SetAttr(page.DownloadICS, "style", "display:none")
}

// GroupCalendarActions wraps each add-to-calendar link with its download link.
func GroupCalendarActions(out Output) {
	out.WrapTogether(page.NextCard, calendarGroupClass, page.AddCalendar, page.DownloadICS)
	out.WrapTogether(page.StripCards, calendarGroupClass, page.AddCalendar, page.DownloadICS)
}
