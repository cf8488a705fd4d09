package render

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"gameday-hub/internal/domain"
	"gameday-hub/internal/domain/games"
	"gameday-hub/internal/page"
	"gameday-hub/internal/schedule"
)

// UpdatedStamp turns "2025-09-01T12:00:00Z" into "2025-09-01 12:00:00".
func UpdatedStamp(meta domain.Meta) string {
	updated := meta.Updated()
	if !updated.Present() {
		return schedule.Placeholder
	}
	s := strings.Replace(updated.Value, "T", " ", 1)
	return strings.Replace(s, "Z", "", 1)
}

// Schedule fills the schedule table and collapses it. Pages without the
// table are left alone.
func Schedule(out Output, env Env, meta domain.Meta, list []games.Game) {
	if !out.Has(page.SchedTable) {
		return
	}
	out.SetText(page.UpdatedAt, UpdatedStamp(meta))

	entries := schedule.Sort(list, env.Tracker)
	out.SetHTML(page.SchedRows, RowsHTML(schedule.Rows(entries, env.Tracker, env.Formatter)))
	ScheduleCollapsed(out, true)
}

// RowsHTML renders table rows. Cell text is escaped.
func RowsHTML(rows []schedule.Row) string {
	var b strings.Builder
	for _, r := range rows {
		b.WriteString("<tr")
		if r.Extra {
			b.WriteString(` data-extra="true"`)
		}
		b.WriteString(">")
		for _, cell := range []string{r.When, r.Opponent, string(r.Location), r.TV, r.Result} {
			b.WriteString("<td>")
			b.WriteString(html.EscapeString(cell))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	return b.String()
}

// ScheduleCollapsed applies the collapsed or expanded table state.
func ScheduleCollapsed(out Output, collapsed bool) {
	out.SetClass(page.SchedTable, "table-collapsed", collapsed)
	out.SetAttr(page.SchedWrap, "data-collapsed", strconv.FormatBool(collapsed))
	out.SetHTML(page.SchedMore, expanderLabel(!collapsed))
	out.SetAttr(page.SchedMore, "aria-expanded", strconv.FormatBool(!collapsed))
}

// ToggleSchedule flips t and applies the new state.
func ToggleSchedule(out Output, t *schedule.Toggle) {
	ScheduleCollapsed(out, t.Flip())
}
