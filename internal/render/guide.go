package render

import (
	"strconv"

	"gameday-hub/internal/page"
)

// Guide puts the guide accordion in its initial closed state.
func Guide(out Output) {
	if !out.Has(page.GuideExtra) || !out.Has(page.GuideMore) {
		return
	}
	out.SetClass(page.GuideExtra, "is-collapsible", true)
	GuideOpen(out, false)
}

// GuideOpen opens or closes the accordion.
func GuideOpen(out Output, open bool) {
	out.SetHidden(page.GuideExtra, !open)
	out.SetClass(page.GuideExtra, "is-open", open)
	out.SetAttr(page.GuideMore, "aria-expanded", strconv.FormatBool(open))
	out.SetHTML(page.GuideMore, expanderLabel(open))
}

// Nav resets the mobile navigation to closed.
func Nav(out Output) {
	if !out.Has(page.SiteHeader) || !out.Has(page.NavToggle) {
		return
	}
	out.SetAttr(page.SiteHeader, "data-open", "false")
	out.SetAttr(page.NavToggle, "aria-expanded", "false")
}
