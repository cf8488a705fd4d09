package render

import (
	"strings"

	"golang.org/x/net/html"

	"gameday-hub/internal/domain"
	"gameday-hub/internal/page"
)

// Places lists points of interest, or reveals the empty notice.
func Places(out Output, places []domain.Place) {
	if !out.Has(page.PlacesList) {
		return
	}
	if len(places) == 0 {
		out.SetHidden(page.PlacesEmpty, false)
		return
	}
	out.SetHidden(page.PlacesEmpty, true)

	var b strings.Builder
	for _, p := range places {
		b.WriteString(`<li><i class="fa-solid fa-location-dot"></i><span><strong>`)
		b.WriteString(html.EscapeString(p.Name.Value))
		b.WriteString("</strong> — ")
		b.WriteString(html.EscapeString(p.Note()))
		b.WriteString("</span></li>")
	}
	out.SetHTML(page.PlacesList, b.String())
}
