package page

// Slot names an insertion point in the page.
type Slot string

const (
	SchedTable  Slot = "schedTable"
	SchedRows   Slot = "schedRows"
	SchedWrap   Slot = "schedWrap"
	SchedMore   Slot = "schedMore"
	UpdatedAt   Slot = "updatedAt"
	ScoreMsg    Slot = "scoreMsg"
	ScoreDot    Slot = "scoreDot"
	NextLine    Slot = "nextLine"
	NextVenue   Slot = "nextVenue"
	Countdown   Slot = "countdown"
	CDDays      Slot = "cdDays"
	CDHours     Slot = "cdHours"
	CDMinutes   Slot = "cdMinutes"
	CDSeconds   Slot = "cdSeconds"
	AddCalendar Slot = "addToCalendar"
	DownloadICS Slot = "downloadICS"
	NextCard    Slot = "nextCard"
	StripCards  Slot = "stripCards"
	RankLine    Slot = "rankLine"
	OddsLine    Slot = "oddsLine"
	PlacesList  Slot = "placesList"
	PlacesEmpty Slot = "placesEmpty"
	GuideExtra  Slot = "guideExtra"
	GuideMore   Slot = "guideMore"
	SiteHeader  Slot = "siteHeader"
	NavToggle   Slot = "navToggle"
)

// DefaultSelectors maps every slot to the CSS selector it is bound to.
var DefaultSelectors = map[Slot]string{
	SchedTable:  "#schedTable",
	SchedRows:   "#schedRows",
	SchedWrap:   ".table-wrap:has(#schedTable)",
	SchedMore:   "#schedMore",
	UpdatedAt:   "#updatedAt2",
	ScoreMsg:    "#scoreMsg, .scoreMsg",
	ScoreDot:    "#scoreDot, .scoreDot",
	NextLine:    "#nextLine, .nextLine",
	NextVenue:   "#nextVenue, .nextVenue",
	Countdown:   "#countdown",
	CDDays:      "#cd-days",
	CDHours:     "#cd-hrs",
	CDMinutes:   "#cd-min",
	CDSeconds:   "#cd-sec",
	AddCalendar: "#addToCalendar, .addToCalendar",
	DownloadICS: "#downloadICS, #downloadICS2",
	NextCard:    "#nextCard",
	StripCards:  ".strip-bottom .card",
	RankLine:    "#rankLine, .rankLine",
	OddsLine:    "#oddsLine",
	PlacesList:  "#placesList",
	PlacesEmpty: "#placesEmpty",
	GuideExtra:  "#guideExtra",
	GuideMore:   "#guideMore",
	SiteHeader:  ".site-header",
	NavToggle:   ".nav-toggle",
}
