package page

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

const template = `<!DOCTYPE html>
<html><head><title>Hub</title></head><body>
<header class="site-header"><button class="nav-toggle">Menu</button></header>
<div class="table-wrap"><table id="schedTable"><tbody id="schedRows"></tbody></table></div>
<button id="schedMore"></button>
<span id="updatedAt2"></span>
<div id="nextCard">
  <p id="scoreMsg"></p><span id="scoreDot"></span>
  <a id="addToCalendar" href="#">Add</a>
  <a id="downloadICS" href="#" style="display:none">ICS</a>
</div>
<div class="strip-bottom">
  <div class="card"><p class="scoreMsg"></p><a class="addToCalendar" href="#">Add</a><a id="downloadICS2" href="#">ICS</a></div>
</div>
<div id="countdown"><b id="cd-days"></b><b id="cd-hrs"></b><b id="cd-min"></b><b id="cd-sec"></b></div>
</body></html>`

func mustBind(t *testing.T) *Binding {
	t.Helper()
	doc, err := Parse(strings.NewReader(template))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return Bind(doc, nil)
}

func TestBindingSetTextHitsEveryMatch(t *testing.T) {
	b := mustBind(t)
	b.SetText(ScoreMsg, "Georgia @ Tennessee")

	out, err := b.Document().HTML()
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if got := strings.Count(out, "Georgia @ Tennessee"); got != 2 {
		t.Fatalf("expected both score boxes written, got %d in %s", got, out)
	}
	if !b.Document().Dirty() {
		t.Fatalf("expected dirty document after edit")
	}
}

func TestBindingSkipsUnchangedValues(t *testing.T) {
	b := mustBind(t)
	b.SetText(CDSeconds, "05")
	if err := b.Document().WriteFile(filepath.Join(t.TempDir(), "out.html")); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	b.SetText(CDSeconds, "05")
	b.SetAttr(ScoreDot, "data-state", "red")
	b.SetAttr(ScoreDot, "data-state", "red")
	if !b.Document().Dirty() {
		t.Fatalf("expected first attribute write to mark dirty")
	}
	b.Document().dirty = false

	b.SetAttr(ScoreDot, "data-state", "red")
	b.SetText(CDSeconds, "05")
	b.SetClass(SchedTable, "table-collapsed", false)
	b.SetHidden(PlacesEmpty, true)
	if b.Document().Dirty() {
		t.Fatalf("expected no-op writes to leave the document clean")
	}
}

func TestBindingAttributesClassesAndHidden(t *testing.T) {
	b := mustBind(t)
	b.SetClass(SchedTable, "table-collapsed", true)
	b.SetAttr(SchedWrap, "data-collapsed", "true")
	b.SetHidden(SchedMore, true)

	if got, ok := b.Attr(SchedWrap, "data-collapsed"); !ok || got != "true" {
		t.Fatalf("expected wrapper attribute, got %q", got)
	}
	if cls, _ := b.Attr(SchedTable, "class"); cls != "table-collapsed" {
		t.Fatalf("expected collapsed class, got %q", cls)
	}
	if _, ok := b.Attr(SchedMore, "hidden"); !ok {
		t.Fatalf("expected hidden attribute")
	}

	b.SetHidden(SchedMore, false)
	b.SetClass(SchedTable, "table-collapsed", false)
	if _, ok := b.Attr(SchedMore, "hidden"); ok {
		t.Fatalf("expected hidden attribute removed")
	}
	if cls, _ := b.Attr(SchedTable, "class"); cls != "" {
		t.Fatalf("expected class removed, got %q", cls)
	}
}

func TestBindingSetHTMLAndText(t *testing.T) {
	b := mustBind(t)
	b.SetHTML(SchedRows, `<tr><td>Sep 6</td></tr>`)
	if got := b.Text(SchedRows); got != "Sep 6" {
		t.Fatalf("unexpected rows text %q", got)
	}
	if !b.Has(SchedRows) || b.Has(PlacesList) {
		t.Fatalf("unexpected slot presence")
	}
}

func TestBindingMissingSlotIsNoop(t *testing.T) {
	b := mustBind(t)
	b.SetText(PlacesList, "x")
	b.SetText(Slot("unknown"), "x")
	if b.Document().Dirty() {
		t.Fatalf("expected no change for missing slots")
	}
}

func TestBindingOverrides(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<p class="odds"></p>`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	b := Bind(doc, map[Slot]string{OddsLine: ".odds"})
	b.SetText(OddsLine, "Odds data coming soon.")
	if b.Text(OddsLine) != "Odds data coming soon." {
		t.Fatalf("expected override selector to be used")
	}
}

func TestWrapTogether(t *testing.T) {
	b := mustBind(t)
	b.WrapTogether(NextCard, "calendar-actions", AddCalendar, DownloadICS)
	b.WrapTogether(StripCards, "calendar-actions", AddCalendar, DownloadICS)
	b.WrapTogether(NextCard, "calendar-actions", AddCalendar, DownloadICS)

	out, _ := b.Document().HTML()
	if got := strings.Count(out, `class="calendar-actions"`); got != 2 {
		t.Fatalf("expected two wrappers, got %d in %s", got, out)
	}
	if !strings.Contains(out, `<div class="calendar-actions"><a id="addToCalendar" href="#">Add</a><a id="downloadICS"`) {
		t.Fatalf("expected both links inside the top wrapper: %s", out)
	}
}

func TestWriteFileIsAtomicAndClearsDirty(t *testing.T) {
	b := mustBind(t)
	path := filepath.Join(t.TempDir(), "dist", "index.html")

	wrote, err := b.Document().FlushIfDirty(path)
	if err != nil || wrote {
		t.Fatalf("expected clean document to skip flush, wrote=%v err=%v", wrote, err)
	}

	b.SetText(OddsLine, "ignored")
	b.SetText(RankLine, "AP: NR • Coaches: NR")
	b.SetText(ScoreMsg, "hello")
	wrote, err = b.Document().FlushIfDirty(path)
	if err != nil || !wrote {
		t.Fatalf("expected flush, wrote=%v err=%v", wrote, err)
	}
	if b.Document().Dirty() {
		t.Fatalf("expected dirty cleared")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "<!DOCTYPE html>") || !strings.Contains(string(data), "hello") {
		t.Fatalf("unexpected output %s", data)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected temp file removed")
	}
}

func TestLoadMissingTemplate(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.html")); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestConcurrentEdits(t *testing.T) {
	b := mustBind(t)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b.SetText(CDSeconds, string(rune('a'+i)))
			b.SetAttr(ScoreDot, "data-state", "green")
			_, _ = b.Document().HTML()
		}(i)
	}
	wg.Wait()
	if len(b.Text(CDSeconds)) != 1 {
		t.Fatalf("expected a single-letter value, got %q", b.Text(CDSeconds))
	}
}

func TestDefaultSelectorsCoverEverySlot(t *testing.T) {
	for slot, sel := range DefaultSelectors {
		if sel == "" {
			t.Fatalf("slot %s has no selector", slot)
		}
	}
}
