package page

import (
	"github.com/PuerkitoBio/goquery"
)

// Binding resolves slots to selectors over one Document. Writes to a slot
// whose selector matches nothing are dropped.
type Binding struct {
	doc       *Document
	selectors map[Slot]string
}

// Bind binds doc with DefaultSelectors, replaced per slot by overrides.
func Bind(doc *Document, overrides map[Slot]string) *Binding {
	selectors := make(map[Slot]string, len(DefaultSelectors))
	for slot, sel := range DefaultSelectors {
		selectors[slot] = sel
	}
	for slot, sel := range overrides {
		selectors[slot] = sel
	}
	return &Binding{doc: doc, selectors: selectors}
}

// Document returns the bound document.
func (b *Binding) Document() *Document {
	return b.doc
}

func (b *Binding) find(doc *goquery.Document, slot Slot) *goquery.Selection {
	sel, ok := b.selectors[slot]
	if !ok || sel == "" {
		return doc.Selection.Slice(0, 0)
	}
	return doc.Find(sel)
}

func (b *Binding) each(slot Slot, fn func(s *goquery.Selection) bool) {
	b.doc.edit(func(doc *goquery.Document) bool {
		changed := false
		b.find(doc, slot).Each(func(_ int, s *goquery.Selection) {
			if fn(s) {
				changed = true
			}
		})
		return changed
	})
}

// Has reports whether the slot matches at least one element.
func (b *Binding) Has(slot Slot) bool {
	found := false
	b.doc.read(func(doc *goquery.Document) {
		found = b.find(doc, slot).Length() > 0
	})
	return found
}

// Text returns the text of the first element in the slot.
func (b *Binding) Text(slot Slot) string {
	var text string
	b.doc.read(func(doc *goquery.Document) {
		text = b.find(doc, slot).First().Text()
	})
	return text
}

// Attr returns an attribute of the first element in the slot.
func (b *Binding) Attr(slot Slot, name string) (string, bool) {
	var (
		val string
		ok  bool
	)
	b.doc.read(func(doc *goquery.Document) {
		val, ok = b.find(doc, slot).First().Attr(name)
	})
	return val, ok
}

// SetText replaces the text content of every element in the slot.
func (b *Binding) SetText(slot Slot, text string) {
	b.each(slot, func(s *goquery.Selection) bool {
		if s.Children().Length() == 0 && s.Text() == text {
			return false
		}
		s.SetText(text)
		return true
	})
}

// SetHTML replaces the inner HTML of every element in the slot.
func (b *Binding) SetHTML(slot Slot, markup string) {
	b.each(slot, func(s *goquery.Selection) bool {
		if current, err := s.Html(); err == nil && current == markup {
			return false
		}
		s.SetHtml(markup)
		return true
	})
}

// SetAttr sets an attribute on every element in the slot.
func (b *Binding) SetAttr(slot Slot, name, value string) {
	b.each(slot, func(s *goquery.Selection) bool {
		if current, ok := s.Attr(name); ok && current == value {
			return false
		}
		s.SetAttr(name, value)
		return true
	})
}

// RemoveAttr removes an attribute from every element in the slot.
func (b *Binding) RemoveAttr(slot Slot, name string) {
	b.each(slot, func(s *goquery.Selection) bool {
		if _, ok := s.Attr(name); !ok {
			return false
		}
		s.RemoveAttr(name)
		return true
	})
}

// SetHidden toggles the hidden attribute.
func (b *Binding) SetHidden(slot Slot, hidden bool) {
	if hidden {
		b.SetAttr(slot, "hidden", "")
		return
	}
	b.RemoveAttr(slot, "hidden")
}

// SetClass adds or removes a class.
func (b *Binding) SetClass(slot Slot, class string, on bool) {
	b.each(slot, func(s *goquery.Selection) bool {
		if s.HasClass(class) == on {
			return false
		}
		if on {
			s.AddClass(class)
		} else {
			s.RemoveClass(class)
		}
		return true
	})
}

// WrapTogether groups the first and second slot elements found inside each
// scope element into a new div with the given class. Scopes already grouped
// are left alone.
func (b *Binding) WrapTogether(scope Slot, class string, first, second Slot) {
	firstSel, secondSel := b.selectors[first], b.selectors[second]
	if firstSel == "" || secondSel == "" {
		return
	}
	b.each(scope, func(s *goquery.Selection) bool {
		a := s.Find(firstSel).First()
		c := s.Find(secondSel).First()
		if a.Length() == 0 || c.Length() == 0 || a.Parent().HasClass(class) {
			return false
		}
		a.BeforeHtml(`<div class="` + class + `"></div>`)
		wrapper := a.Prev()
		wrapper.AppendSelection(a)
		wrapper.AppendSelection(c)
		return true
	})
}
