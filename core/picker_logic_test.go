package core

import "testing"

func TestPickerFiltersAndRanks(t *testing.T) {
	p := NewPicker("tasks", []PickerItem{
		{ID: "1", Label: "Classify this sentence"},
		{ID: "2", Label: "Rate this summary"},
		{ID: "3", Label: "Tag the image"},
	})
	p.SetQuery("rate")
	items := p.Items()
	if len(items) != 1 || items[0].ID != "2" {
		t.Fatalf("expected rate task only, got %+v", items)
	}
	p.SetQuery("zzz")
	if len(p.Items()) != 0 {
		t.Fatalf("expected no matches for zzz")
	}
	p.SetQuery("")
	if len(p.Items()) != 3 {
		t.Fatalf("expected full list on empty query")
	}
}

func TestPickerPrefixBeatsScatteredMatch(t *testing.T) {
	p := NewPicker("tasks", []PickerItem{
		{ID: "scattered", Label: "Classify and tag"},
		{ID: "prefix", Label: "Cat pictures"},
	})
	p.SetQuery("cat")
	items := p.Items()
	if len(items) != 2 {
		t.Fatalf("expected both items to match, got %d", len(items))
	}
	if items[0].ID != "prefix" {
		t.Fatalf("expected contiguous prefix match first, got %s", items[0].ID)
	}
}

func TestPickerEditDistanceTiebreak(t *testing.T) {
	// Both labels start with "rate"; the shorter one is closer to the
	// query by edit distance and should rank first.
	p := NewPicker("tasks", []PickerItem{
		{ID: "long", Label: "rate the long summary paragraph"},
		{ID: "short", Label: "rate it"},
	})
	p.SetQuery("rate")
	items := p.Items()
	if len(items) != 2 {
		t.Fatalf("expected both items, got %d", len(items))
	}
	if items[0].ID != "short" {
		t.Fatalf("expected closest label first, got %s", items[0].ID)
	}
}

func TestPickerKeyHandling(t *testing.T) {
	p := NewPicker("tasks", []PickerItem{
		{ID: "1", Label: "alpha"},
		{ID: "2", Label: "beta"},
	})
	if res := p.HandleKey("down"); res.Action != PickerActionMoved {
		t.Fatalf("expected cursor move, got %v", res.Action)
	}
	res := p.HandleKey("enter")
	if res.Action != PickerActionSelected || res.Item.ID != "2" {
		t.Fatalf("expected selection of item 2, got %+v", res)
	}
	if res := p.HandleKey("esc"); res.Action != PickerActionCancelled {
		t.Fatalf("expected cancel, got %v", res.Action)
	}
}

func TestPickerTypedQueryNarrows(t *testing.T) {
	p := NewPicker("tasks", []PickerItem{
		{ID: "1", Label: "alpha"},
		{ID: "2", Label: "beta"},
	})
	p.HandleKey("b")
	p.HandleKey("e")
	if q := p.Query(); q != "be" {
		t.Fatalf("query = %q, want be", q)
	}
	items := p.Items()
	if len(items) != 1 || items[0].ID != "2" {
		t.Fatalf("expected beta only, got %+v", items)
	}
	p.HandleKey("backspace")
	if q := p.Query(); q != "b" {
		t.Fatalf("query after backspace = %q, want b", q)
	}
}
