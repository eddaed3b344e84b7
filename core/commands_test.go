package core

import "testing"

func TestSearchFiltersByScopeAndDisabled(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Alpha", Scopes: []string{"tab:home"}},
		{ID: "b", Name: "Beta", Scopes: []string{"tab:admin"}, Disabled: func(m *Model) (bool, string) { return true, "blocked" }},
	})
	m := NewModel(nil, NewKeyRegistry(nil), reg, nil, Identity{})
	resA := reg.Search("", "tab:home", &m)
	if len(resA) != 1 || resA[0].CommandID != "a" {
		t.Fatalf("expected only command a in tab:home, got %+v", resA)
	}
	resB := reg.Search("", "tab:admin", &m)
	if len(resB) != 1 || !resB[0].Disabled || resB[0].Reason != "blocked" {
		t.Fatalf("expected disabled command in tab:admin, got %+v", resB)
	}
}

func TestSearchOrdersEnabledFirst(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "z", Name: "Zeta", Scopes: []string{"*"}, Disabled: func(m *Model) (bool, string) { return true, "" }},
		{ID: "a", Name: "Alpha", Scopes: []string{"*"}},
		{ID: "m", Name: "Mid", Scopes: []string{"*"}},
	})
	m := NewModel(nil, NewKeyRegistry(nil), reg, nil, Identity{})
	res := reg.Search("", "tab:home", &m)
	if len(res) != 3 {
		t.Fatalf("expected 3 results, got %d", len(res))
	}
	if res[0].CommandID != "a" || res[1].CommandID != "m" || res[2].CommandID != "z" {
		t.Fatalf("unexpected order: %+v", res)
	}
}

func TestExecuteDisabledReturnsReason(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "x", Name: "X", Disabled: func(m *Model) (bool, string) { return true, "not now" }},
	})
	m := NewModel(nil, NewKeyRegistry(nil), reg, nil, Identity{})
	cmd := reg.Execute("x", &m)
	if cmd == nil {
		t.Fatalf("expected status command")
	}
	msg, ok := cmd().(StatusMsg)
	if !ok || msg.Text != "not now" {
		t.Fatalf("unexpected message: %#v", msg)
	}
}
