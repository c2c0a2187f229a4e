package variants

import (
	"reflect"
	"testing"
)

func sizeAndColor() *Catalog {
	return NewCatalog([]Option{
		{ID: "p", GroupLabel: "Tamanho", Name: "P", Price: price(80), Stock: 3},
		{ID: "m", GroupLabel: "Tamanho", Name: "M", Price: price(90), Stock: 0},
		{ID: "g", GroupLabel: "Tamanho", Name: "G", Price: price(95), Stock: 2},
		{ID: "d", GroupLabel: "Cor", Name: "Dourado", Price: price(10), Stock: 7},
	})
}

func TestToggle_SelectAndClear(t *testing.T) {
	s := NewSelection(sizeAndColor())

	if !s.Toggle(0, "P") {
		t.Fatal("expected toggle to select P")
	}
	if name, ok := s.Chosen(0); !ok || name != "P" {
		t.Fatalf("expected P chosen, got %q %v", name, ok)
	}

	if !s.Toggle(0, "P") {
		t.Fatal("expected second toggle to clear P")
	}
	if _, ok := s.Chosen(0); ok {
		t.Error("expected group 0 cleared")
	}
}

func TestToggle_SwitchesWithinGroup(t *testing.T) {
	s := NewSelection(sizeAndColor())
	s.Toggle(0, "P")
	s.Toggle(0, "G")

	if name, _ := s.Chosen(0); name != "G" {
		t.Errorf("expected G chosen, got %q", name)
	}
	if s.Len() != 1 {
		t.Errorf("expected one group chosen, got %d", s.Len())
	}
}

func TestToggle_RefusesZeroStock(t *testing.T) {
	s := NewSelection(sizeAndColor())
	s.Toggle(0, "P")

	if s.Toggle(0, "M") {
		t.Error("expected zero-stock option to be refused")
	}
	if name, _ := s.Chosen(0); name != "P" {
		t.Errorf("expected selection unchanged, got %q", name)
	}
}

func TestToggle_RefusesUnknown(t *testing.T) {
	s := NewSelection(sizeAndColor())

	if s.Toggle(0, "XG") {
		t.Error("expected unknown option to be refused")
	}
	if s.Toggle(9, "P") {
		t.Error("expected unknown group to be refused")
	}
	if s.Len() != 0 {
		t.Errorf("expected empty selection, got %d", s.Len())
	}
}

func TestIsComplete_RegardlessOfOrder(t *testing.T) {
	orders := [][]struct {
		group int
		name  string
	}{
		{{0, "P"}, {1, "Dourado"}},
		{{1, "Dourado"}, {0, "P"}},
	}

	for _, order := range orders {
		s := NewSelection(sizeAndColor())
		for i, step := range order {
			if s.IsComplete() {
				t.Fatalf("expected incomplete after %d choices", i)
			}
			s.Toggle(step.group, step.name)
		}
		if !s.IsComplete() {
			t.Error("expected complete once every group is chosen")
		}
		if len(s.Missing()) != 0 {
			t.Errorf("expected nothing missing, got %v", s.Missing())
		}
	}
}

func TestMissing_ListsLabelsInGroupOrder(t *testing.T) {
	s := NewSelection(sizeAndColor())
	if got := s.Missing(); !reflect.DeepEqual(got, []string{"Tamanho", "Cor"}) {
		t.Errorf("unexpected missing %v", got)
	}

	s.Toggle(1, "Dourado")
	if got := s.Missing(); !reflect.DeepEqual(got, []string{"Tamanho"}) {
		t.Errorf("unexpected missing %v", got)
	}
}

func TestIsComplete_FlatIsVacuous(t *testing.T) {
	s := NewSelection(NewCatalog([]Option{{ID: "a", Name: "Azul", Stock: 1}}))

	if !s.IsComplete() {
		t.Error("expected flat product to be complete without a choice")
	}
}

func TestToggleFlat(t *testing.T) {
	c := NewCatalog([]Option{
		{ID: "a", Name: "Azul", Stock: 0},
		{ID: "v", Name: "Verde", Stock: 4},
	})
	s := NewSelection(c)

	if s.ToggleFlat(0) {
		t.Error("expected zero-stock flat option to be refused")
	}
	if !s.ToggleFlat(1) {
		t.Fatal("expected Verde to be selected")
	}
	if i, ok := s.FlatIndex(); !ok || i != 1 {
		t.Errorf("expected index 1, got %d %v", i, ok)
	}
	if !s.ToggleFlat(1) {
		t.Fatal("expected Verde to be cleared")
	}
	if _, ok := s.FlatIndex(); ok {
		t.Error("expected no flat selection")
	}
	if s.ToggleFlat(7) {
		t.Error("expected out-of-range index to be refused")
	}
}

func TestRebind_DropsStaleEntries(t *testing.T) {
	s := NewSelection(sizeAndColor())
	s.Toggle(0, "P")
	s.Toggle(1, "Dourado")

	next := NewCatalog([]Option{
		{ID: "x", GroupLabel: "Tamanho", Name: "P", Stock: 1},
	})
	s.Rebind(next)

	if got := s.Snapshot(); !reflect.DeepEqual(got, map[int]string{0: "P"}) {
		t.Errorf("unexpected selection after rebind %v", got)
	}
	if s.Catalog() != next {
		t.Error("expected selection bound to the new catalog")
	}
}

func TestRebind_DropsFlatIndexOutOfRange(t *testing.T) {
	s := NewSelection(NewCatalog([]Option{
		{ID: "a", Name: "Azul", Stock: 1},
		{ID: "v", Name: "Verde", Stock: 1},
	}))
	s.ToggleFlat(1)

	s.Rebind(NewCatalog([]Option{{ID: "a", Name: "Azul", Stock: 1}}))

	if _, ok := s.FlatIndex(); ok {
		t.Error("expected stale flat index to be dropped")
	}
}

func TestReset(t *testing.T) {
	s := NewSelection(sizeAndColor())
	s.Toggle(0, "P")
	s.Reset()

	if s.Len() != 0 {
		t.Errorf("expected empty selection, got %d", s.Len())
	}
}
