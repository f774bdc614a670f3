package entities

import (
	"testing"

	"github.com/lixenwraith/blocky-snake/core"
	"github.com/lixenwraith/blocky-snake/engine"
	"golang.org/x/exp/rand"
)

func TestCherrySpawnsWhenAbsent(t *testing.T) {
	w := engine.NewWorld(core.Bounds{Height: 4, Width: 6})
	cherry := NewCherry(rand.New(rand.NewSource(7)))

	if _, ok := cherry.Position(); ok {
		t.Fatal("new cherry should have no position")
	}

	cherry.Update(w)

	if w.Cherry == nil {
		t.Fatal("world cherry not published")
	}
	if !w.Window.Contains(*w.Cherry) {
		t.Errorf("cherry %v outside interior", *w.Cherry)
	}
	local, ok := cherry.Position()
	if !ok || local != *w.Cherry {
		t.Errorf("local copy %v (ok=%v) differs from world %v", local, ok, *w.Cherry)
	}
}

func TestCherryKeepsExistingPosition(t *testing.T) {
	w := engine.NewWorld(core.Bounds{Height: 10, Width: 20})
	existing := core.Point{Row: 3, Col: 9}
	w.SetCherry(existing)
	cherry := NewCherry(rand.New(rand.NewSource(7)))

	for i := 0; i < 50; i++ {
		cherry.Update(w)
		if !w.CherryAt(existing) {
			t.Fatalf("update %d moved cherry to %v", i, *w.Cherry)
		}
	}
	if local, _ := cherry.Position(); local != existing {
		t.Errorf("local copy = %v, want %v", local, existing)
	}
}

func TestCherryRegeneratesInsideBounds(t *testing.T) {
	w := engine.NewWorld(core.Bounds{Height: 2, Width: 3, OriginX: 5, OriginY: 5})
	cherry := NewCherry(rand.New(rand.NewSource(99)))

	for i := 0; i < 500; i++ {
		w.ClearCherry()
		cherry.Update(w)
		if w.Cherry == nil || !w.Window.Contains(*w.Cherry) {
			t.Fatalf("iteration %d: cherry %v not inside interior", i, w.Cherry)
		}
	}
}

func TestCherrySeedIsDeterministic(t *testing.T) {
	a := NewCherry(rand.New(rand.NewSource(1234)))
	b := NewCherry(rand.New(rand.NewSource(1234)))
	wa := engine.NewWorld(core.Bounds{Height: 10, Width: 20})
	wb := engine.NewWorld(core.Bounds{Height: 10, Width: 20})

	for i := 0; i < 20; i++ {
		wa.ClearCherry()
		wb.ClearCherry()
		a.Update(wa)
		b.Update(wb)
		if *wa.Cherry != *wb.Cherry {
			t.Fatalf("iteration %d: %v != %v", i, *wa.Cherry, *wb.Cherry)
		}
	}
}
