package clock

import "testing"

func TestClock_SecondChance(t *testing.T) {
	t.Parallel()

	p := New[int]().New()
	p.OnInsert(1)
	p.OnInsert(2)
	p.OnInsert(3)
	p.OnAccess(1) // give 1 a second chance

	// Sweep starts at 1: refBit set, cleared and skipped; 2 has refBit
	// clear, becomes the victim.
	victim, ok := p.SelectVictim()
	if !ok || victim != 2 {
		t.Fatalf("want victim 2, got %v ok=%v", victim, ok)
	}
}

func TestClock_AllReferenced_WrapsAround(t *testing.T) {
	t.Parallel()

	p := New[int]().New()
	p.OnInsert(1)
	p.OnInsert(2)
	p.OnAccess(1)
	p.OnAccess(2)

	// Both referenced: sweep clears both bits on the first pass, then
	// the hand wraps and picks the first slot again.
	victim, ok := p.SelectVictim()
	if !ok || victim != 1 {
		t.Fatalf("want victim 1, got %v ok=%v", victim, ok)
	}
}

func TestClock_OnRemoveTombstonesSlot(t *testing.T) {
	t.Parallel()

	p := New[int]().New().(*clock[int])
	p.OnInsert(1)
	p.OnInsert(2)
	p.OnRemove(1)

	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}
	victim, ok := p.SelectVictim()
	if !ok || victim != 2 {
		t.Fatalf("want victim 2, got %v ok=%v", victim, ok)
	}
}

func TestClock_OnInsertReusesTombstone(t *testing.T) {
	t.Parallel()

	p := New[int]().New().(*clock[int])
	p.OnInsert(1)
	p.OnInsert(2)
	p.OnRemove(1)
	p.OnInsert(3)

	if len(p.ring) != 2 {
		t.Fatalf("ring should reuse the tombstoned slot, len=%d", len(p.ring))
	}
}

func TestClock_EmptySelectVictim(t *testing.T) {
	t.Parallel()

	p := New[int]().New()
	if _, ok := p.SelectVictim(); ok {
		t.Fatal("empty policy must not return a victim")
	}
}
