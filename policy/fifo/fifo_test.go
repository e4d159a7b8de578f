package fifo

import "testing"

// Scenario 3 from the spec: FIFO ignores access order; only insertion order
// decides the victim.
func TestFIFO_Scenario3_AccessDoesNotAffectOrder(t *testing.T) {
	t.Parallel()

	p := New[int]().New()
	p.OnInsert(1)
	p.OnInsert(2)
	p.OnInsert(3)
	p.OnAccess(1) // must not move 1 to the back

	victim, ok := p.SelectVictim()
	if !ok || victim != 1 {
		t.Fatalf("want victim 1 (oldest insert), got %v ok=%v", victim, ok)
	}
}

func TestFIFO_SelectVictimDoesNotMutate(t *testing.T) {
	t.Parallel()

	p := New[string]().New()
	p.OnInsert("a")
	p.OnInsert("b")

	v1, _ := p.SelectVictim()
	v2, _ := p.SelectVictim()
	if v1 != v2 {
		t.Fatalf("SelectVictim must be idempotent, got %v then %v", v1, v2)
	}
}

func TestFIFO_OnRemoveFromMiddle(t *testing.T) {
	t.Parallel()

	p := New[int]().New()
	p.OnInsert(1)
	p.OnInsert(2)
	p.OnInsert(3)
	p.OnRemove(2)

	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	victim, ok := p.SelectVictim()
	if !ok || victim != 1 {
		t.Fatalf("want victim 1, got %v ok=%v", victim, ok)
	}
}
