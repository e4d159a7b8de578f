package twoq

import "testing"

func TestTwoQ_FirstInsertGoesToA1in(t *testing.T) {
	t.Parallel()

	p := New[string](2, 4).New().(*twoq[string])
	p.OnInsert("a")

	if p.in.Len() != 1 {
		t.Fatalf("A1in must have 1 element, got %d", p.in.Len())
	}
	if _, ok := p.inIdx["a"]; !ok {
		t.Fatal("a must be present in A1in")
	}
}

func TestTwoQ_SelectVictimPrefersA1in(t *testing.T) {
	t.Parallel()

	p := New[string](2, 4).New().(*twoq[string])
	p.OnInsert("a")
	p.OnInsert("b")
	p.OnInsert("c") // A1in MRU-first: c, b, a

	victim, ok := p.SelectVictim()
	if !ok || victim != "a" {
		t.Fatalf("want victim a (LRU of A1in), got %v ok=%v", victim, ok)
	}
}

func TestTwoQ_SelectVictimPrefersAmWhenA1inBelowQuota(t *testing.T) {
	t.Parallel()

	p := New[string](4, 4).New().(*twoq[string])
	p.OnInsert("a")
	p.OnAccess("a") // promotes a into Am
	p.OnInsert("b") // A1in: [b], below its quota of 4

	victim, ok := p.SelectVictim()
	if !ok || victim != "a" {
		t.Fatalf("want victim a (LRU of Am, since A1in is below quota), got %v ok=%v", victim, ok)
	}
}

func TestTwoQ_OnRemoveFromA1inGoesToGhost(t *testing.T) {
	t.Parallel()

	p := New[string](2, 2).New().(*twoq[string])
	p.OnInsert("a")
	p.OnRemove("a")

	if _, ok := p.inIdx["a"]; ok {
		t.Fatal("a must be removed from A1in")
	}
	if _, ok := p.ghostIdx["a"]; !ok {
		t.Fatal("a must be in the ghost queue")
	}
}

func TestTwoQ_ReinsertFromGhostGoesToAm(t *testing.T) {
	t.Parallel()

	p := New[string](1, 2).New().(*twoq[string])
	p.OnInsert("a")
	p.OnRemove("a") // a -> ghost

	p.OnInsert("a") // second chance, straight to Am

	if _, ok := p.inIdx["a"]; ok {
		t.Fatal("a must not be in A1in after second chance")
	}
	if _, ok := p.amIdx["a"]; !ok {
		t.Fatal("a must be in Am after second chance")
	}
	if _, ok := p.ghostIdx["a"]; ok {
		t.Fatal("ghost entry must be consumed")
	}
}

func TestTwoQ_OnAccessPromotesA1inToAm(t *testing.T) {
	t.Parallel()

	p := New[string](2, 2).New().(*twoq[string])
	p.OnInsert("a")
	p.OnAccess("a")

	if _, ok := p.inIdx["a"]; ok {
		t.Fatal("a must be promoted out of A1in after a second access")
	}
	if _, ok := p.amIdx["a"]; !ok {
		t.Fatal("a must be in Am after a second access")
	}
}

func TestTwoQ_GhostQueueRespectsCapacity(t *testing.T) {
	t.Parallel()

	p := New[string](4, 2).New().(*twoq[string])
	p.OnInsert("a")
	p.OnInsert("b")
	p.OnInsert("c")
	p.OnRemove("a")
	p.OnRemove("b")
	p.OnRemove("c") // ghost cap is 2; "a" should be evicted from the ghost queue

	if _, ok := p.ghostIdx["a"]; ok {
		t.Fatal("ghost queue must not exceed its capacity")
	}
	if p.ghost.Len() != 2 {
		t.Fatalf("ghost.Len() = %d, want 2", p.ghost.Len())
	}
}

func TestTwoQ_LenCountsResidentOnly(t *testing.T) {
	t.Parallel()

	p := New[string](2, 2).New().(*twoq[string])
	p.OnInsert("a")
	p.OnAccess("a")
	p.OnInsert("b")
	p.OnRemove("b") // goes to ghost, not resident

	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}
}
