package car

import "testing"

func TestCAR_NewKeyEntersT1(t *testing.T) {
	t.Parallel()

	p := New[string](4).New().(*car[string])
	p.OnInsert("a")

	if _, ok := p.t1.index["a"]; !ok {
		t.Fatal("new key must enter T1")
	}
}

func TestCAR_GhostHitAdaptsPAndReadmitsToT2(t *testing.T) {
	t.Parallel()

	p := New[string](4).New().(*car[string])
	p.OnInsert("a")
	p.OnRemove("a") // a -> B1

	if _, ok := p.b1Idx["a"]; !ok {
		t.Fatal("a must be in B1 after eviction from T1")
	}

	beforeP := p.p
	p.OnInsert("a")
	if p.p <= beforeP {
		t.Fatalf("p should increase on a B1 ghost hit, before=%d after=%d", beforeP, p.p)
	}
	if _, ok := p.t2.index["a"]; !ok {
		t.Fatal("a must be readmitted into T2 on a ghost hit")
	}
}

func TestCAR_SweepSkipsReferencedKeys(t *testing.T) {
	t.Parallel()

	p := New[int](4).New().(*car[int])
	p.OnInsert(1)
	p.OnInsert(2)
	p.OnAccess(1) // sets ref bit on 1

	victim, ok := p.SelectVictim()
	if !ok || victim != 2 {
		t.Fatalf("want victim 2 (unreferenced), got %v ok=%v", victim, ok)
	}
}

func TestCAR_Len(t *testing.T) {
	t.Parallel()

	p := New[int](4).New()
	p.OnInsert(1)
	p.OnInsert(2)
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
}

func TestCAR_OnRemoveFromT2GoesToB2(t *testing.T) {
	t.Parallel()

	p := New[int](4).New().(*car[int])
	p.OnInsert(1)
	p.OnInsert(2)
	p.t2.push(1) // simulate 1 having been promoted to T2
	p.t1.remove(1)
	p.OnRemove(1)

	if _, ok := p.b2Idx[1]; !ok {
		t.Fatal("1 must be in B2 after eviction from T2")
	}
}
