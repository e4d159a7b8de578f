package slru

import "testing"

func TestSLRU_NewKeyEntersProbation(t *testing.T) {
	t.Parallel()

	p := New[string](10).New().(*slru[string])
	p.OnInsert("a")

	el, ok := p.index["a"]
	if !ok || el.Value.(*entry[string]).seg != probation {
		t.Fatal("new key must start in probation")
	}
}

func TestSLRU_SecondAccessPromotesToProtected(t *testing.T) {
	t.Parallel()

	p := New[string](10).New().(*slru[string])
	p.OnInsert("a")
	p.OnAccess("a")

	el := p.index["a"]
	if el.Value.(*entry[string]).seg != protected {
		t.Fatal("a must be promoted to protected after a second access")
	}
}

func TestSLRU_ScanResistance(t *testing.T) {
	t.Parallel()

	// Small protected segment, big probation: promote "hot" then scan
	// many one-hit keys through probation. "hot" must survive.
	p := NewWithRatio[int](4, 25).New() // protectedCap=1, probationCap=3
	p.OnInsert(100)
	p.OnAccess(100) // promoted to protected

	for i := 0; i < 10; i++ {
		p.OnInsert(i)
		if p.Len() > 4 {
			v, _ := p.SelectVictim()
			p.OnRemove(v)
		}
	}

	if _, ok := p.(*slru[int]).index[100]; !ok {
		t.Fatal("protected hot key must survive a probation scan")
	}
}

func TestSLRU_SelectVictimPrefersProbation(t *testing.T) {
	t.Parallel()

	p := New[string](10).New().(*slru[string])
	p.OnInsert("a")
	p.OnAccess("a") // a -> protected
	p.OnInsert("b") // b stays in probation

	victim, ok := p.SelectVictim()
	if !ok || victim != "b" {
		t.Fatalf("want victim b (probation), got %v ok=%v", victim, ok)
	}
}

func TestSLRU_OnRemove(t *testing.T) {
	t.Parallel()

	p := New[string](10).New().(*slru[string])
	p.OnInsert("a")
	p.OnAccess("a")
	p.OnRemove("a")

	if p.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", p.Len())
	}
	if _, ok := p.index["a"]; ok {
		t.Fatal("a must be gone from the index")
	}
}
