package random

import (
	"testing"

	"github.com/fulgurance/fulgurance/policy"
)

func TestRandom_SelectVictimReturnsTrackedKey(t *testing.T) {
	t.Parallel()

	p := New[int]().New()
	p.OnInsert(1)
	p.OnInsert(2)
	p.OnInsert(3)

	tracked := map[int]bool{1: true, 2: true, 3: true}
	for i := 0; i < 20; i++ {
		victim, ok := p.SelectVictim()
		if !ok || !tracked[victim] {
			t.Fatalf("SelectVictim returned untracked key %v", victim)
		}
	}
}

func TestRandom_SameSeedIsReproducible(t *testing.T) {
	t.Parallel()

	build := func() policy.Policy[int] {
		p := NewSeeded[int](42).New()
		for _, k := range []int{1, 2, 3, 4, 5} {
			p.OnInsert(k)
		}
		return p
	}

	a, b := build(), build()
	for i := 0; i < 10; i++ {
		va, _ := a.SelectVictim()
		vb, _ := b.SelectVictim()
		if va != vb {
			t.Fatalf("same seed diverged: %v vs %v", va, vb)
		}
	}
}

func TestRandom_OnRemoveSwapRemoves(t *testing.T) {
	t.Parallel()

	p := New[int]().New().(*random[int])
	p.OnInsert(1)
	p.OnInsert(2)
	p.OnInsert(3)
	p.OnRemove(2)

	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	if _, ok := p.index[2]; ok {
		t.Fatal("2 must be gone from the index")
	}
	for k, i := range p.index {
		if p.keys[i] != k {
			t.Fatalf("index out of sync: keys[%d]=%v, want %v", i, p.keys[i], k)
		}
	}
}

func TestRandom_EmptySelectVictim(t *testing.T) {
	t.Parallel()

	p := New[int]().New()
	if _, ok := p.SelectVictim(); ok {
		t.Fatal("empty policy must not return a victim")
	}
}
