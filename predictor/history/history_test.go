package history

import "testing"

func TestHistory_LearnsTrigram(t *testing.T) {
	t.Parallel()

	p := New[string](1).New()
	seq := []string{"a", "b", "c", "x", "a", "b", "c", "x", "a", "b", "c"}
	for _, k := range seq {
		p.OnAccess(k)
	}
	// "a","b","c" appears three times; the first two were followed by "x",
	// so the trailing two-key suffix b,c predicts x.
	got := p.Predict()
	if len(got) != 1 || got[0] != "x" {
		t.Fatalf("Predict() = %v, want [x]", got)
	}
}

func TestHistory_FallsBackToShorterSuffix(t *testing.T) {
	t.Parallel()

	p := NewWithOrder[string](3, 1).New()
	// r,s,z establishes that the bigram "r","s" is always followed by
	// "z". m,q,r,s then walks the window to an unseen trigram ("q","r","s")
	// whose trailing bigram ("r","s") still predicts "z".
	for _, k := range []string{"r", "s", "z", "m", "q", "r", "s"} {
		p.OnAccess(k)
	}

	got := p.Predict()
	if len(got) != 1 || got[0] != "z" {
		t.Fatalf("Predict() = %v, want [z]", got)
	}
}

func TestHistory_DegreeReturnsMultipleSuccessors(t *testing.T) {
	t.Parallel()

	p := NewWithOrder[string](1, 2).New()
	seq := []string{"a", "b", "a", "c", "a", "c", "a", "b", "a", "d"}
	for _, k := range seq {
		p.OnAccess(k)
	}
	// After "a": b occurred twice, c occurred twice, d occurred once.
	// Re-prime with "a" to query its successor distribution.
	p.OnAccess("a")

	got := p.Predict()
	if len(got) != 2 {
		t.Fatalf("Predict() = %v, want 2 successors", got)
	}
	if got[0] != "b" || got[1] != "c" {
		t.Fatalf("Predict() = %v, want [b c] (tied count, b observed more recently)", got)
	}
}

func TestHistory_NoHistoryPredictsNothing(t *testing.T) {
	t.Parallel()

	p := New[string](1).New()
	if got := p.Predict(); got != nil {
		t.Fatalf("Predict() = %v, want nil", got)
	}
}
