package stride

import "testing"

func TestStride_LearnsConstantOffset(t *testing.T) {
	t.Parallel()

	p := New[int](nil).New()
	p.OnAccess(10)
	p.OnAccess(14)
	p.OnAccess(18)

	got := p.Predict()
	if len(got) != 1 || got[0] != 22 {
		t.Fatalf("Predict() = %v, want [22]", got)
	}
}

func TestStride_NegativeStride(t *testing.T) {
	t.Parallel()

	p := New[int](nil).New()
	p.OnAccess(100)
	p.OnAccess(90)

	got := p.Predict()
	if len(got) != 1 || got[0] != 80 {
		t.Fatalf("Predict() = %v, want [80]", got)
	}
}

func TestStride_ChangingStrideResetsConfidence(t *testing.T) {
	t.Parallel()

	p := New[int](nil).New()
	p.OnAccess(0)
	p.OnAccess(1) // delta +1, trusted (nothing to compare against yet)
	p.OnAccess(2) // delta +1, matches -> still confident

	if got := p.Predict(); len(got) != 1 || got[0] != 3 {
		t.Fatalf("Predict() before stride change = %v, want [3]", got)
	}

	p.OnAccess(7) // delta +5, mismatches the previous +1 -> confidence reset
	if got := p.Predict(); got != nil {
		t.Fatalf("Predict() right after a stride change = %v, want nil", got)
	}

	p.OnAccess(8) // delta +1 again, but still mismatches the prior +5
	if got := p.Predict(); got != nil {
		t.Fatalf("Predict() one access after a stride change = %v, want nil", got)
	}
}

func TestStride_SingleAccessPredictsNothing(t *testing.T) {
	t.Parallel()

	p := New[int](nil).New()
	p.OnAccess(1)
	if got := p.Predict(); got != nil {
		t.Fatalf("Predict() = %v, want nil", got)
	}
}
