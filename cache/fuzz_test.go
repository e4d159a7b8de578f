//go:build go1.18

package cache

import (
	"strings"
	"testing"
)

// FuzzEngine_PutGetRemove guards against panics and checks the Engine's
// core invariants (a Put key reads back as put, a Remove makes it absent)
// under arbitrary string inputs.
func FuzzEngine_PutGetRemove(f *testing.F) {
	f.Add("", "")
	f.Add("a", "1")
	f.Add("b", "2")
	f.Add("αβγ", "δ")
	f.Add("emoji🙂", "🙂🙂")
	f.Add("long", strings.Repeat("x", 1024))

	f.Fuzz(func(t *testing.T, k, v string) {
		const limit = 1 << 12
		if len(k) > limit {
			k = k[:limit]
		}
		if len(v) > limit {
			v = v[:limit]
		}

		c, err := New[string, string](Options[string, string]{Capacity: 16})
		if err != nil {
			t.Fatal(err)
		}

		c.Put(k, v)
		got, ok := c.Get(k)
		if !ok || got != v {
			t.Fatalf("after Put/Get: want %q, got %q ok=%v", v, got, ok)
		}

		if !c.Remove(k) {
			t.Fatalf("Remove must return true")
		}
		if _, ok := c.Get(k); ok {
			t.Fatalf("key must be absent after Remove")
		}

		if c.Len() > c.Capacity() {
			t.Fatalf("Len() = %d exceeds Capacity() = %d", c.Len(), c.Capacity())
		}
	})
}
