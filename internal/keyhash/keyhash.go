// Package keyhash hashes a sequence of comparable keys into a single
// uint64, for callers (predictor/history) that need a map key for "the
// last N accesses" but can't use a slice of K as one directly.
//
// The per-key byte encoding and the FNV-1a accumulation loop mirror a
// hashing helper that type-switches over the same set of key kinds for a
// different purpose (sharding); unlike that helper, an unsupported type
// here falls back to hashing its fmt.Sprint representation instead of
// panicking, since a predictor must never abort the cache operation it is
// riding along with.
package keyhash

import "fmt"

const (
	fnvOffset64 = 1469598103934665603
	fnvPrime64  = 1099511628211
)

// Sequence hashes ks in order into a single uint64. Two sequences that
// differ only in a hash collision are indistinguishable to a caller that
// stores suffixes only by this hash; predictor/history accepts that as a
// probabilistic, not correctness-critical, tradeoff.
func Sequence[K comparable](ks []K) uint64 {
	h := uint64(fnvOffset64)
	for _, k := range ks {
		h = mix(h, hashOne(k))
	}
	return h
}

func mix(h, v uint64) uint64 {
	h ^= v
	h *= fnvPrime64
	return h
}

func hashOne[K comparable](k K) uint64 {
	switch v := any(k).(type) {
	case string:
		return fnv64aFromBytes([]byte(v))
	case []byte:
		return fnv64aFromBytes(v)
	case int:
		return fnv64aFromUint64(uint64(v))
	case int8:
		return fnv64aFromUint64(uint64(uint8(v)))
	case int16:
		return fnv64aFromUint64(uint64(uint16(v)))
	case int32:
		return fnv64aFromUint64(uint64(uint32(v)))
	case int64:
		return fnv64aFromUint64(uint64(v))
	case uint:
		return fnv64aFromUint64(uint64(v))
	case uint8:
		return fnv64aFromUint64(uint64(v))
	case uint16:
		return fnv64aFromUint64(uint64(v))
	case uint32:
		return fnv64aFromUint64(uint64(v))
	case uint64:
		return fnv64aFromUint64(v)
	case uintptr:
		return fnv64aFromUint64(uint64(v))
	default:
		return fnv64aFromBytes([]byte(fmt.Sprint(v)))
	}
}

func fnv64aFromBytes(b []byte) uint64 {
	h := uint64(fnvOffset64)
	for _, c := range b {
		h ^= uint64(c)
		h *= fnvPrime64
	}
	return h
}

func fnv64aFromUint64(u uint64) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < 8; i++ {
		h ^= uint64(byte(u))
		h *= fnvPrime64
		u >>= 8
	}
	return h
}
