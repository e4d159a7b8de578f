// Package numeric provides best-effort arithmetic over comparable keys of
// unknown static type, for predictors (predictor/sequential,
// predictor/stride) that need a successor or a delta but are instantiated
// generically over any comparable K.
//
// The type-switch here mirrors the shape of a hashing helper that type
// switches over the same set of integer-like kinds for a different purpose:
// where that helper panics on an unsupported kind (hashing must always
// produce something), Successor and Delta return ok=false so the caller can
// degrade to a no-op predictor instead, per the spec's "for arbitrary keys,
// those predictors degrade to No-op" rule.
package numeric

// Successor returns k+1 and true if k is one of the common integer kinds.
// It returns the zero value and false for any other type, including
// floating point and string keys.
func Successor[K comparable](k K) (K, bool) {
	switch v := any(k).(type) {
	case int:
		return any(v + 1).(K), true
	case int8:
		return any(v + 1).(K), true
	case int16:
		return any(v + 1).(K), true
	case int32:
		return any(v + 1).(K), true
	case int64:
		return any(v + 1).(K), true
	case uint:
		return any(v + 1).(K), true
	case uint8:
		return any(v + 1).(K), true
	case uint16:
		return any(v + 1).(K), true
	case uint32:
		return any(v + 1).(K), true
	case uint64:
		return any(v + 1).(K), true
	case uintptr:
		return any(v + 1).(K), true
	default:
		var zero K
		return zero, false
	}
}

// Delta returns b-a as an int64 and true if both are the same common
// integer kind. It returns (0, false) for any other type or for a type
// mismatch between a and b.
func Delta[K comparable](a, b K) (int64, bool) {
	switch x := any(a).(type) {
	case int:
		y, ok := any(b).(int)
		return int64(y - x), ok
	case int8:
		y, ok := any(b).(int8)
		return int64(y) - int64(x), ok
	case int16:
		y, ok := any(b).(int16)
		return int64(y) - int64(x), ok
	case int32:
		y, ok := any(b).(int32)
		return int64(y) - int64(x), ok
	case int64:
		y, ok := any(b).(int64)
		return y - x, ok
	case uint:
		y, ok := any(b).(uint)
		return int64(y) - int64(x), ok
	case uint8:
		y, ok := any(b).(uint8)
		return int64(y) - int64(x), ok
	case uint16:
		y, ok := any(b).(uint16)
		return int64(y) - int64(x), ok
	case uint32:
		y, ok := any(b).(uint32)
		return int64(y) - int64(x), ok
	case uint64:
		y, ok := any(b).(uint64)
		return int64(y) - int64(x), ok
	case uintptr:
		y, ok := any(b).(uintptr)
		return int64(y) - int64(x), ok
	default:
		return 0, false
	}
}

// Offset returns k+delta and true under the same rules as Successor.
func Offset[K comparable](k K, delta int64) (K, bool) {
	switch v := any(k).(type) {
	case int:
		return any(v + int(delta)).(K), true
	case int8:
		return any(v + int8(delta)).(K), true
	case int16:
		return any(v + int16(delta)).(K), true
	case int32:
		return any(v + int32(delta)).(K), true
	case int64:
		return any(v + delta).(K), true
	case uint:
		return any(uint(int64(v) + delta)).(K), true
	case uint8:
		return any(uint8(int64(v) + delta)).(K), true
	case uint16:
		return any(uint16(int64(v) + delta)).(K), true
	case uint32:
		return any(uint32(int64(v) + delta)).(K), true
	case uint64:
		return any(uint64(int64(v) + delta)).(K), true
	case uintptr:
		return any(uintptr(int64(v) + delta)).(K), true
	default:
		var zero K
		return zero, false
	}
}
