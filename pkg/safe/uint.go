// Package safe provides numeric conversions with range validation.
package safe

import (
	"fmt"
	"math"
	"math/big"
)

// Uint64 converts signed integers to uint64, rejecting negatives.
func Uint64[T ~int | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Uint32 converts common integer types to uint32 with range validation.
func Uint32[T ~int | ~int64 | ~uint | ~uint64](v T) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// Uint40FromBig converts a big integer carrying uint40 semantics (contract
// end timestamps) to uint64, validating the 40-bit range.
func Uint40FromBig(v *big.Int) (uint64, error) {
	if v == nil {
		return 0, fmt.Errorf("nil value out of uint40 range")
	}
	if v.Sign() < 0 || v.BitLen() > 40 {
		return 0, fmt.Errorf("value %s out of uint40 range", v)
	}
	return v.Uint64(), nil
}

// UintFromBig converts a non-negative big integer to uint64.
func UintFromBig(v *big.Int) (uint64, error) {
	if v == nil {
		return 0, fmt.Errorf("nil value out of uint64 range")
	}
	if v.Sign() < 0 || !v.IsUint64() {
		return 0, fmt.Errorf("value %s out of uint64 range", v)
	}
	return v.Uint64(), nil
}
