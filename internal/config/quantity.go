// Package config implements the char-quantity and letter-case-policy
// configuration types of §4.5, plus YAML loading for the demo binaries.
package config

import "math"

type quantityKind int

const (
	quantityUnset quantityKind = iota
	quantityZero
	quantityCount
	quantityCoefficient
)

// CharQuantity denotes either an absolute character count, a coefficient
// in [0.0, 1.0], the sentinel Zero, or Unset (no threshold configured).
type CharQuantity struct {
	kind  quantityKind
	count int
	coef  float64
}

// UnsetQuantity returns a CharQuantity carrying no threshold at all.
func UnsetQuantity() CharQuantity { return CharQuantity{kind: quantityUnset} }

// ZeroQuantity returns the sentinel "always zero" quantity.
func ZeroQuantity() CharQuantity { return CharQuantity{kind: quantityZero} }

// CountQuantity returns an absolute-count quantity. Negative counts are
// clamped to 0 (absolute counts are clamped to [0, ∞)).
func CountQuantity(n int) CharQuantity {
	if n < 0 {
		n = 0
	}
	return CharQuantity{kind: quantityCount, count: n}
}

// CoefficientQuantity returns a coefficient quantity. f is clamped to
// [0, 1].
func CoefficientQuantity(f float64) CharQuantity {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return CharQuantity{kind: quantityCoefficient, coef: f}
}

// Convenience constants from §4.5.
var (
	All  = CoefficientQuantity(1.0)
	High = CoefficientQuantity(0.75)
	Half = CoefficientQuantity(0.5)
	Low  = CoefficientQuantity(0.25)
	One  = CountQuantity(1)
	Two  = CountQuantity(2)
	Three = CountQuantity(3)
)

// IsSet reports whether this quantity carries an actual threshold.
func (q CharQuantity) IsSet() bool { return q.kind != quantityUnset }

// Count resolves the quantity against a reference length. Coefficients
// return round(length * coef) (exactly length when the coefficient is
// All). Absolute counts return the stored number, clamped to [0, length]
// only when clamped is true. Zero always returns 0. Unset also returns 0
// — callers must check IsSet before relying on a Count(Unset, ...) result
// as a real threshold.
func (q CharQuantity) Count(length int, clamped bool) int {
	switch q.kind {
	case quantityZero, quantityUnset:
		return 0
	case quantityCoefficient:
		n := int(math.Round(float64(length) * q.coef))
		if n < 0 {
			n = 0
		}
		if n > length {
			n = length
		}
		return n
	case quantityCount:
		n := q.count
		if clamped {
			if n < 0 {
				n = 0
			}
			if n > length {
				n = length
			}
		}
		return n
	default:
		return 0
	}
}
