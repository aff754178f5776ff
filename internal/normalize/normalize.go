// Package normalize provides optional NFC normalization for callers that
// want combining-character sequences collapsed to single scalars before
// they reach typocore.Analyze. §7 notes that a combining sequence is
// treated as independent positions unless the caller pre-normalizes —
// this package is that pre-normalization step.
package normalize

import "golang.org/x/text/unicode/norm"

// NFC returns s with combining character sequences composed into their
// precomposed form wherever Unicode allows it.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// IsNFC reports whether s is already fully composed, letting a caller skip
// the normalization pass on already-clean input.
func IsNFC(s string) bool {
	return norm.NFC.IsNormalString(s)
}
