package config

// CaseVersion selects the normalized form CaseLetterPolicyMake applies
// before comparison.
type CaseVersion int

const (
	Capitalized CaseVersion = iota
	Uppercase
	Lowercase
)

type casePolicyKind int

const (
	caseUnset casePolicyKind = iota
	caseCompare
	caseMake
)

// CaseLetterPolicy is one of: Compare (mismatches flagged via
// CaseState), Make(version) (every character of the formed text,
// including Misspell payloads, is converted to version after the
// case-insensitive comparison; CaseState always CaseUnset), or Unset
// (inputs untouched; mismatching cases still produce Correct characters
// with CaseState CaseUnset).
type CaseLetterPolicy struct {
	kind    casePolicyKind
	version CaseVersion
}

// CompareCasePolicy returns the "compare" policy: case mismatches on an
// otherwise-correct position are flagged via CaseState.
func CompareCasePolicy() CaseLetterPolicy {
	return CaseLetterPolicy{kind: caseCompare}
}

// MakeCasePolicy returns the "make(version)" policy: the formed text is
// converted to version once the case-insensitive comparison is done.
func MakeCasePolicy(version CaseVersion) CaseLetterPolicy {
	return CaseLetterPolicy{kind: caseMake, version: version}
}

// UnsetCasePolicy returns the policy under which letter case never
// influences the annotation.
func UnsetCasePolicy() CaseLetterPolicy {
	return CaseLetterPolicy{kind: caseUnset}
}

// IsCompare reports whether this is the Compare policy.
func (p CaseLetterPolicy) IsCompare() bool { return p.kind == caseCompare }

// IsUnset reports whether this is the Unset policy.
func (p CaseLetterPolicy) IsUnset() bool { return p.kind == caseUnset }

// Make reports whether this is a Make(version) policy, and which version.
func (p CaseLetterPolicy) Make() (version CaseVersion, ok bool) {
	return p.version, p.kind == caseMake
}
