package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config bundles the thresholds and letter-case policy §4.2 and §4.3
// consult. Its zero value is the "empty configuration" the spec's test
// scenarios run against (§8): no thresholds set, Unset case policy, no
// enumeration cap.
type Config struct {
	RequiredCorrect  CharQuantity
	AcceptableWrong  CharQuantity
	CaseLetterPolicy CaseLetterPolicy

	// MaxRawSequences caps the number of raw sequences internal/align
	// enumerates before settling for the best pair found so far (§5,
	// §9's "implementations SHOULD cap R"). Zero means unlimited.
	MaxRawSequences int
}

// yamlConfig is the on-disk shape: plain strings/ints a human can write,
// translated into Config's opaque variant types by the parse* helpers
// below.
type yamlConfig struct {
	RequiredCorrect  string `yaml:"required_correct"`
	AcceptableWrong  string `yaml:"acceptable_wrong"`
	CaseLetterPolicy string `yaml:"case_policy"`
	MaxRawSequences  int    `yaml:"max_raw_sequences"`
}

// LoadYAML reads a Config from a YAML document such as:
//
//	required_correct: half
//	acceptable_wrong: "2"
//	case_policy: compare
//	max_raw_sequences: 20000
func LoadYAML(r io.Reader) (Config, error) {
	var y yamlConfig
	if err := yaml.NewDecoder(r).Decode(&y); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("config: decode yaml: %w", err)
	}

	cfg := Config{MaxRawSequences: y.MaxRawSequences}

	rc, err := parseQuantity(y.RequiredCorrect)
	if err != nil {
		return Config{}, fmt.Errorf("config: required_correct: %w", err)
	}
	cfg.RequiredCorrect = rc

	aw, err := parseQuantity(y.AcceptableWrong)
	if err != nil {
		return Config{}, fmt.Errorf("config: acceptable_wrong: %w", err)
	}
	cfg.AcceptableWrong = aw

	cp, err := parseCasePolicy(y.CaseLetterPolicy)
	if err != nil {
		return Config{}, fmt.Errorf("config: case_policy: %w", err)
	}
	cfg.CaseLetterPolicy = cp

	return cfg, nil
}

// LoadYAMLFile is LoadYAML for a path on disk.
func LoadYAMLFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadYAML(f)
}

func parseQuantity(s string) (CharQuantity, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "":
		return UnsetQuantity(), nil
	case "unset":
		return UnsetQuantity(), nil
	case "zero":
		return ZeroQuantity(), nil
	case "all":
		return All, nil
	case "high":
		return High, nil
	case "half":
		return Half, nil
	case "low":
		return Low, nil
	case "one":
		return One, nil
	case "two":
		return Two, nil
	case "three":
		return Three, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return CountQuantity(n), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return CoefficientQuantity(f), nil
	}
	return CharQuantity{}, fmt.Errorf("unrecognized quantity %q", s)
}

func parseCasePolicy(s string) (CaseLetterPolicy, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == "" || s == "unset":
		return UnsetCasePolicy(), nil
	case s == "compare":
		return CompareCasePolicy(), nil
	case strings.HasPrefix(s, "make:"):
		switch strings.TrimPrefix(s, "make:") {
		case "capitalized":
			return MakeCasePolicy(Capitalized), nil
		case "uppercase":
			return MakeCasePolicy(Uppercase), nil
		case "lowercase":
			return MakeCasePolicy(Lowercase), nil
		default:
			return CaseLetterPolicy{}, fmt.Errorf("unrecognized case version in %q", s)
		}
	default:
		return CaseLetterPolicy{}, fmt.Errorf("unrecognized case policy %q", s)
	}
}
