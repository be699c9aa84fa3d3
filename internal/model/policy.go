package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPolicy is returned when parsing an unsupported policy name.
var ErrUnknownPolicy = errors.New("poematic: unknown guess policy")

// Policy decides how a guess with a different word count than the hidden set is aligned.
type Policy int

const (
	// PolicyStrict rejects any guess whose word count differs from the hidden word count.
	PolicyStrict Policy = iota
	// PolicyPrefix compares missing guess words as empty and ignores extra ones.
	PolicyPrefix
)

var policyNames = [...]string{PolicyStrict: "strict", PolicyPrefix: "prefix"}

// String returns the policy name, or "Policy(n)" for invalid values.
func (p Policy) String() string {
	if p.IsValid() {
		return policyNames[p]
	}

	return fmt.Sprintf("Policy(%d)", int(p))
}

// IsValid reports whether p is a known policy.
func (p Policy) IsValid() bool {
	return p >= PolicyStrict && p <= PolicyPrefix
}

// Set implements pflag.Value.
func (p *Policy) Set(s string) error {
	parsed, err := ParsePolicy(s)
	if err != nil {
		return err
	}

	*p = parsed

	return nil
}

// Type implements pflag.Value.
func (p *Policy) Type() string {
	return "policy"
}

// ParsePolicy parses a policy name. The empty string yields PolicyStrict.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return PolicyStrict, nil
	case "prefix":
		return PolicyPrefix, nil
	default:
		return PolicyStrict, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}
