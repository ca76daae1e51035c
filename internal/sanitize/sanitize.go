// Package sanitize strips interactive metadata from styled text before it is
// written to a chat log.
package sanitize

import "github.com/NotRyken/AdvancedChatLog/internal/text"

// Policy reports whether interactive metadata should be stripped on a normal save.
type Policy interface {
	CleanSave() bool
}

// StaticPolicy is a fixed clean-save setting.
type StaticPolicy bool

func (p StaticPolicy) CleanSave() bool { return bool(p) }

// PolicyFunc adapts a function to Policy.
type PolicyFunc func() bool

func (f PolicyFunc) CleanSave() bool { return f() }

// Sanitizer applies a clean-save policy to styles and text trees.
type Sanitizer struct {
	policy Policy
}

// New returns a Sanitizer reading the given policy. A nil policy never cleans
// unless forced.
func New(policy Policy) *Sanitizer {
	if policy == nil {
		policy = StaticPolicy(false)
	}
	return &Sanitizer{policy: policy}
}

// Clean returns style with click, hover and insertion cleared when forced is
// set or the policy asks for it; otherwise style is returned unchanged.
func (s *Sanitizer) Clean(style text.Style, forced bool) text.Style {
	if !forced && !s.policy.CleanSave() {
		return style
	}
	return style.WithoutInteraction()
}

// Transfer builds a new root holding one literal run per top-level sibling of
// tree, carrying that sibling's plain string and cleaned style.
//
// Only the first level is copied: anything nested below a sibling is folded
// into its plain string and its styles are dropped.
func (s *Sanitizer) Transfer(tree *text.Text, forced bool) *text.Text {
	base := text.Empty()
	if tree == nil {
		return base
	}
	for _, sibling := range tree.Siblings {
		if sibling == nil {
			continue
		}
		base.Append(text.Literal(sibling.String()).FillStyle(s.Clean(sibling.Style, forced)))
	}
	return base
}
