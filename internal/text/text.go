// Package text is the styled rich-text model used for chat lines: a root run
// with an ordered list of sibling runs, each carrying a literal payload and a
// Style with optional click, hover and insertion metadata.
package text

import (
	"fmt"
	"strings"
)

// ClickAction names what happens when a run is clicked.
type ClickAction string

const (
	ClickOpenURL         ClickAction = "open_url"
	ClickOpenFile        ClickAction = "open_file"
	ClickRunCommand      ClickAction = "run_command"
	ClickSuggestCommand  ClickAction = "suggest_command"
	ClickChangePage      ClickAction = "change_page"
	ClickCopyToClipboard ClickAction = "copy_to_clipboard"
)

// Valid reports whether a is one of the known click actions.
func (a ClickAction) Valid() bool {
	switch a {
	case ClickOpenURL, ClickOpenFile, ClickRunCommand, ClickSuggestCommand, ClickChangePage, ClickCopyToClipboard:
		return true
	}
	return false
}

// HoverAction names what is shown when a run is hovered.
type HoverAction string

const (
	HoverShowText   HoverAction = "show_text"
	HoverShowItem   HoverAction = "show_item"
	HoverShowEntity HoverAction = "show_entity"
)

// Valid reports whether a is one of the known hover actions.
func (a HoverAction) Valid() bool {
	switch a {
	case HoverShowText, HoverShowItem, HoverShowEntity:
		return true
	}
	return false
}

// ClickEvent is the click-action metadata of a Style.
type ClickEvent struct {
	Action ClickAction
	Value  string
}

// ItemStack is the payload of a show_item hover.
type ItemStack struct {
	ID    string
	Count int
}

// EntityInfo is the payload of a show_entity hover.
type EntityInfo struct {
	Type string
	ID   string
	Name *Text
}

// HoverEvent is the hover-action metadata of a Style. Exactly one of Text,
// Item or Entity is set, matching Action.
type HoverEvent struct {
	Action HoverAction
	Text   *Text
	Item   *ItemStack
	Entity *EntityInfo
}

// Style is the formatting of a run. It is used as a value: the With* helpers
// return modified copies.
type Style struct {
	Color         string
	Bold          bool
	Italic        bool
	Underlined    bool
	Strikethrough bool
	Obfuscated    bool
	Font          string

	ClickEvent *ClickEvent
	HoverEvent *HoverEvent
	Insertion  string
}

// WithClickEvent returns a copy of s with the click event replaced.
func (s Style) WithClickEvent(e *ClickEvent) Style {
	s.ClickEvent = e
	return s
}

// WithHoverEvent returns a copy of s with the hover event replaced.
func (s Style) WithHoverEvent(e *HoverEvent) Style {
	s.HoverEvent = e
	return s
}

// WithInsertion returns a copy of s with the insertion text replaced.
func (s Style) WithInsertion(insertion string) Style {
	s.Insertion = insertion
	return s
}

// WithoutInteraction returns a copy of s with click, hover and insertion cleared.
func (s Style) WithoutInteraction() Style {
	return s.WithClickEvent(nil).WithHoverEvent(nil).WithInsertion("")
}

// IsInteractive reports whether any of click, hover or insertion is set.
func (s Style) IsInteractive() bool {
	return s.ClickEvent != nil || s.HoverEvent != nil || s.Insertion != ""
}

// Text is a node of the styled-text tree.
type Text struct {
	Content  string
	Style    Style
	Siblings []*Text
}

// Empty returns a root node with no payload and no siblings.
func Empty() *Text {
	return &Text{}
}

// Literal returns an unstyled run carrying s.
func Literal(s string) *Text {
	return &Text{Content: s}
}

// Styled returns a run carrying s with the given style.
func Styled(s string, style Style) *Text {
	return &Text{Content: s, Style: style}
}

// Append adds runs to the sibling list of t and returns t.
func (t *Text) Append(runs ...*Text) *Text {
	t.Siblings = append(t.Siblings, runs...)
	return t
}

// FillStyle sets the style of t and returns t.
func (t *Text) FillStyle(style Style) *Text {
	t.Style = style
	return t
}

// String returns the plain string of the tree: the node's own content followed
// by the plain string of every sibling, depth first.
func (t *Text) String() string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	t.writePlain(&b)
	return b.String()
}

func (t *Text) writePlain(b *strings.Builder) {
	b.WriteString(t.Content)
	for _, s := range t.Siblings {
		if s != nil {
			s.writePlain(b)
		}
	}
}

// Inspect returns a debug rendering of the tree including styles.
func (t *Text) Inspect() string {
	if t == nil {
		return "<nil>"
	}
	var b strings.Builder
	t.writeDebug(&b)
	return b.String()
}

func (t *Text) writeDebug(b *strings.Builder) {
	fmt.Fprintf(b, "literal{%s}[style=%s", t.Content, t.Style.debug())
	if len(t.Siblings) > 0 {
		b.WriteString(", siblings=[")
		for i, s := range t.Siblings {
			if i > 0 {
				b.WriteString(", ")
			}
			if s == nil {
				b.WriteString("<nil>")
				continue
			}
			s.writeDebug(b)
		}
		b.WriteString("]")
	}
	b.WriteString("]")
}

func (s Style) debug() string {
	var parts []string
	if s.Color != "" {
		parts = append(parts, "color="+s.Color)
	}
	for _, f := range []struct {
		name string
		on   bool
	}{
		{"bold", s.Bold}, {"italic", s.Italic}, {"underlined", s.Underlined},
		{"strikethrough", s.Strikethrough}, {"obfuscated", s.Obfuscated},
	} {
		if f.on {
			parts = append(parts, f.name)
		}
	}
	if s.Font != "" {
		parts = append(parts, "font="+s.Font)
	}
	if s.ClickEvent != nil {
		parts = append(parts, fmt.Sprintf("clickEvent=%s:%s", s.ClickEvent.Action, s.ClickEvent.Value))
	}
	if s.HoverEvent != nil {
		parts = append(parts, "hoverEvent="+string(s.HoverEvent.Action))
	}
	if s.Insertion != "" {
		parts = append(parts, "insertion="+s.Insertion)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
