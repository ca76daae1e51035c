// Package wire turns styled-text trees into portable JSON values and back.
//
// Two interchangeable formats exist: "tree" stores the component as a JSON
// object, "string" stores the component's JSON text inside a JSON string. Both
// check the tree against a Registry first, since some interactive metadata
// cannot be represented in every context.
package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/NotRyken/AdvancedChatLog/internal/text"
)

var (
	// ErrEncode is returned when a tree cannot be represented by a format.
	ErrEncode = errors.New("wire: cannot encode text")
	// ErrDecode is returned when a stored value is not a valid text tree.
	ErrDecode = errors.New("wire: cannot decode text")
	// ErrUnknownFormat is returned by New for an unrecognised format name.
	ErrUnknownFormat = errors.New("wire: unknown format")
)

const (
	FormatTree   = "tree"
	FormatString = "string"
)

// Format is a wire text format.
type Format interface {
	Name() string
	Serialize(t *text.Text) (json.RawMessage, error)
	Deserialize(v json.RawMessage) (*text.Text, error)
}

// New returns the format registered under name.
func New(name string, registry *Registry) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatTree, "":
		return &TreeFormat{Registry: registry}, nil
	case FormatString:
		return &StringFormat{Registry: registry}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

var resourceID = regexp.MustCompile(`^([a-z0-9_.-]+:)?[a-z0-9/._-]+$`)

// Registry is the context a tree is serialized in. The zero value (and nil)
// knows every item.
type Registry struct {
	items map[string]struct{}
}

// NewRegistry returns a registry that only knows the given item ids. An empty
// list yields a permissive registry.
func NewRegistry(items ...string) *Registry {
	r := &Registry{}
	for _, id := range items {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if r.items == nil {
			r.items = make(map[string]struct{})
		}
		r.items[normalizeID(id)] = struct{}{}
	}
	return r
}

// KnowsItem reports whether id can be referenced by a show_item hover.
func (r *Registry) KnowsItem(id string) bool {
	if r == nil || len(r.items) == 0 {
		return true
	}
	_, ok := r.items[normalizeID(id)]
	return ok
}

func normalizeID(id string) string {
	if !strings.Contains(id, ":") {
		return "minecraft:" + id
	}
	return id
}

// Check walks the whole tree and returns an ErrEncode for the first run that
// carries metadata the registry cannot represent.
func (r *Registry) Check(t *text.Text) error {
	if t == nil {
		return fmt.Errorf("%w: nil text", ErrEncode)
	}
	if err := r.checkStyle(t.Style); err != nil {
		return err
	}
	for _, s := range t.Siblings {
		if s == nil {
			continue
		}
		if err := r.Check(s); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) checkStyle(s text.Style) error {
	if s.Font != "" && !resourceID.MatchString(s.Font) {
		return fmt.Errorf("%w: invalid font identifier %q", ErrEncode, s.Font)
	}
	if e := s.ClickEvent; e != nil {
		if e.Action == text.ClickOpenFile {
			return fmt.Errorf("%w: click action %q is not allowed", ErrEncode, e.Action)
		}
		if !e.Action.Valid() {
			return fmt.Errorf("%w: unknown click action %q", ErrEncode, e.Action)
		}
	}
	if e := s.HoverEvent; e != nil {
		switch e.Action {
		case text.HoverShowText:
			if e.Text != nil {
				return r.Check(e.Text)
			}
		case text.HoverShowItem:
			if e.Item != nil && !r.KnowsItem(e.Item.ID) {
				return fmt.Errorf("%w: unknown item %q", ErrEncode, e.Item.ID)
			}
		case text.HoverShowEntity:
			if e.Entity != nil && e.Entity.Name != nil {
				return r.Check(e.Entity.Name)
			}
		}
	}
	return nil
}

func marshal(r *Registry, t *text.Text) ([]byte, error) {
	if err := r.Check(t); err != nil {
		return nil, err
	}
	data, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

func unmarshal(data []byte) (*text.Text, error) {
	var t text.Text
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &t, nil
}

// TreeFormat stores a text as a JSON component object.
type TreeFormat struct {
	Registry *Registry
}

func (f *TreeFormat) Name() string { return FormatTree }

func (f *TreeFormat) Serialize(t *text.Text) (json.RawMessage, error) {
	data, err := marshal(f.Registry, t)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

func (f *TreeFormat) Deserialize(v json.RawMessage) (*text.Text, error) {
	if len(v) == 0 || string(v) == "null" {
		return nil, fmt.Errorf("%w: missing value", ErrDecode)
	}
	return unmarshal(v)
}

// StringFormat stores a text as a JSON string holding the component's JSON text.
type StringFormat struct {
	Registry *Registry
}

func (f *StringFormat) Name() string { return FormatString }

func (f *StringFormat) Serialize(t *text.Text) (json.RawMessage, error) {
	data, err := marshal(f.Registry, t)
	if err != nil {
		return nil, err
	}
	quoted, err := json.Marshal(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return json.RawMessage(quoted), nil
}

func (f *StringFormat) Deserialize(v json.RawMessage) (*text.Text, error) {
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON string: %v", ErrDecode, err)
	}
	return unmarshal([]byte(s))
}
