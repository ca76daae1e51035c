package text

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed is returned when a JSON value is not a valid text component.
var ErrMalformed = errors.New("text: malformed component")

// component is the JSON shape of a run: {"text":"..","color":"..","extra":[..]}.
type component struct {
	Text          *string           `json:"text"`
	Color         string            `json:"color,omitempty"`
	Bold          bool              `json:"bold,omitempty"`
	Italic        bool              `json:"italic,omitempty"`
	Underlined    bool              `json:"underlined,omitempty"`
	Strikethrough bool              `json:"strikethrough,omitempty"`
	Obfuscated    bool              `json:"obfuscated,omitempty"`
	Font          string            `json:"font,omitempty"`
	Insertion     string            `json:"insertion,omitempty"`
	ClickEvent    *clickComponent   `json:"clickEvent,omitempty"`
	HoverEvent    *hoverComponent   `json:"hoverEvent,omitempty"`
	Extra         []json.RawMessage `json:"extra,omitempty"`
}

type clickComponent struct {
	Action string `json:"action"`
	Value  string `json:"value"`
}

type hoverComponent struct {
	Action   string          `json:"action"`
	Contents json.RawMessage `json:"contents"`
}

type itemComponent struct {
	ID    string `json:"id"`
	Count int    `json:"count,omitempty"`
}

type entityComponent struct {
	Type string          `json:"type"`
	ID   string          `json:"id"`
	Name json.RawMessage `json:"name,omitempty"`
}

// MarshalJSON encodes t as a text component.
func (t *Text) MarshalJSON() ([]byte, error) {
	c, err := toComponent(t)
	if err != nil {
		return nil, err
	}
	return json.Marshal(c)
}

// UnmarshalJSON decodes a text component into t. A bare JSON string is read
// as a literal, and an array is read as a parent followed by its siblings.
func (t *Text) UnmarshalJSON(data []byte) error {
	decoded, err := decode(data)
	if err != nil {
		return err
	}
	*t = *decoded
	return nil
}

func toComponent(t *Text) (*component, error) {
	content := t.Content
	c := &component{
		Text:          &content,
		Color:         t.Style.Color,
		Bold:          t.Style.Bold,
		Italic:        t.Style.Italic,
		Underlined:    t.Style.Underlined,
		Strikethrough: t.Style.Strikethrough,
		Obfuscated:    t.Style.Obfuscated,
		Font:          t.Style.Font,
		Insertion:     t.Style.Insertion,
	}
	if e := t.Style.ClickEvent; e != nil {
		c.ClickEvent = &clickComponent{Action: string(e.Action), Value: e.Value}
	}
	if e := t.Style.HoverEvent; e != nil {
		hover, err := encodeHover(e)
		if err != nil {
			return nil, err
		}
		c.HoverEvent = hover
	}
	for _, s := range t.Siblings {
		if s == nil {
			continue
		}
		raw, err := s.MarshalJSON()
		if err != nil {
			return nil, err
		}
		c.Extra = append(c.Extra, raw)
	}
	return c, nil
}

func encodeHover(e *HoverEvent) (*hoverComponent, error) {
	var contents any
	switch e.Action {
	case HoverShowText:
		if e.Text == nil {
			return nil, fmt.Errorf("%w: show_text hover without text", ErrMalformed)
		}
		contents = e.Text
	case HoverShowItem:
		if e.Item == nil {
			return nil, fmt.Errorf("%w: show_item hover without item", ErrMalformed)
		}
		contents = itemComponent{ID: e.Item.ID, Count: e.Item.Count}
	case HoverShowEntity:
		if e.Entity == nil {
			return nil, fmt.Errorf("%w: show_entity hover without entity", ErrMalformed)
		}
		ec := entityComponent{Type: e.Entity.Type, ID: e.Entity.ID}
		if e.Entity.Name != nil {
			name, err := e.Entity.Name.MarshalJSON()
			if err != nil {
				return nil, err
			}
			ec.Name = name
		}
		contents = ec
	default:
		return nil, fmt.Errorf("%w: unknown hover action %q", ErrMalformed, e.Action)
	}
	raw, err := json.Marshal(contents)
	if err != nil {
		return nil, err
	}
	return &hoverComponent{Action: string(e.Action), Contents: raw}, nil
}

func decode(data []byte) (*Text, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty value", ErrMalformed)
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return Literal(s), nil
	case '[':
		var parts []json.RawMessage
		if err := json.Unmarshal(data, &parts); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if len(parts) == 0 {
			return nil, fmt.Errorf("%w: empty component array", ErrMalformed)
		}
		parent, err := decode(parts[0])
		if err != nil {
			return nil, err
		}
		for _, p := range parts[1:] {
			child, err := decode(p)
			if err != nil {
				return nil, err
			}
			parent.Siblings = append(parent.Siblings, child)
		}
		return parent, nil
	case '{':
		var c component
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return fromComponent(&c)
	}
	return nil, fmt.Errorf("%w: unexpected value %.32q", ErrMalformed, data)
}

func fromComponent(c *component) (*Text, error) {
	if c.Text == nil {
		return nil, fmt.Errorf("%w: missing text", ErrMalformed)
	}
	t := &Text{
		Content: *c.Text,
		Style: Style{
			Color:         c.Color,
			Bold:          c.Bold,
			Italic:        c.Italic,
			Underlined:    c.Underlined,
			Strikethrough: c.Strikethrough,
			Obfuscated:    c.Obfuscated,
			Font:          c.Font,
			Insertion:     c.Insertion,
		},
	}
	if c.ClickEvent != nil {
		action := ClickAction(c.ClickEvent.Action)
		if !action.Valid() {
			return nil, fmt.Errorf("%w: unknown click action %q", ErrMalformed, c.ClickEvent.Action)
		}
		t.Style.ClickEvent = &ClickEvent{Action: action, Value: c.ClickEvent.Value}
	}
	if c.HoverEvent != nil {
		hover, err := decodeHover(c.HoverEvent)
		if err != nil {
			return nil, err
		}
		t.Style.HoverEvent = hover
	}
	for _, raw := range c.Extra {
		child, err := decode(raw)
		if err != nil {
			return nil, err
		}
		t.Siblings = append(t.Siblings, child)
	}
	return t, nil
}

func decodeHover(h *hoverComponent) (*HoverEvent, error) {
	action := HoverAction(h.Action)
	if len(h.Contents) == 0 {
		return nil, fmt.Errorf("%w: hover %q without contents", ErrMalformed, h.Action)
	}
	switch action {
	case HoverShowText:
		t, err := decode(h.Contents)
		if err != nil {
			return nil, err
		}
		return &HoverEvent{Action: action, Text: t}, nil
	case HoverShowItem:
		var ic itemComponent
		if err := json.Unmarshal(h.Contents, &ic); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return &HoverEvent{Action: action, Item: &ItemStack{ID: ic.ID, Count: ic.Count}}, nil
	case HoverShowEntity:
		var ec entityComponent
		if err := json.Unmarshal(h.Contents, &ec); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		entity := &EntityInfo{Type: ec.Type, ID: ec.ID}
		if len(ec.Name) > 0 {
			name, err := decode(ec.Name)
			if err != nil {
				return nil, err
			}
			entity.Name = name
		}
		return &HoverEvent{Action: action, Entity: entity}, nil
	}
	return nil, fmt.Errorf("%w: unknown hover action %q", ErrMalformed, h.Action)
}
