package blocktool

import (
	"encoding/json"
	"fmt"
)

// Params bundles everything the host hands a tool at construction time.
type Params struct {
	// Data is the previously saved payload, possibly partial or empty.
	Data json.RawMessage
	// Config carries the recognized options; zero value works.
	Config Config
	// Host exposes style classes and translation. Nil falls back to
	// DefaultHost.
	Host Host
	// ReadOnly is the host's read-only flag.
	ReadOnly bool
}

// Tool is the block adapter: it materializes a view for its data,
// optionally renders a type picker, and reads the view back into a payload
// on save. One Tool instance serves one block for the block's lifetime.
type Tool struct {
	shape    Shape
	config   Config
	host     Host
	readOnly bool

	title    string
	message  string
	typeName string

	container *Element
	backdrop  *Element
	controls  []*Element
}

// New constructs a tool for the given shape. Malformed or partial payloads
// never fail: missing strings normalize to "" and an unrecognized type
// falls back to the configured default.
func New(shape Shape, p Params) (*Tool, error) {
	cfg := p.Config.applyDefaults().clone()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	host := p.Host
	if host == nil {
		host = DefaultHost{}
	}

	t := &Tool{
		shape:    shape,
		config:   cfg,
		host:     host,
		readOnly: p.ReadOnly,
	}
	t.loadData(p.Data)

	return t, nil
}

// NewWarning constructs a warning block tool.
func NewWarning(p Params) (*Tool, error) { return New(warningShape, p) }

// NewSuccess constructs a success block tool.
func NewSuccess(p Params) (*Tool, error) { return New(successShape, p) }

// NewAlert constructs a typed alert block tool.
func NewAlert(p Params) (*Tool, error) { return New(alertShape, p) }

// loadData normalizes the stored payload into adapter state. Unparseable
// JSON degrades to the empty payload.
func (t *Tool) loadData(raw json.RawMessage) {
	var stored struct {
		Title   string `json:"title"`
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	if len(raw) > 0 {
		// Best effort: a malformed payload leaves the zero values.
		_ = json.Unmarshal(raw, &stored)
	}

	t.title = stored.Title
	t.message = stored.Message

	if t.shape.TypeSelector {
		if _, ok := t.config.TypeColors[stored.Type]; ok {
			t.typeName = stored.Type
		} else {
			t.typeName = t.config.DefaultType
		}
	}
}

// Shape returns the descriptor the tool was constructed with.
func (t *Tool) Shape() Shape { return t.shape }

// Type returns the current type key of a typed block, or "" for shapes
// without a type selector.
func (t *Tool) Type() string { return t.typeName }

// Data returns the current payload without consulting any view.
func (t *Tool) Data() Data {
	if t.shape.TypeSelector {
		return TypedData{Type: t.typeName, Message: t.message}
	}
	return SimpleData{Title: t.title, Message: t.message}
}

// Capabilities returns the shape's static declarations with the toolbox
// label passed through the host translator.
func (t *Tool) Capabilities() Capabilities {
	caps := t.shape.Capabilities()
	caps.Toolbox.Title = t.host.Translate(caps.Toolbox.Title)
	return caps
}

// Sanitize returns the per-field sanitize policy the host applies to saved
// content.
func (t *Tool) Sanitize() Policy { return t.shape.Sanitize() }

// Render materializes the block's view tree from the current payload. The
// returned subtree is exactly what Save expects to query.
func (t *Tool) Render() *Element {
	container := newElement("div", t.host.BlockStyle(), t.shape.ClassName)

	if t.shape.TypeSelector {
		container.AddClass(t.shape.modifierClass(t.typeName))

		backdrop := newElement("div", t.shape.ClassName+"__backdrop")
		backdrop.Field = FieldBackdrop
		backdrop.Background = t.config.TypeColors[t.typeName]

		message := t.newEditable(FieldMessage, t.shape.ClassName+"__message", t.config.MessagePlaceholder)
		// Typed blocks never consult the read-only flag; the region
		// stays editable regardless. Kept as a documented discrepancy
		// with the titled shapes.
		message.Editable = true

		container.Append(backdrop, message)
		t.container = container
		t.backdrop = backdrop
		return container
	}

	if t.shape.HasTitle {
		title := t.newEditable(FieldTitle, t.shape.ClassName+"__title", t.config.TitlePlaceholder)
		container.Append(title)
	}

	message := t.newEditable(FieldMessage, t.shape.ClassName+"__message", t.config.MessagePlaceholder)
	container.Append(message)

	t.container = container
	return container
}

func (t *Tool) newEditable(field Field, class, placeholder string) *Element {
	el := newElement("div", t.host.InputStyle(), class)
	el.Field = field
	el.Placeholder = t.host.Translate(placeholder)
	el.Editable = !t.shape.RespectsReadOnly || !t.readOnly
	el.HTML = t.message
	if field == FieldTitle {
		el.HTML = t.title
	}
	return el
}

// Save reads the current field content out of a rendered view, refreshing
// the payload. Missing regions degrade to "" and are reported as warnings;
// Save never fails. For typed shapes the type is carried from adapter
// state, untouched by this call.
func (t *Tool) Save(root *Element) SaveResult {
	var warnings []Warning

	read := func(field Field) string {
		el, ok := root.FindField(field)
		if !ok {
			warnings = append(warnings, Warning{
				Type:    WarningMissingRegion,
				Block:   t.shape.Name,
				Field:   string(field),
				Message: fmt.Sprintf("view has no %s region, falling back to empty", field),
			})
			return ""
		}
		return el.HTML
	}

	t.message = read(FieldMessage)
	if t.shape.HasTitle {
		t.title = read(FieldTitle)
	}

	return SaveResult{Data: t.Data(), Warnings: warnings}
}

// Settings renders the type picker strip: one control per recognized type,
// the current type marked active. Shapes without a type selector return
// nil.
func (t *Tool) Settings() *Element {
	if !t.shape.TypeSelector {
		return nil
	}

	wrapper := newElement("div", t.shape.ClassName+"__settings")
	t.controls = t.controls[:0]

	for _, name := range t.config.typeNames() {
		control := newElement("div", t.host.SettingsButtonStyle(), t.shape.modifierClass(name))
		control.Field = FieldTypeControl
		control.SetAttr("data-type", name)
		control.HTML = typeControlGlyph
		if name == t.typeName {
			control.AddClass(t.host.ActiveSettingsButtonStyle())
		}
		wrapper.Append(control)
		t.controls = append(t.controls, control)
	}

	return wrapper
}

// typeControlGlyph is the fixed label every type picker control carries;
// the control's color, not its text, identifies the type.
const typeControlGlyph = "A"

// SelectType switches a typed block to the given type: container modifier
// class, backdrop color and the single active picker control all move
// together. Unknown names and selector-less shapes are ignored.
func (t *Tool) SelectType(name string) {
	if !t.shape.TypeSelector {
		return
	}
	color, ok := t.config.TypeColors[name]
	if !ok {
		return
	}

	previous := t.typeName
	t.typeName = name

	if t.container != nil {
		t.container.RemoveClass(t.shape.modifierClass(previous))
		t.container.AddClass(t.shape.modifierClass(name))
	}
	if t.backdrop != nil {
		t.backdrop.Background = color
	}
	active := t.host.ActiveSettingsButtonStyle()
	for _, control := range t.controls {
		if control.Attr("data-type") == name {
			control.AddClass(active)
		} else {
			control.RemoveClass(active)
		}
	}
}
