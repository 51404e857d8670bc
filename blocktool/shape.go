package blocktool

// Toolbox describes the entry the host shows for a block in its toolbox.
type Toolbox struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
}

// Capabilities are the fixed facts a shape declares to the host.
type Capabilities struct {
	ReadOnlySupported bool
	EnableLineBreaks  bool
	Toolbox           Toolbox
}

// Shape is the declarative descriptor a Tool is parameterized by. The
// built-in Warning, Success and Alert blocks are shape instances of the
// same adapter; custom shapes may be supplied to New directly.
type Shape struct {
	// Name is the block type key used in the serialized document.
	Name string
	// ClassName is the base CSS class of the block container.
	ClassName string
	// Icon is the toolbox icon markup.
	Icon string
	// Title is the untranslated toolbox label.
	Title string
	// HasTitle declares whether the block carries an editable title
	// region in addition to the message.
	HasTitle bool
	// TypeSelector declares whether the block carries a settings type
	// picker and a type field in its payload.
	TypeSelector bool
	// RespectsReadOnly declares whether Render consults the read-only
	// flag for its editable regions. The alert shape leaves it false,
	// matching the historical behavior of typed blocks.
	RespectsReadOnly bool
	// EnableLineBreaks declares whether Enter inserts a line break
	// instead of splitting the block.
	EnableLineBreaks bool
}

const (
	warningIcon = `<svg width="17" height="16" viewBox="0 0 320 294" xmlns="http://www.w3.org/2000/svg"><path d="M160.5 97c8.6 0 15.4 7.3 14.8 15.9l-4.4 62.7a10.4 10.4 0 0 1-20.8 0l-4.4-62.7c-.6-8.6 6.2-15.9 14.8-15.9zm0 121.2a14.3 14.3 0 1 1 0-28.6 14.3 14.3 0 0 1 0 28.6zM33.2 293.4h254.6c25.2 0 41-27.3 28.4-49.1L188.9 23.6c-12.6-21.8-44.2-21.8-56.8 0L4.8 244.3c-12.6 21.8 3.2 49.1 28.4 49.1z"/></svg>`
	successIcon = `<svg width="17" height="17" viewBox="0 0 512 512" xmlns="http://www.w3.org/2000/svg"><path d="M256 8a248 248 0 1 0 0 496 248 248 0 0 0 0-496zm141.4 193.4L228.6 370.2a24 24 0 0 1-34 0l-80-80a24 24 0 0 1 34-34l63 63 151.8-151.7a24 24 0 0 1 34 33.9z"/></svg>`
	alertIcon   = `<svg width="16" height="16" viewBox="0 0 320 294" xmlns="http://www.w3.org/2000/svg"><path d="M160.5 97c8.6 0 15.4 7.3 14.8 15.9l-4.4 62.7a10.4 10.4 0 0 1-20.8 0l-4.4-62.7c-.6-8.6 6.2-15.9 14.8-15.9zm0 121.2a14.3 14.3 0 1 1 0-28.6 14.3 14.3 0 0 1 0 28.6z"/></svg>`
)

var (
	warningShape = Shape{
		Name:             "warning",
		ClassName:        "cdx-warning",
		Icon:             warningIcon,
		Title:            "Warning",
		HasTitle:         true,
		RespectsReadOnly: true,
		EnableLineBreaks: true,
	}

	successShape = Shape{
		Name:             "success",
		ClassName:        "cdx-success",
		Icon:             successIcon,
		Title:            "Success",
		HasTitle:         true,
		RespectsReadOnly: true,
		EnableLineBreaks: true,
	}

	alertShape = Shape{
		Name:             "alert",
		ClassName:        "cdx-alert",
		Icon:             alertIcon,
		Title:            "Alert",
		TypeSelector:     true,
		EnableLineBreaks: true,
	}
)

// WarningShape returns the title+message warning callout descriptor.
func WarningShape() Shape { return warningShape }

// SuccessShape returns the title+message success callout descriptor.
func SuccessShape() Shape { return successShape }

// AlertShape returns the typed alert descriptor.
func AlertShape() Shape { return alertShape }

// ShapeFor resolves a built-in shape by its block type key.
func ShapeFor(blockType string) (Shape, bool) {
	switch blockType {
	case warningShape.Name:
		return warningShape, true
	case successShape.Name:
		return successShape, true
	case alertShape.Name:
		return alertShape, true
	default:
		return Shape{}, false
	}
}

// Capabilities returns the shape's fixed capability declarations with the
// toolbox label untranslated. Tool.Capabilities runs the label through the
// host translator.
func (s Shape) Capabilities() Capabilities {
	return Capabilities{
		ReadOnlySupported: true,
		EnableLineBreaks:  s.EnableLineBreaks,
		Toolbox: Toolbox{
			Icon:  s.Icon,
			Title: s.Title,
		},
	}
}

// Fields returns the payload field names the shape declares, in output
// order.
func (s Shape) Fields() []string {
	if s.TypeSelector {
		return []string{"type", "message"}
	}
	if s.HasTitle {
		return []string{"title", "message"}
	}
	return []string{"message"}
}

// Sanitize returns the shape's per-field sanitize policy. Every built-in
// field strips all tags.
func (s Shape) Sanitize() Policy {
	policy := make(Policy, 2)
	for _, field := range s.Fields() {
		policy[field] = Rule{}
	}
	return policy
}

// modifierClass returns the container class derived from a type key, e.g.
// "cdx-alert-danger".
func (s Shape) modifierClass(typeName string) string {
	if typeName == "" {
		return ""
	}
	return s.ClassName + "-" + typeName
}
