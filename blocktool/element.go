package blocktool

// Field marks the structural role of an element inside a block's view.
// Save locates regions by field, never by class name; classes exist only
// for host styling.
type Field string

const (
	// FieldNone tags elements that carry no block data.
	FieldNone Field = ""
	// FieldTitle tags the editable title region.
	FieldTitle Field = "title"
	// FieldMessage tags the editable message region.
	FieldMessage Field = "message"
	// FieldBackdrop tags the colored background element of typed blocks.
	FieldBackdrop Field = "backdrop"
	// FieldTypeControl tags one selectable control in the type picker.
	FieldTypeControl Field = "typeControl"
)

// Element is one node of a block's view tree. It stands in for a DOM
// element: the host materializes it, the user edits HTML in editable
// regions, and Save reads it back.
type Element struct {
	Tag         string
	Classes     []string
	Field       Field
	Placeholder string
	Editable    bool
	Background  string
	HTML        string
	Attrs       map[string]string
	Children    []*Element
}

func newElement(tag string, classes ...string) *Element {
	return &Element{Tag: tag, Classes: classes}
}

// Append adds children to the element and returns it for chaining.
func (e *Element) Append(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// HasClass reports whether the element carries the given class.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass adds a class unless it is already present or empty.
func (e *Element) AddClass(class string) {
	if class == "" || e.HasClass(class) {
		return
	}
	e.Classes = append(e.Classes, class)
}

// RemoveClass removes every occurrence of a class.
func (e *Element) RemoveClass(class string) {
	kept := e.Classes[:0]
	for _, c := range e.Classes {
		if c != class {
			kept = append(kept, c)
		}
	}
	e.Classes = kept
}

// Attr returns the value of an attribute, or "" when unset.
func (e *Element) Attr(name string) string {
	if e.Attrs == nil {
		return ""
	}
	return e.Attrs[name]
}

// SetAttr sets an attribute, allocating the map on first use.
func (e *Element) SetAttr(name, value string) {
	if e.Attrs == nil {
		e.Attrs = make(map[string]string)
	}
	e.Attrs[name] = value
}

// FindField returns the first element in the subtree carrying the given
// field marker, depth-first. The receiver itself is considered.
func (e *Element) FindField(field Field) (*Element, bool) {
	if e == nil || field == FieldNone {
		return nil, false
	}
	if e.Field == field {
		return e, true
	}
	for _, child := range e.Children {
		if found, ok := child.FindField(field); ok {
			return found, true
		}
	}
	return nil, false
}

// FindFields returns every element in the subtree carrying the given field
// marker, in depth-first order.
func (e *Element) FindFields(field Field) []*Element {
	if e == nil || field == FieldNone {
		return nil
	}
	var found []*Element
	if e.Field == field {
		found = append(found, e)
	}
	for _, child := range e.Children {
		found = append(found, child.FindFields(field)...)
	}
	return found
}
