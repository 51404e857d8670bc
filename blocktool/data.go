package blocktool

// Data is the serializable payload of a block. The concrete type depends
// on the block's shape: SimpleData for title+message blocks, TypedData for
// typed blocks.
type Data interface {
	// Fields returns the payload as field-name -> value pairs, the view
	// sanitize policies operate on.
	Fields() map[string]string
}

// SimpleData is the payload of title+message blocks. Both keys are always
// present in serialized form, even when empty.
type SimpleData struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Fields implements Data.
func (d SimpleData) Fields() map[string]string {
	return map[string]string{
		"title":   d.Title,
		"message": d.Message,
	}
}

// TypedData is the payload of typed blocks.
type TypedData struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Fields implements Data.
func (d TypedData) Fields() map[string]string {
	return map[string]string{
		"type":    d.Type,
		"message": d.Message,
	}
}
