package blocktool

import (
	"encoding/json"
	"fmt"
)

// Document is the host's serialized block list, the at-rest form block
// payloads appear in.
type Document struct {
	Time    int64   `json:"time,omitempty"`
	Blocks  []Block `json:"blocks"`
	Version string  `json:"version,omitempty"`
}

// Block is one entry of the serialized block list: the block type key plus
// its raw payload.
type Block struct {
	ID   string          `json:"id,omitempty"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ParseDocument parses a serialized block list.
func ParseDocument(input []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(input, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse block document: %w", err)
	}
	return doc, nil
}

// NewBlock wraps a payload into a serialized block entry.
func NewBlock(blockType string, data Data) (Block, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Block{}, fmt.Errorf("failed to marshal %s payload: %w", blockType, err)
	}
	return Block{Type: blockType, Data: raw}, nil
}

// ScrubDocument applies each built-in shape's sanitize policy to its
// blocks, returning a copy with scrubbed payloads. Blocks of unknown types
// pass through untouched and are reported as warnings.
func ScrubDocument(doc Document) (Document, []Warning) {
	var warnings []Warning
	scrubbed := doc
	scrubbed.Blocks = make([]Block, len(doc.Blocks))

	for i, block := range doc.Blocks {
		scrubbed.Blocks[i] = block

		shape, ok := ShapeFor(block.Type)
		if !ok {
			warnings = append(warnings, Warning{
				Type:    WarningUnknownBlock,
				Block:   block.Type,
				Message: fmt.Sprintf("no sanitize policy for block type %q", block.Type),
			})
			continue
		}

		tool, err := New(shape, Params{Data: block.Data})
		if err != nil {
			// Only config validation can fail and the zero config is
			// valid, so this is unreachable; degrade anyway.
			warnings = append(warnings, Warning{
				Type:    WarningMalformedData,
				Block:   block.Type,
				Message: err.Error(),
			})
			continue
		}

		fields := Scrub(tool.Sanitize(), tool.Data())
		raw, err := json.Marshal(payloadFromFields(shape, fields))
		if err != nil {
			warnings = append(warnings, Warning{
				Type:    WarningMalformedData,
				Block:   block.Type,
				Message: err.Error(),
			})
			continue
		}
		scrubbed.Blocks[i].Data = raw
	}

	return scrubbed, warnings
}

func payloadFromFields(shape Shape, fields map[string]string) Data {
	if shape.TypeSelector {
		return TypedData{Type: fields["type"], Message: fields["message"]}
	}
	return SimpleData{Title: fields["title"], Message: fields["message"]}
}
