package codable

// Format moves a tree to and from one wire encoding.
type Format interface {
	// ContentType returns the MIME type for this format (e.g., "application/json").
	ContentType() string

	// Marshal encodes n into bytes.
	Marshal(n *Node) ([]byte, error)

	// Unmarshal decodes data into a tree.
	Unmarshal(data []byte) (*Node, error)
}

// jsonFormat is the native format of the package.
type jsonFormat struct {
	indent bool
}

// JSON returns the JSON format with indented output.
func JSON() Format {
	return &jsonFormat{indent: true}
}

// CompactJSON returns the JSON format with compact output.
func CompactJSON() Format {
	return &jsonFormat{}
}

// ContentType returns the MIME type for JSON.
func (f *jsonFormat) ContentType() string {
	return "application/json"
}

// Marshal renders n as JSON text.
func (f *jsonFormat) Marshal(n *Node) ([]byte, error) {
	if f.indent {
		return MarshalIndent(n), nil
	}
	return Marshal(n), nil
}

// Unmarshal parses JSON text.
func (f *jsonFormat) Unmarshal(data []byte) (*Node, error) {
	return Parse(data)
}
