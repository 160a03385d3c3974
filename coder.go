package codable

// Decoder hands out read views over one node of a parsed tree.
// A Decoder and the containers it creates are only valid during the
// DecodeFrom call that received it.
type Decoder struct {
	node *Node
	path codingPath
}

// NewDecoder returns a Decoder rooted at n.
func NewDecoder(n *Node) *Decoder {
	if n == nil {
		n = Null()
	}
	return &Decoder{node: n}
}

// Node returns the node under decode.
func (d *Decoder) Node() *Node { return d.node }

// Path returns the coding path of the node, empty at the root.
func (d *Decoder) Path() string { return d.path.String() }

// KeyedContainer views the node as a mapping addressed through keys.
// Pass nil keys for an open schema whose members are discovered with AllKeys.
func (d *Decoder) KeyedContainer(keys *KeySet) (*KeyedContainer, error) {
	if d.node.Kind() != KindMapping {
		return nil, newPathError(ErrShapeMismatch, d.path.String(), "expected mapping, found "+d.node.Kind().String())
	}
	return &KeyedContainer{node: d.node, keys: keys, path: d.path}, nil
}

// IndexedContainer views the node as a sequence read from the front.
func (d *Decoder) IndexedContainer() (*IndexedContainer, error) {
	if d.node.Kind() != KindSequence {
		return nil, newPathError(ErrShapeMismatch, d.path.String(), "expected sequence, found "+d.node.Kind().String())
	}
	return &IndexedContainer{node: d.node, path: d.path}, nil
}

// SingleValueContainer views the node as one value. The view is read-only.
func (d *Decoder) SingleValueContainer() *SingleValueContainer {
	return &SingleValueContainer{node: d.node, path: d.path}
}

// encoderState tracks which view first claimed an Encoder's slot.
type encoderState uint8

const (
	stateEmpty encoderState = iota
	stateKeyed
	stateIndexed
	stateSingle
)

// Encoder hands out write views over one slot of a tree under construction.
type Encoder struct {
	node  *Node
	path  codingPath
	state encoderState
}

// NewEncoder returns an Encoder for a new root slot.
func NewEncoder() *Encoder {
	return &Encoder{node: Null()}
}

// newChildEncoder returns an Encoder writing into slot.
func newChildEncoder(slot *Node, path codingPath) *Encoder {
	return &Encoder{node: slot, path: path}
}

// Node returns the tree written so far.
func (e *Encoder) Node() *Node { return e.node }

// Path returns the coding path of the slot, empty at the root.
func (e *Encoder) Path() string { return e.path.String() }

// KeyedContainer turns the slot into a mapping. Calling it again returns
// another view of the same mapping so that composed types can write their
// fields into one flat key set.
func (e *Encoder) KeyedContainer(keys *KeySet) (*KeyedContainer, error) {
	switch e.state {
	case stateEmpty:
		e.node.assign(Mapping())
		e.state = stateKeyed
	case stateKeyed:
	default:
		return nil, newPathError(ErrAlreadyWritten, e.path.String(), "slot already holds a "+e.node.Kind().String())
	}
	return &KeyedContainer{node: e.node, keys: keys, path: e.path}, nil
}

// IndexedContainer turns the slot into a sequence appended at the end.
func (e *Encoder) IndexedContainer() (*IndexedContainer, error) {
	switch e.state {
	case stateEmpty:
		e.node.assign(Sequence())
		e.state = stateIndexed
	case stateIndexed:
	default:
		return nil, newPathError(ErrAlreadyWritten, e.path.String(), "slot already holds a "+e.node.Kind().String())
	}
	return &IndexedContainer{node: e.node, path: e.path, cursor: e.node.Len()}, nil
}

// SingleValueContainer returns a view that writes the slot exactly once.
func (e *Encoder) SingleValueContainer() *SingleValueContainer {
	return &SingleValueContainer{node: e.node, path: e.path, enc: e}
}
