package codable

// Key addresses one member of a mapping.
// Name is the field name on the domain side; Wire is the member name in the
// external document. Containers always read and write the wire name.
type Key interface {
	Name() string
	Wire() string
}

type staticKey struct {
	name string
	wire string
}

func (k staticKey) Name() string   { return k.name }
func (k staticKey) Wire() string   { return k.wire }
func (k staticKey) String() string { return k.wire }

// NewKey returns a key whose declared name differs from its wire name.
func NewKey(name, wire string) Key {
	return staticKey{name: name, wire: wire}
}

// K returns a key whose declared and wire names are the same.
func K(name string) Key {
	return staticKey{name: name, wire: name}
}

// dynamicKey is built from a runtime string rather than a declared schema.
type dynamicKey string

func (k dynamicKey) Name() string   { return string(k) }
func (k dynamicKey) Wire() string   { return string(k) }
func (k dynamicKey) String() string { return string(k) }

// DynamicKey returns a key for a member name discovered at decode time.
func DynamicKey(s string) Key {
	return dynamicKey(s)
}

// IsDynamic reports whether k was built by DynamicKey.
func IsDynamic(k Key) bool {
	_, ok := k.(dynamicKey)
	return ok
}

// KeySet is the ordered static schema of a type.
type KeySet struct {
	keys   []Key
	byName map[string]int
	byWire map[string]int
}

// NewKeySet returns a KeySet holding keys in order. A later key with the
// same declared name replaces the earlier one.
func NewKeySet(keys ...Key) *KeySet {
	ks := &KeySet{
		byName: make(map[string]int, len(keys)),
		byWire: make(map[string]int, len(keys)),
	}
	for _, k := range keys {
		if i, ok := ks.byName[k.Name()]; ok {
			delete(ks.byWire, ks.keys[i].Wire())
			ks.keys[i] = k
			ks.byWire[k.Wire()] = i
			continue
		}
		ks.byName[k.Name()] = len(ks.keys)
		ks.byWire[k.Wire()] = len(ks.keys)
		ks.keys = append(ks.keys, k)
	}
	return ks
}

// Key returns the key declared under name. It panics when name is not
// declared, since that is a programming error in the codec.
func (ks *KeySet) Key(name string) Key {
	i, ok := ks.byName[name]
	if !ok {
		panic("codable: key " + name + " is not declared")
	}
	return ks.keys[i]
}

// Lookup returns the key declared under name.
func (ks *KeySet) Lookup(name string) (Key, bool) {
	i, ok := ks.byName[name]
	if !ok {
		return nil, false
	}
	return ks.keys[i], true
}

// ForWire returns the key whose wire name is wire.
func (ks *KeySet) ForWire(wire string) (Key, bool) {
	i, ok := ks.byWire[wire]
	if !ok {
		return nil, false
	}
	return ks.keys[i], true
}

// Keys returns the declared keys in order.
func (ks *KeySet) Keys() []Key {
	out := make([]Key, len(ks.keys))
	copy(out, ks.keys)
	return out
}

// Len returns the number of declared keys.
func (ks *KeySet) Len() int { return len(ks.keys) }
