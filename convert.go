package codable

import "fmt"

// Scalar conversions shared by all three container views. Each reports a
// TypeMismatch at path when n holds a different kind.

func mismatch(path codingPath, want string, n *Node) error {
	return newPathError(ErrTypeMismatch, path.String(), fmt.Sprintf("expected %s, found %s", want, n.Kind()))
}

func toString(path codingPath, n *Node) (string, error) {
	s, ok := n.AsString()
	if !ok {
		return "", mismatch(path, "string", n)
	}
	return s, nil
}

func toBool(path codingPath, n *Node) (bool, error) {
	b, ok := n.AsBool()
	if !ok {
		return false, mismatch(path, "bool", n)
	}
	return b, nil
}

func toInt(path codingPath, n *Node) (int64, error) {
	if n.Kind() != KindNumber {
		return 0, mismatch(path, "integer", n)
	}
	i, ok := n.AsInt()
	if !ok {
		return 0, newPathError(ErrTypeMismatch, path.String(), fmt.Sprintf("number %s does not fit an integer", n.text))
	}
	return i, nil
}

func toFloat(path codingPath, n *Node) (float64, error) {
	f, ok := n.AsFloat()
	if !ok {
		return 0, mismatch(path, "number", n)
	}
	return f, nil
}

func toStrings(path codingPath, n *Node) ([]string, error) {
	if n.Kind() != KindSequence {
		return nil, mismatch(path, "sequence", n)
	}
	out := make([]string, 0, n.Len())
	for i := 0; i < n.Len(); i++ {
		s, err := toString(path.index(i), n.At(i))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func fromStrings(values []string) *Node {
	seq := Sequence()
	for _, v := range values {
		seq.Append(String(v))
	}
	return seq
}

func floatNode(path codingPath, f float64) (*Node, error) {
	n := Float(f)
	if n == nil {
		return nil, newPathError(ErrValueInvalid, path.String(), fmt.Sprintf("%v has no JSON form", f))
	}
	return n, nil
}
