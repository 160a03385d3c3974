package codable

import (
	"strconv"
	"strings"
)

// codingPath records the keys and indices visited from the root.
type codingPath []string

func (p codingPath) String() string {
	var b strings.Builder
	for _, seg := range p {
		if b.Len() > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

func (p codingPath) key(k Key) codingPath {
	return append(p[:len(p):len(p)], k.Wire())
}

func (p codingPath) index(i int) codingPath {
	return append(p[:len(p):len(p)], "["+strconv.Itoa(i)+"]")
}
