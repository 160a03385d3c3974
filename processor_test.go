package codable

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// failingFormat rejects every operation.
type failingFormat struct{}

var errFormat = errors.New("format failure")

func (failingFormat) ContentType() string             { return "application/x-failing" }
func (failingFormat) Marshal(*Node) ([]byte, error)   { return nil, errFormat }
func (failingFormat) Unmarshal([]byte) (*Node, error) { return nil, errFormat }

func TestNewProcessor_Defaults(t *testing.T) {
	p := NewProcessor[point]()

	if p.ContentType() != "application/json" {
		t.Errorf("ContentType() = %q, want application/json", p.ContentType())
	}
	if p.typeName != "codable.point" {
		t.Errorf("typeName = %q, want codable.point", p.typeName)
	}
}

func TestProcessor_Decode(t *testing.T) {
	p := NewProcessor[point]()

	got, err := p.Decode(context.Background(), []byte(`{"y":2,"x":1}`))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if *got != (point{1, 2}) {
		t.Errorf("Decode() = %+v, want {1 2}", *got)
	}
}

func TestProcessor_DecodeErrors(t *testing.T) {
	p := NewProcessor[point]()

	_, err := p.Decode(context.Background(), []byte(`{"x":1`))
	if !errors.Is(err, ErrParse) {
		t.Errorf("Decode(malformed) error = %v, want ErrParse", err)
	}

	got, err := p.Decode(context.Background(), []byte(`{"x":1}`))
	if !errors.Is(err, ErrKeyMissing) {
		t.Errorf("Decode(missing y) error = %v, want ErrKeyMissing", err)
	}
	if got != nil {
		t.Errorf("Decode() = %+v, want nil on failure", got)
	}
	if !strings.Contains(err.Error(), "codable.point") {
		t.Errorf("error %q should name the type", err)
	}
}

func TestProcessor_Encode(t *testing.T) {
	compact := NewProcessor[point](WithCompact())

	out, err := compact.Encode(context.Background(), &point{3, 4})
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if string(out) != `{"x":3,"y":4}` {
		t.Errorf("Encode() = %s", out)
	}

	pretty, err := NewProcessor[point]().Encode(context.Background(), &point{3, 4})
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  \"x\": 3") {
		t.Errorf("default Encode() = %q, want indented output", pretty)
	}
}

func TestProcessor_FormatErrors(t *testing.T) {
	p := NewProcessor[point](WithFormat(failingFormat{}))

	if p.ContentType() != "application/x-failing" {
		t.Errorf("ContentType() = %q", p.ContentType())
	}
	if _, err := p.Decode(context.Background(), []byte(`{}`)); !errors.Is(err, errFormat) {
		t.Errorf("Decode() error = %v, want format failure", err)
	}
	if _, err := p.Encode(context.Background(), &point{}); !errors.Is(err, errFormat) {
		t.Errorf("Encode() error = %v, want format failure", err)
	}
}

func TestProcessor_Transcode(t *testing.T) {
	from := NewProcessor[route]()
	to := NewProcessor[route](WithCompact())

	out, err := from.Transcode(context.Background(), []byte(`{"pts":[{"y":2,"x":1}],"name":"r","extra":true}`), to)
	if err != nil {
		t.Fatalf("Transcode() error: %v", err)
	}
	if string(out) != `{"name":"r","pts":[{"x":1,"y":2}]}` {
		t.Errorf("Transcode() = %s", out)
	}

	if _, err := from.Transcode(context.Background(), []byte(`{"name":"r"}`), to); !errors.Is(err, ErrKeyMissing) {
		t.Errorf("Transcode() error = %v, want ErrKeyMissing", err)
	}
}

func TestProcessor_Concurrent(t *testing.T) {
	p := NewProcessor[point](WithCompact())
	done := make(chan error, 16)

	for i := 0; i < cap(done); i++ {
		go func(i int64) {
			out, err := p.Encode(context.Background(), &point{i, i})
			if err != nil {
				done <- err
				return
			}
			got, err := p.Decode(context.Background(), out)
			if err == nil && *got != (point{i, i}) {
				err = errors.New("round trip mismatch")
			}
			done <- err
		}(int64(i))
	}

	for i := 0; i < cap(done); i++ {
		if err := <-done; err != nil {
			t.Error(err)
		}
	}
}
