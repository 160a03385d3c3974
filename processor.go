package codable

import (
	"context"
	"fmt"
	"reflect"
	"time"
)

// Processor decodes and encodes one domain type through one wire format.
// It emits capitan signals around every operation.
//
// Processors hold no mutable state after construction and are safe for
// concurrent use.
type Processor[T any, PT CodablePtr[T]] struct {
	format   Format
	typeName string
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*processorConfig)

type processorConfig struct {
	format Format
}

// WithFormat selects the wire format. The default is JSON().
func WithFormat(f Format) ProcessorOption {
	return func(c *processorConfig) {
		c.format = f
	}
}

// WithCompact selects compact JSON output.
func WithCompact() ProcessorOption {
	return WithFormat(CompactJSON())
}

// NewProcessor creates a Processor for T.
func NewProcessor[T any, PT CodablePtr[T]](opts ...ProcessorOption) *Processor[T, PT] {
	cfg := processorConfig{format: JSON()}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Processor[T, PT]{
		format:   cfg.format,
		typeName: reflect.TypeFor[T]().String(),
	}

	emitProcessorCreated(context.Background(), p.format.ContentType(), p.typeName)
	return p
}

// ContentType returns the MIME type of the processor's format.
func (p *Processor[T, PT]) ContentType() string {
	return p.format.ContentType()
}

// Decode reads data in the processor's format into a new T.
func (p *Processor[T, PT]) Decode(ctx context.Context, data []byte) (*T, error) {
	start := time.Now()
	emitDecodeStart(ctx, p.format.ContentType(), p.typeName, len(data))

	var retErr error
	defer func() {
		emitDecodeComplete(ctx, p.format.ContentType(), p.typeName, time.Since(start), retErr)
	}()

	root, err := p.format.Unmarshal(data)
	if err != nil {
		retErr = fmt.Errorf("unmarshal: %w", err)
		return nil, retErr
	}

	obj, err := DecodeNode[T, PT](root)
	if err != nil {
		retErr = fmt.Errorf("decode %s: %w", p.typeName, err)
		return nil, retErr
	}
	return &obj, nil
}

// Encode writes obj in the processor's format.
func (p *Processor[T, PT]) Encode(ctx context.Context, obj *T) ([]byte, error) {
	start := time.Now()
	emitEncodeStart(ctx, p.format.ContentType(), p.typeName)

	var size int
	var retErr error
	defer func() {
		emitEncodeComplete(ctx, p.format.ContentType(), p.typeName, size, time.Since(start), retErr)
	}()

	root, err := EncodeNode(PT(obj))
	if err != nil {
		retErr = fmt.Errorf("encode %s: %w", p.typeName, err)
		return nil, retErr
	}

	data, err := p.format.Marshal(root)
	if err != nil {
		retErr = fmt.Errorf("marshal: %w", err)
		return nil, retErr
	}
	size = len(data)
	return data, nil
}

// Transcode decodes data in the processor's format and re-encodes the
// result in to, passing through the domain type so that its rules apply.
func (p *Processor[T, PT]) Transcode(ctx context.Context, data []byte, to *Processor[T, PT]) ([]byte, error) {
	obj, err := p.Decode(ctx, data)
	if err != nil {
		return nil, err
	}
	return to.Encode(ctx, obj)
}
