package codable

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codable events.
var (
	SignalProcessorCreated = capitan.NewSignal("codable.processor.created", "Processor instantiated")
	SignalDecodeStart      = capitan.NewSignal("codable.decode.start", "Decode operation beginning")
	SignalDecodeComplete   = capitan.NewSignal("codable.decode.complete", "Decode operation finished")
	SignalEncodeStart      = capitan.NewSignal("codable.encode.start", "Encode operation beginning")
	SignalEncodeComplete   = capitan.NewSignal("codable.encode.complete", "Encode operation finished")
	SignalVariantFallback  = capitan.NewSignal("codable.variant.fallback", "Variant value matched no candidate")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
	KeyVariant     = capitan.NewStringKey("variant")
	KeyPath        = capitan.NewStringKey("path")
)

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitDecodeStart emits an event when decode begins.
func emitDecodeStart(ctx context.Context, contentType, typeName string, size int) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
	)
}

// emitDecodeComplete emits an event when decode finishes.
func emitDecodeComplete(ctx context.Context, contentType, typeName string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}

// emitEncodeStart emits an event when encode begins.
func emitEncodeStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitEncodeComplete emits an event when encode finishes.
func emitEncodeComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitVariantFallback emits an event when a variant value is taken by the
// fallback instead of a candidate.
func emitVariantFallback(ctx context.Context, variant, path string) {
	capitan.Emit(ctx, SignalVariantFallback,
		KeyVariant.Field(variant),
		KeyPath.Field(path),
	)
}
