package nskeyed

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for archiver events.
var (
	SignalArchiverCreated = capitan.NewSignal("nskeyed.archiver.created", "Archiver plan built for a record type")
	SignalEncodeStart     = capitan.NewSignal("nskeyed.encode.start", "Record encode beginning")
	SignalEncodeComplete  = capitan.NewSignal("nskeyed.encode.complete", "Record encode finished")
	SignalDecodeStart     = capitan.NewSignal("nskeyed.decode.start", "Record decode beginning")
	SignalDecodeComplete  = capitan.NewSignal("nskeyed.decode.complete", "Record decode finished")
)

// Keys for typed event data.
var (
	KeyTypeName   = capitan.NewStringKey("type_name")
	KeyFieldCount = capitan.NewIntKey("field_count")
	KeyDuration   = capitan.NewDurationKey("duration")
	KeyError      = capitan.NewErrorKey("error")
)

// emitArchiverCreated emits an event when an archiver plan is built.
func emitArchiverCreated(ctx context.Context, typeName string, fields int) {
	capitan.Emit(ctx, SignalArchiverCreated,
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(fields),
	)
}

// emitEncodeStart emits an event when a record encode begins.
func emitEncodeStart(ctx context.Context, typeName string) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyTypeName.Field(typeName),
	)
}

// emitEncodeComplete emits an event when a record encode finishes.
func emitEncodeComplete(ctx context.Context, typeName string, fields int, duration time.Duration, err error) {
	eventFields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(fields),
		KeyDuration.Field(duration),
	}
	if err != nil {
		eventFields = append(eventFields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, eventFields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, eventFields...)
	}
}

// emitDecodeStart emits an event when a record decode begins.
func emitDecodeStart(ctx context.Context, typeName string) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyTypeName.Field(typeName),
	)
}

// emitDecodeComplete emits an event when a record decode finishes.
func emitDecodeComplete(ctx context.Context, typeName string, fields int, duration time.Duration, err error) {
	eventFields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(fields),
		KeyDuration.Field(duration),
	}
	if err != nil {
		eventFields = append(eventFields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, eventFields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, eventFields...)
	}
}
