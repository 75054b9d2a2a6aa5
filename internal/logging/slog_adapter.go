// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package logging

import (
	"context"
	"log/slog"

	"github.com/rs/zerolog"
)

// SlogHandler lets slog callers, in practice the suture event hook, log
// through zerolog. Attributes bound with WithAttrs are flattened into the
// zerolog context once; open groups become a dotted key prefix.
type SlogHandler struct {
	logger zerolog.Logger
	prefix string
}

// NewSlogHandler wraps logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSlogHandler(logger zerolog.Logger) *SlogHandler {
	return &SlogHandler{logger: logger}
}

// NewSlogLogger returns an slog.Logger on the global zerolog logger, tagged
// with component.
//
//	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), cfg)
func NewSlogLogger(component string) *slog.Logger {
	return slog.New(NewSlogHandler(WithComponent(component)))
}

// Enabled implements slog.Handler.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.GetLevel() <= zerologLevel(level)
}

// Handle implements slog.Handler.
//
//nolint:gocritic // slog.Record is passed by value per slog.Handler interface
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var fields []interface{}
	record.Attrs(func(attr slog.Attr) bool {
		fields = appendAttr(fields, h.prefix, attr)
		return true
	})

	event := h.logger.WithLevel(zerologLevel(record.Level))
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	event.Msg(record.Message)
	return nil
}

// WithAttrs implements slog.Handler.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var fields []interface{}
	for _, attr := range attrs {
		fields = appendAttr(fields, h.prefix, attr)
	}
	if len(fields) == 0 {
		return h
	}
	return &SlogHandler{
		logger: h.logger.With().Fields(fields).Logger(),
		prefix: h.prefix,
	}
}

// WithGroup implements slog.Handler.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &SlogHandler{
		logger: h.logger,
		prefix: h.prefix + name + ".",
	}
}

// appendAttr flattens attr into key/value pairs for zerolog's Fields.
// Empty attributes are dropped and groups with an empty key are inlined.
func appendAttr(fields []interface{}, prefix string, attr slog.Attr) []interface{} {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return fields
	}

	key := prefix + attr.Key
	switch attr.Value.Kind() {
	case slog.KindGroup:
		nested := prefix
		if attr.Key != "" {
			nested = key + "."
		}
		for _, member := range attr.Value.Group() {
			fields = appendAttr(fields, nested, member)
		}
		return fields
	case slog.KindString:
		return append(fields, key, attr.Value.String())
	case slog.KindInt64:
		return append(fields, key, attr.Value.Int64())
	case slog.KindUint64:
		return append(fields, key, attr.Value.Uint64())
	case slog.KindFloat64:
		return append(fields, key, attr.Value.Float64())
	case slog.KindBool:
		return append(fields, key, attr.Value.Bool())
	case slog.KindDuration:
		return append(fields, key, attr.Value.Duration())
	case slog.KindTime:
		return append(fields, key, attr.Value.Time())
	default:
		return append(fields, key, attr.Value.Any())
	}
}

// zerologLevel maps slog levels, including ones between the named levels,
// onto the nearest zerolog level at or below them.
func zerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level < slog.LevelDebug:
		return zerolog.TraceLevel
	case level < slog.LevelInfo:
		return zerolog.DebugLevel
	case level < slog.LevelWarn:
		return zerolog.InfoLevel
	case level < slog.LevelError:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
