package log

import "context"

type contextKey int

const (
	requestIDKey contextKey = iota
	fieldsKey
)

// WithRequestID returns a context carrying the request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request ID, or "" when absent or ctx is nil.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithFields returns a context carrying the given key/value pairs merged
// over any fields already present. Later keys win.
func WithFields(ctx context.Context, keysAndValues ...any) context.Context {
	merged := make(map[string]any)
	for k, v := range FieldsFromContext(ctx) {
		merged[k] = v
	}
	eachPair(keysAndValues, func(key string, value any) {
		merged[key] = value
	})
	return context.WithValue(ctx, fieldsKey, merged)
}

// FieldsFromContext returns the fields stored by WithFields, or nil.
func FieldsFromContext(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(fieldsKey).(map[string]any)
	return fields
}

// eachPair walks alternating key/value arguments, skipping non-string keys
// and a trailing key without a value.
func eachPair(keysAndValues []any, fn func(key string, value any)) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fn(key, keysAndValues[i+1])
	}
}
