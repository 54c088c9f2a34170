package ctxutil

import "context"

type traceDataKey struct{}

// TraceData identifies one API request across access logs, error logs and
// spans. Route is the gin route template, not the raw path.
type TraceData struct {
	TraceID   string
	RequestID string
	Route     string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	if ctx == nil {
		return nil
	}
	if td, ok := ctx.Value(traceDataKey{}).(*TraceData); ok {
		return td
	}
	return nil
}

// LogFields returns the request's correlation ids and, when authenticated,
// the caller as logger key/value pairs.
func LogFields(ctx context.Context) []interface{} {
	var kv []interface{}
	if td := GetTraceData(ctx); td != nil {
		if td.TraceID != "" {
			kv = append(kv, "trace_id", td.TraceID)
		}
		if td.RequestID != "" {
			kv = append(kv, "request_id", td.RequestID)
		}
	}
	if rd := GetRequestData(ctx); rd != nil {
		kv = append(kv, "user_id", rd.UserID.String())
		if rd.SessionID != "" {
			kv = append(kv, "session_id", rd.SessionID)
		}
	}
	return kv
}
