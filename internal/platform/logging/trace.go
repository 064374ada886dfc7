package logging

import (
	"regexp"

	"go.uber.org/zap"
)

const traceparentHeader = "traceparent"

// W3C Trace Context: {version}-{trace-id}-{parent-id}-{trace-flags}
var traceparentRe = regexp.MustCompile(`^([0-9a-f]{2})-([0-9a-f]{32})-([0-9a-f]{16})-([0-9a-f]{2})$`)

const (
	zeroTraceID = "00000000000000000000000000000000"
	zeroSpanID  = "0000000000000000"
)

// traceFields extracts trace correlation fields from a traceparent header.
// Malformed headers and all-zero identifiers yield no fields.
func traceFields(header string) []zap.Field {
	m := traceparentRe.FindStringSubmatch(header)
	if len(m) != 5 || m[1] == "ff" || m[2] == zeroTraceID || m[3] == zeroSpanID {
		return nil
	}
	return []zap.Field{
		zap.String("traceId", m[2]),
		zap.String("spanId", m[3]),
		zap.Bool("traceSampled", m[4] == "01"),
	}
}

func loggerWithRequest(base *zap.Logger, header, requestID string) *zap.Logger {
	if base == nil {
		base = zap.NewNop()
	}
	fields := traceFields(header)
	if requestID != "" {
		fields = append(fields, zap.String("requestId", requestID))
	}
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}
