package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLogFields(t *testing.T) {
	assert.Empty(t, LogFields(context.Background()))

	userID := uuid.New()
	ctx := WithTraceData(context.Background(), &TraceData{TraceID: "t1", RequestID: "r1"})
	ctx = WithRequestData(ctx, &RequestData{UserID: userID, SessionID: "s1"})

	assert.Equal(t, []interface{}{
		"trace_id", "t1",
		"request_id", "r1",
		"user_id", userID.String(),
		"session_id", "s1",
	}, LogFields(ctx))
}
