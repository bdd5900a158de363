package log

import (
	"context"
)

type requestId struct{}

func RequestIDFromContext(c context.Context) string {
	id, ok := c.Value(requestId{}).(string)
	if !ok {
		return ""
	}
	return id
}

func AttachRequestIDToContext(c context.Context, id string) context.Context {
	return context.WithValue(c, requestId{}, id)
}
