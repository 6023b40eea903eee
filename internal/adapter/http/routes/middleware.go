package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/baggage"
)

const (
	HeaderRequestID = "X-Request-ID"
	ctxKeyRequestID = "request_id"
)

// requestID keeps a valid incoming X-Request-ID or issues a new one. The id is
// echoed in the response and added to the request baggage, so it shows up on
// every log record written with the request context.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(ctxKeyRequestID, id)
		c.Header(HeaderRequestID, id)

		if member, err := baggage.NewMember(ctxKeyRequestID, id); err == nil {
			ctx := c.Request.Context()
			bag, err := baggage.FromContext(ctx).SetMember(member)
			if err != nil {
				slog.WarnContext(ctx, "[http] request id baggage", "err", err)
			} else {
				c.Request = c.Request.WithContext(baggage.ContextWithBaggage(ctx, bag))
			}
		}
		c.Next()
	}
}
