package admin

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zone3577/Test-Web/internal/http/middleware"
	"github.com/zone3577/Test-Web/internal/modules/notifications"
	"github.com/zone3577/Test-Web/internal/shared/apperr"
)

// NotificationHandlers serves the admin bell: the recent list with unread
// count, the read-state writes and the live stream.
type NotificationHandlers struct {
	svc *notifications.Service
	pub *notifications.Publisher
}

func NewNotificationHandlers(svc *notifications.Service, pub *notifications.Publisher) *NotificationHandlers {
	return &NotificationHandlers{svc: svc, pub: pub}
}

func (h *NotificationHandlers) List(c *gin.Context) {
	limit := parseInt(c.Query("limit"), 50)

	items, err := h.svc.List(c.Request.Context(), limit)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	unread, err := h.svc.UnreadCount(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":        items,
		"unread_count": unread,
	})
}

func (h *NotificationHandlers) MarkRead(c *gin.Context) {
	if err := h.svc.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	unread, err := h.svc.UnreadCount(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "unread_count": unread})
}

func (h *NotificationHandlers) MarkAllRead(c *gin.Context) {
	if err := h.svc.MarkAllRead(c.Request.Context()); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "unread_count": 0})
}

// Stream relays freshly created notifications over server-sent events. Each
// event payload is the notification JSON as published to Redis. A periodic
// ping keeps intermediaries from closing the idle connection.
func (h *NotificationHandlers) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	sub := h.pub.Subscribe(ctx)
	defer sub.Close()
	ch := sub.Channel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	ticker := time.NewTicker(25 * time.Second)
	defer ticker.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("notification", msg.Payload)
			return true
		case <-ticker.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		case <-ctx.Done():
			return false
		}
	})
}
