package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"todoapp/pkg/apierrors"
)

const (
	flashCookieName = "flash"
	flashKey        = "flash_pending"
	flashSeparator  = "|"
)

// The cookie is unsigned, so only these notices are ever rendered.
var flashMessages = map[string]bool{
	apierrors.MsgRegistrationSuccessful: true,
	apierrors.MsgLoginRequired:          true,
	apierrors.MsgLoggedOut:              true,
	apierrors.MsgTaskAdded:              true,
	apierrors.MsgTaskUpdated:            true,
	apierrors.MsgTaskDeleted:            true,
}

// AddFlash queues a message id to be shown on the next rendered page.
func AddFlash(c *gin.Context, messageID string) {
	var pending []string
	if value, exists := c.Get(flashKey); exists {
		pending, _ = value.([]string)
	}
	pending = append(pending, messageID)
	c.Set(flashKey, pending)

	c.SetCookie(flashCookieName, strings.Join(pending, flashSeparator), 0, "/", "", false, true)
}

// PopFlashes returns the queued message ids and clears them.
func PopFlashes(c *gin.Context) []string {
	value, err := c.Cookie(flashCookieName)
	if err != nil || value == "" {
		return nil
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)

	var messages []string
	for _, messageID := range strings.Split(value, flashSeparator) {
		if flashMessages[messageID] {
			messages = append(messages, messageID)
		}
	}
	return messages
}
