package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	flashMessageKey = "flash_message"
	flashKindKey    = "flash_kind"
)

// Flash keeps one-shot notices in the session: set on a redirect, shown and
// cleared on the next page render.
type Flash struct {
	store *session.Store
}

func NewFlash() *Flash {
	return &Flash{
		store: session.New(session.Config{
			Expiration:     time.Hour,
			CookieHTTPOnly: true,
		}),
	}
}

func (f *Flash) Set(c *fiber.Ctx, kind, message string) {
	sess, err := f.store.Get(c)
	if err != nil {
		log.Printf("flash: get session: %v", err)
		return
	}
	sess.Set(flashMessageKey, message)
	sess.Set(flashKindKey, kind)
	if err := sess.Save(); err != nil {
		log.Printf("flash: save session: %v", err)
	}
}

// Pop returns and clears the pending notice; both values are empty when
// there is none.
func (f *Flash) Pop(c *fiber.Ctx) (message, kind string) {
	sess, err := f.store.Get(c)
	if err != nil {
		log.Printf("flash: get session: %v", err)
		return "", ""
	}
	message, _ = sess.Get(flashMessageKey).(string)
	kind, _ = sess.Get(flashKindKey).(string)
	if message != "" || kind != "" {
		sess.Delete(flashMessageKey)
		sess.Delete(flashKindKey)
		if err := sess.Save(); err != nil {
			log.Printf("flash: save session: %v", err)
		}
	}
	return message, kind
}
