package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
)

// EncryptCookies encrypts all cookies with the configured secret. Without a
// configured secret a key is generated for this process only, so sessions do
// not survive a restart; set SESSION_SECRET in deployment.
func EncryptCookies(secret string) fiber.Handler {
	if secret == "" {
		secret = encryptcookie.GenerateKey()
		log.Print("SESSION_SECRET not set, using a generated per-process key")
	}
	return encryptcookie.New(encryptcookie.Config{
		Key: secret,
	})
}
