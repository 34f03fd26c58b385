package httpserver

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/staffview/internal/common"
	"github.com/dmitrijs2005/staffview/internal/logging"
	"github.com/dmitrijs2005/staffview/internal/requesthash"
	"github.com/dmitrijs2005/staffview/internal/server/models"
	"github.com/gofiber/fiber/v2"
)

// Locals keys set by TokenMiddleware.
const (
	LocalSession = "session"
	LocalToken   = "token"
)

// TokenMiddleware requires "Authorization: Token <token>" naming a live
// session and stores the session in c.Locals.
func TokenMiddleware(auth AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(common.AuthorizationHeaderName)
		token, ok := strings.CutPrefix(header, common.AuthorizationScheme+" ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing token")
		}

		session, err := auth.Authenticate(c.UserContext(), token)
		if err != nil {
			return err
		}

		c.Locals(LocalSession, session)
		c.Locals(LocalToken, token)
		return c.Next()
	}
}

// SessionFrom returns the session stored by TokenMiddleware.
func SessionFrom(c *fiber.Ctx) (models.Session, bool) {
	s, ok := c.Locals(LocalSession).(models.Session)
	return s, ok
}

// HashMiddleware requires a hash header signed with key whose claims match
// the request body fields, or the raw query string when there is no body.
func HashMiddleware(key []byte, now func() time.Time) fiber.Handler {
	return func(c *fiber.Ctx) error {
		hash := c.Get(common.HashHeaderName)
		if hash == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing request hash")
		}
		payload := requesthash.Payload(c.Body(), string(c.Request().URI().QueryString()))
		if err := requesthash.Verify(key, hash, payload, now()); err != nil {
			return err
		}
		return c.Next()
	}
}

// requestLogger logs one line per request. Errors are rendered here so the
// logged status is the one sent.
func requestLogger(log logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if err := c.Next(); err != nil {
			if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		args := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
		}
		if s, ok := SessionFrom(c); ok {
			args = append(args, "user_id", s.UserID)
		}
		log.Info(c.UserContext(), "request", args...)
		return nil
	}
}
