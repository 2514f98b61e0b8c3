package static

import (
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const (
	CacheControl = "no-cache, no-store, must-revalidate"
	Pragma       = "no-cache"
	Expires      = "0"
)

// NoCache disables client side caching. The headers are written after the
// rest of the chain has run so that handlers resetting the response, and
// error responses, still carry them.
func NoCache() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		c.Set(fiber.HeaderCacheControl, CacheControl)
		c.Set(fiber.HeaderPragma, Pragma)
		c.Set(fiber.HeaderExpires, Expires)

		return err
	}
}

// RewriteRoot serves the index document for requests to "/".
func RewriteRoot(index string) fiber.Handler {
	target := "/" + strings.TrimPrefix(index, "/")

	return func(c *fiber.Ctx) error {
		if c.Path() != "/" {
			return c.Next()
		}

		if m := c.Method(); m == fiber.MethodGet || m == fiber.MethodHead {
			c.Path(target)
		}

		return c.Next()
	}
}

// redirectDir sends directory requests without a trailing slash to the
// slashed path so that relative links in the index resolve.
func redirectDir(files *fileSystem) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m := c.Method(); m != fiber.MethodGet && m != fiber.MethodHead {
			return c.Next()
		}

		path := c.Path()

		if strings.HasSuffix(path, "/") || !files.isDir(path) {
			return c.Next()
		}

		location := (&url.URL{Path: path + "/"}).EscapedPath()

		if q := c.Request().URI().QueryString(); len(q) > 0 {
			location += "?" + string(q)
		}

		return c.Redirect(location, fiber.StatusMovedPermanently)
	}
}

// ErrorHandler answers with the status text only. Messages of wrapped
// errors can carry server paths and are not sent.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := utils.StatusMessage(code)

	var e *fiber.Error

	if errors.As(err, &e) {
		code = e.Code
		message = utils.StatusMessage(code)

		if err == error(e) {
			message = e.Message
		}
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)

	return c.Status(code).SendString(message)
}

func AccessLog(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		method := c.Method()
		path := utils.CopyString(c.Path())

		err := c.Next()

		status := c.Response().StatusCode()

		if err != nil {
			status = fiber.StatusInternalServerError

			var e *fiber.Error

			if errors.As(err, &e) {
				status = e.Code
			}
		}

		logger.Debug("request",
			"method", method,
			"path", path,
			"status", status,
			"duration", time.Since(start),
			"id", c.GetRespHeader(fiber.HeaderXRequestID),
		)

		return err
	}
}
