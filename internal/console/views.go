package console

import (
	"embed"
	"errors"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var viewsFS embed.FS

// NewEngine returns the template engine over the embedded views.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("initial", func(name string) string {
		for _, r := range name {
			return string(r)
		}
		return "?"
	})
	return engine
}

// ErrorHandler renders failures that escape the handlers as the error page.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "An unexpected error occurred"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		msg = e.Message
	}
	if code >= fiber.StatusInternalServerError && code != fiber.StatusBadGateway {
		log.Errorw("console error", "path", c.Path(), "err", err)
	}

	if rerr := c.Status(code).Render("error", fiber.Map{
		"Title":        "Error",
		"CurrentPage":  "",
		"ErrorCode":    code,
		"ErrorMessage": msg,
	}, layout); rerr != nil {
		return c.Status(code).SendString(msg)
	}
	return nil
}
