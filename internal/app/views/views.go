// Package views holds the HTML templates and the page model every handler renders.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/navigation"
	"github.com/yigit/campusconnect/internal/pkg/helpers"
	"github.com/yigit/campusconnect/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// Context keys shared with the middleware
const (
	FlashKey     = "flashToasts"
	RequestIDKey = "requestId"
)

const layoutFile = "templates/layout.html"

// Page is the model handed to the layout
type Page struct {
	Title     string
	Nav       navigation.Bar
	Toasts    []dto.Toast
	Data      interface{}
	RequestID string
}

// Renderer implements gin's HTMLRender with one template set per page, each
// combining the shared layout with the page's own "content" block.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every embedded page
func NewRenderer() (*Renderer, error) {
	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(names))}
	for _, name := range names {
		if name == layoutFile {
			continue
		}
		tmpl, err := template.New("layout.html").Funcs(FuncMap()).ParseFS(templateFS, layoutFile, name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		r.pages[strings.TrimPrefix(name, "templates/")] = tmpl
	}
	return r, nil
}

// MustRenderer panics if the embedded templates are broken
func MustRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Instance implements render.HTMLRender
func (r *Renderer) Instance(name string, data interface{}) render.Render {
	tmpl, ok := r.pages[name]
	if !ok {
		tmpl = r.pages["error.html"]
		data = Page{Title: "Error", Data: ErrorData{Message: "Page template " + name + " is missing"}}
	}
	return render.HTML{Template: tmpl, Name: "layout.html", Data: data}
}

// ErrorData is the model of the generic error page
type ErrorData struct {
	Status  int
	Message string
}

// FuncMap returns the helpers available to templates
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"formatDate": helpers.FormatDate,
		"add":        func(a, b int) int { return a + b },
		"sub":        func(a, b int) int { return a - b },
		"initial": func(s string) string {
			for _, r := range strings.TrimSpace(s) {
				return strings.ToUpper(string(r))
			}
			return "?"
		},
	}
}

// Render writes a full page. Navigation is derived from the session carried by
// the request, and any flash toasts from a previous redirect come first.
func Render(c *gin.Context, status int, name, title string, data interface{}, toasts ...dto.Toast) {
	c.HTML(status, name, NewPage(c, title, data, toasts...))
}

// NewPage assembles the layout model for the current request
func NewPage(c *gin.Context, title string, data interface{}, toasts ...dto.Toast) Page {
	authenticated := false
	identity := ""
	if sess := session.FromContext(c.Request.Context()); sess != nil && sess.IsAuthenticated() {
		authenticated = true
		if id, ok := session.IdentityFromToken(sess.Token(c.Request.Context())); ok {
			identity = id.Label()
		}
	}

	var all []dto.Toast
	if flashed, ok := c.Get(FlashKey); ok {
		if f, ok := flashed.([]dto.Toast); ok {
			all = append(all, f...)
		}
	}
	all = append(all, toasts...)

	return Page{
		Title:     title,
		Nav:       navigation.Build(authenticated, c.Request.URL.Path, identity),
		Toasts:    all,
		Data:      data,
		RequestID: c.GetString(RequestIDKey),
	}
}
