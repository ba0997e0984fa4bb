package vanilla

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io/fs"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formlet/pkg/render"
	rendertemplate "github.com/goliatone/go-formlet/pkg/render/template"
	"github.com/goliatone/go-formlet/pkg/render/template/gotemplate"
)

// formTemplate is the chrome template: form wrapper, failure list,
// submit button. Control markup is produced by Node and handed to the
// template pre-rendered.
const formTemplate = "templates/form"

// Renderer implements render.Renderer for plain HTML output. The form
// chrome comes from an embedded template bundle (replaceable via
// options); leaf elements render themselves. Failure messages pass
// through a bluemonday policy before they reach the page, so validator
// authors may use markup-ish prose without opening an injection vector.
type Renderer struct {
	sanitizer *bluemonday.Policy
	theme     *theme.RendererConfig
	templates rendertemplate.Renderer

	templateFS fs.FS
	initErr    error
}

// Option customises the renderer.
type Option func(*Renderer)

// WithTheme applies theme metadata (name, variant, CSS variables) to the
// rendered form chrome.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(r *Renderer) {
		r.theme = cfg
	}
}

// WithSanitizer overrides the policy applied to failure messages. The
// default strips all markup.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		if policy != nil {
			r.sanitizer = policy
		}
	}
}

// WithTemplatesFS supplies an alternate chrome template bundle. The
// bundle must provide templates/form.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(r *Renderer) {
		if files != nil {
			r.templateFS = files
		}
	}
}

// WithTemplateRenderer injects a custom template engine, bypassing the
// default pongo2-backed one.
func WithTemplateRenderer(templates rendertemplate.Renderer) Option {
	return func(r *Renderer) {
		if templates != nil {
			r.templates = templates
		}
	}
}

// New constructs a vanilla HTML renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{
		sanitizer:  bluemonday.StrictPolicy(),
		templateFS: TemplatesFS(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(r.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			r.initErr = fmt.Errorf("vanilla: configure template engine: %w", err)
			return r
		}
		r.templates = engine
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string { return "vanilla" }

// ContentType reports the output media type.
func (r *Renderer) ContentType() string { return "text/html" }

// Render emits the document as a standalone <form> fragment: title,
// failure list, controls, submit button.
func (r *Renderer) Render(ctx context.Context, doc render.Document, opts render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("vanilla: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.initErr != nil {
		return nil, r.initErr
	}

	elements := make([]string, 0, len(doc.Elements))
	for _, element := range doc.Elements {
		node, ok := element.(Node)
		if !ok {
			return nil, fmt.Errorf("vanilla: unsupported element type %T", element)
		}
		elements = append(elements, node.HTML())
	}

	failures := make([]map[string]any, 0, len(doc.Failures))
	for _, item := range doc.Failures {
		class := "formlet-error"
		if item.Suppressed {
			class = "formlet-error formlet-error-muted"
		}
		failures = append(failures, map[string]any{
			"class":   class,
			"path":    item.Path,
			"message": r.sanitizer.Sanitize(item.Message),
		})
	}

	method := opts.Method
	if method == "" {
		method = "POST"
	}

	out, err := r.templates.RenderTemplate(formTemplate, map[string]any{
		"action":      opts.Action,
		"method":      method,
		"title":       opts.Title,
		"good":        doc.Good,
		"theme_attrs": r.themeAttrs(),
		"failures":    failures,
		"elements":    elements,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla: render form: %w", err)
	}
	return []byte(out), nil
}

// themeAttrs renders the theme configuration as pre-escaped attribute
// markup, empty when no theme is set.
func (r *Renderer) themeAttrs() string {
	cfg := r.theme
	if cfg == nil {
		return ""
	}
	var b strings.Builder
	if cfg.Theme != "" {
		fmt.Fprintf(&b, ` data-theme="%s"`, html.EscapeString(cfg.Theme))
	}
	if cfg.Variant != "" {
		fmt.Fprintf(&b, ` data-theme-variant="%s"`, html.EscapeString(cfg.Variant))
	}
	if len(cfg.CSSVars) == 0 {
		return b.String()
	}
	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	b.WriteString(` style="`)
	for i, key := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		name := key
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		b.WriteString(html.EscapeString(name))
		b.WriteString(": ")
		b.WriteString(html.EscapeString(cfg.CSSVars[key]))
	}
	b.WriteByte('"')
	return b.String()
}
