// Package formlet is the top-level entry point of the module: it loads a
// form definition (HCL or OpenAPI), compiles it into a formlet, evaluates
// it against a model, and renders the result with a registered renderer.
// Hosts that need finer control use the sub-packages directly.
package formlet

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	core "github.com/goliatone/go-formlet/pkg/formlet"
	"github.com/goliatone/go-formlet/pkg/hcldef"
	"github.com/goliatone/go-formlet/pkg/model"
	pkgopenapi "github.com/goliatone/go-formlet/pkg/openapi"
	"github.com/goliatone/go-formlet/pkg/render"
	"github.com/goliatone/go-formlet/pkg/renderers/vanilla"
)

// Request names the definition to compile and how to render it. Exactly one
// of Definition or Schema must be set.
type Request struct {
	// Definition is the path to an HCL form definition file.
	Definition string
	// Form selects a form inside the definition file; optional when the
	// file declares exactly one.
	Form string

	// Schema is the path to an OpenAPI document.
	Schema string
	// Component selects a component schema from the document; optional when
	// the document declares exactly one.
	Component string
	// Operation selects the request body schema of an operation instead of
	// a component schema.
	Operation string

	// Renderer names the renderer; empty means "vanilla".
	Renderer string
	// Model is the state to evaluate against, nil for a fresh form.
	Model model.Model
	// Options pass through to the renderer.
	Options render.Options
}

// Generator wires the compilation pipeline to a renderer registry.
type Generator struct {
	registry *render.Registry
}

// Option configures a Generator.
type Option func(*Generator)

// WithRenderer registers an additional renderer. Registering a duplicate
// name panics, matching Registry.MustRegister.
func WithRenderer(r render.Renderer) Option {
	return func(g *Generator) {
		g.registry.MustRegister(r)
	}
}

// New constructs a Generator with the vanilla renderer pre-registered.
func New(options ...Option) *Generator {
	g := &Generator{registry: render.NewRegistry()}
	g.registry.MustRegister(vanilla.New())
	for _, opt := range options {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Renderers lists the registered renderer names, sorted.
func (g *Generator) Renderers() []string {
	return g.registry.List()
}

// Generate compiles the requested definition, evaluates it, and renders the
// snapshot. The model is read only; pending updates from the evaluation
// pass are discarded because a static rendering has no answers to fold.
func (g *Generator) Generate(ctx context.Context, req Request) ([]byte, error) {
	rendererName := req.Renderer
	if rendererName == "" {
		rendererName = "vanilla"
	}
	renderer, err := g.registry.Get(rendererName)
	if err != nil {
		return nil, fmt.Errorf("%w (registered: %s)", err, strings.Join(g.registry.List(), ", "))
	}

	f, _, title, err := Build(ctx, req, vanilla.Controls())
	if err != nil {
		return nil, err
	}

	m := req.Model
	if m == nil {
		m = model.Empty{}
	}
	_, vt, ft := core.Run(f, core.NewContext(), m, nil)

	opts := req.Options
	if opts.Title == "" {
		opts.Title = title
	}
	return renderer.Render(ctx, render.Snapshot(vt, ft), opts)
}

// Generate renders a request with a default Generator. It is the simplest
// entry point for callers that just want HTML output.
func Generate(ctx context.Context, req Request, options ...Option) ([]byte, error) {
	return New(options...).Generate(ctx, req)
}

// Build compiles the requested definition into a formlet using the given
// element constructors. It also returns the key persisted state should be
// filed under and the title the definition carries.
func Build(ctx context.Context, req Request, controls core.Controls) (core.Formlet[map[string]string], string, string, error) {
	switch {
	case req.Definition != "" && req.Schema != "":
		return nil, "", "", fmt.Errorf("formlet: set either Definition or Schema, not both")
	case req.Definition != "":
		file, err := hcldef.ParseFile(req.Definition)
		if err != nil {
			return nil, "", "", err
		}
		form, err := file.Form(req.Form)
		if err != nil {
			return nil, "", "", err
		}
		f, err := hcldef.Build(form, controls)
		if err != nil {
			return nil, "", "", err
		}
		plain := core.Map(f, func(v hcldef.Values) map[string]string { return v })
		return plain, form.Name, form.Title, nil
	case req.Schema != "":
		doc, err := pkgopenapi.LoadDocument(ctx, req.Schema)
		if err != nil {
			return nil, "", "", err
		}
		schema, key, err := pickSchema(doc, req)
		if err != nil {
			return nil, "", "", err
		}
		f, err := pkgopenapi.FromSchema(schema, controls)
		if err != nil {
			return nil, "", "", err
		}
		plain := core.Map(f, func(v pkgopenapi.Values) map[string]string { return v })
		return plain, key, schema.Title, nil
	default:
		return nil, "", "", fmt.Errorf("formlet: a Definition or Schema path is required")
	}
}

func pickSchema(doc *openapi3.T, req Request) (*openapi3.Schema, string, error) {
	if req.Operation != "" {
		s, err := pkgopenapi.OperationRequestSchema(doc, req.Operation)
		return s, req.Operation, err
	}
	s, err := pkgopenapi.ComponentSchema(doc, req.Component)
	key := req.Component
	if key == "" {
		base := filepath.Base(req.Schema)
		key = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return s, key, err
}
