package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	goformlet "github.com/goliatone/go-formlet"
	"github.com/goliatone/go-formlet/pkg/formlet"
	"github.com/goliatone/go-formlet/pkg/model"
	"github.com/goliatone/go-formlet/pkg/render"
	"github.com/goliatone/go-formlet/pkg/renderers/tui"
	"github.com/goliatone/go-formlet/pkg/store"
)

func main() {
	def := flag.String("def", "", "HCL form definition path")
	formName := flag.String("form", "", "form name inside the definition file")
	schema := flag.String("schema", "", "OpenAPI document path")
	component := flag.String("component", "", "component schema to build the form from")
	operation := flag.String("operation", "", "operation ID whose request body to build the form from")
	rendererName := flag.String("renderer", "vanilla", `renderer to use, or "tui" for an interactive session`)
	output := flag.String("output", "", "output file (stdout if empty)")
	statePath := flag.String("state", "", "state file for persisted form models")
	reset := flag.Bool("reset", false, "drop persisted state for this form before running")
	title := flag.String("title", "", "form title")
	method := flag.String("method", "", "submit method for HTML renderers")
	action := flag.String("action", "", "submit action for HTML renderers")
	listRenderers := flag.Bool("renderers", false, "list the available renderers and exit")
	flag.Parse()

	if *listRenderers {
		for _, name := range goformlet.New().Renderers() {
			fmt.Println(name)
		}
		fmt.Println("tui")
		return
	}

	ctx := context.Background()

	req := goformlet.Request{
		Definition: *def,
		Form:       *formName,
		Schema:     *schema,
		Component:  *component,
		Operation:  *operation,
		Renderer:   *rendererName,
		Options:    render.Options{Title: *title, Method: *method, Action: *action},
	}

	if *rendererName == "tui" {
		runInteractive(ctx, req, *statePath, *reset)
		return
	}

	req.Model = loadState(ctx, req, *statePath, *reset)

	out, err := goformlet.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Failed to generate form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
	} else {
		fmt.Println(string(out))
	}
}

// loadState reads the persisted model for the request's form, if any. A
// missing record is a fresh form, not an error.
func loadState(ctx context.Context, req goformlet.Request, statePath string, reset bool) model.Model {
	if statePath == "" {
		return nil
	}
	_, key, _, err := goformlet.Build(ctx, req, formlet.Controls{})
	if err != nil {
		log.Fatalf("Failed to build form: %v", err)
	}
	st, err := store.Open(statePath)
	if err != nil {
		log.Fatalf("Failed to open state: %v", err)
	}
	defer st.Close()
	if reset {
		if err := st.Reset(key); err != nil {
			log.Fatalf("Failed to reset state for %q: %v", key, err)
		}
	}
	m, err := st.Load(key)
	switch {
	case err == nil:
		return m
	case errors.Is(err, store.ErrNotFound):
		return nil
	default:
		log.Fatalf("Failed to load state for %q: %v", key, err)
		return nil
	}
}

func runInteractive(ctx context.Context, req goformlet.Request, statePath string, reset bool) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		log.Fatalf("The tui renderer needs an interactive terminal")
	}

	f, key, _, err := goformlet.Build(ctx, req, tui.Controls())
	if err != nil {
		log.Fatalf("Failed to build form: %v", err)
	}

	var st *store.Store
	initial := model.Model(model.Empty{})
	if statePath != "" {
		st, err = store.Open(statePath)
		if err != nil {
			log.Fatalf("Failed to open state: %v", err)
		}
		defer st.Close()
		if reset {
			if err := st.Reset(key); err != nil {
				log.Fatalf("Failed to reset state for %q: %v", key, err)
			}
		}
		m, err := st.Load(key)
		switch {
		case err == nil:
			initial = m
		case !errors.Is(err, store.ErrNotFound):
			log.Fatalf("Failed to load state for %q: %v", key, err)
		}
	}

	values, m, err := tui.Run(ctx, f, initial)
	if st != nil {
		// Persist the draft even on abort so the next run resumes it.
		if saveErr := st.Save(key, m); saveErr != nil {
			log.Printf("Failed to save state for %q: %v", key, saveErr)
		}
	}
	if err != nil {
		log.Fatalf("Session failed: %v", err)
	}

	out, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode values: %v", err)
	}
	fmt.Println(string(out))
}
