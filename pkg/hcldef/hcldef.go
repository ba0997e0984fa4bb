// Package hcldef loads form definitions written in HCL and compiles them
// into formlets. A definition file declares one or more form blocks, each
// holding field blocks and optionally nested group blocks:
//
//	form "signup" {
//	  title = "Sign up"
//
//	  field "name" {
//	    label    = "Full name"
//	    required = true
//	  }
//
//	  group "address" {
//	    field "city" { default = "Berlin" }
//	  }
//	}
package hcldef

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// File is the decoded content of one definition file.
type File struct {
	Forms []*Form `hcl:"form,block"`
}

// Form is one named form definition.
type Form struct {
	Name   string   `hcl:"name,label"`
	Title  string   `hcl:"title,optional"`
	Fields []*Field `hcl:"field,block"`
	Groups []*Group `hcl:"group,block"`
}

// Group scopes its fields under a named sub-model, nesting arbitrarily.
type Group struct {
	Name   string   `hcl:"name,label"`
	Label  string   `hcl:"label,optional"`
	Fields []*Field `hcl:"field,block"`
	Groups []*Group `hcl:"group,block"`
}

// Field describes one input. Kind defaults to "text"; the default value is
// kept as a cty value so definitions can write numbers or bools and still
// land in a string-shaped model.
type Field struct {
	Name        string    `hcl:"name,label"`
	Kind        string    `hcl:"kind,optional"`
	Label       string    `hcl:"label,optional"`
	Placeholder string    `hcl:"placeholder,optional"`
	Required    bool      `hcl:"required,optional"`
	Options     []string  `hcl:"options,optional"`
	Pattern     string    `hcl:"pattern,optional"`
	MinLength   int       `hcl:"min_length,optional"`
	MaxLength   int       `hcl:"max_length,optional"`
	Default     cty.Value `hcl:"default,optional"`
}

// ParseFile reads and decodes a definition file from disk.
func ParseFile(path string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("hcldef: parse %s: %w", path, diags)
	}
	return decode(hclFile.Body, path)
}

// Parse decodes definition source held in memory. The filename only labels
// diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("hcldef: parse %s: %w", filename, diags)
	}
	return decode(hclFile.Body, filename)
}

func decode(body hcl.Body, filename string) (*File, error) {
	var file File
	if diags := gohcl.DecodeBody(body, nil, &file); diags.HasErrors() {
		return nil, fmt.Errorf("hcldef: decode %s: %w", filename, diags)
	}
	if len(file.Forms) == 0 {
		return nil, fmt.Errorf("hcldef: %s declares no forms", filename)
	}
	return &file, nil
}

// Form looks up a named form; with an empty name the file's single form is
// returned, erroring when the file holds more than one.
func (f *File) Form(name string) (*Form, error) {
	if name == "" {
		if len(f.Forms) != 1 {
			return nil, fmt.Errorf("hcldef: file declares %d forms, name one", len(f.Forms))
		}
		return f.Forms[0], nil
	}
	for _, form := range f.Forms {
		if form.Name == name {
			return form, nil
		}
	}
	return nil, fmt.Errorf("hcldef: no form named %q", name)
}

// DefaultString renders the field's default as a string, empty when unset.
func (f *Field) DefaultString() (string, error) {
	v := f.Default
	if v == cty.NilVal || v.IsNull() || !v.IsKnown() {
		return "", nil
	}
	conv, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", fmt.Errorf("hcldef: field %q default: %w", f.Name, err)
	}
	return conv.AsString(), nil
}
