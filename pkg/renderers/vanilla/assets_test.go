package vanilla

import (
	"io/fs"
	"strings"
	"testing"
)

func TestTemplatesFSContainsFormTemplate(t *testing.T) {
	data, err := fs.ReadFile(TemplatesFS(), "templates/form.tmpl")
	if err != nil {
		t.Fatalf("expected form template to be readable: %v", err)
	}
	for _, marker := range []string{"<form", "formlet-errors", `type="submit"`} {
		if !strings.Contains(string(data), marker) {
			t.Fatalf("expected form template to contain %s", marker)
		}
	}
}

func TestAssetsFSContainsStylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), "formlet.css")
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	for _, selector := range []string{".formlet", ".formlet-errors", ".is-invalid"} {
		if !strings.Contains(string(data), selector) {
			t.Fatalf("expected stylesheet to style %s", selector)
		}
	}
}
