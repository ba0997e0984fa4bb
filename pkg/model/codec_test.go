package model

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleModel() Model {
	return Fork{
		Left: Sub{Name: "person", Child: Value{V: "Alice"}},
		Right: Fork{
			Left:  Value{V: "on"},
			Right: Empty{},
		},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := EncodeJSON(sampleModel())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(sampleModel(), got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	data, err := EncodeYAML(sampleModel())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeYAML(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(sampleModel(), got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeJSON_NilModelIsEmpty(t *testing.T) {
	data, err := EncodeJSON(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(Model(Empty{}), got); diff != "" {
		t.Fatalf("expected empty model (-want +got):\n%s", diff)
	}
}

func TestDecodeJSON_RejectsUnknownKind(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"kind":"frob"}`))
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if !strings.Contains(err.Error(), "unknown node kind") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodeJSON_RejectsMalformedPayload(t *testing.T) {
	if _, err := DecodeJSON([]byte(`{`)); err == nil {
		t.Fatal("expected error for malformed json")
	}
}
