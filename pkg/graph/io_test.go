package graph

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/graphtint/graphtint/pkg/errors"
)

func TestMarshalRoundTrip(t *testing.T) {
	g, err := Generate(KindCycle, 4, 0, 0)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	data, err := Marshal(g)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	back, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}

	if back.VertexCount() != 4 || back.EdgeCount() != 4 {
		t.Errorf("round trip: %d vertices, %d edges", back.VertexCount(), back.EdgeCount())
	}
	// Order survives the round trip.
	if got, want := back.Vertices(), g.Vertices(); !slices.Equal(got, want) {
		t.Errorf("vertex order changed: %v vs %v", got, want)
	}
}

func TestWriteReadFile(t *testing.T) {
	g, err := Generate(KindStar, 4, 0, 0)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "graph.json")
	if err := WriteFile(g, path); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	back, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if back.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d, want 3", back.EdgeCount())
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ReadFile on a missing file should fail")
	}
}

func TestReadRejectsMalformedGraphs(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"SelfLoop", `{"nodes":[{"id":"a"}],"edges":[{"from":"a","to":"a"}]}`},
		{"UnknownEndpoint", `{"nodes":[{"id":"a"}],"edges":[{"from":"a","to":"b"}]}`},
		{"DuplicateEdge", `{"nodes":[{"id":"a"},{"id":"b"}],"edges":[{"from":"a","to":"b"},{"from":"b","to":"a"}]}`},
		{"EmptyID", `{"nodes":[{"id":""}],"edges":[]}`},
		{"ReservedSeparator", `{"nodes":[{"id":"a|b"}],"edges":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.json))
			if err == nil {
				t.Fatal("expected error for malformed graph")
			}
			if code := errors.GetCode(err); code != errors.ErrCodeInvalidGraph {
				t.Errorf("code = %q, want %q", code, errors.ErrCodeInvalidGraph)
			}
		})
	}
}

func TestReadInvalidJSON(t *testing.T) {
	if _, err := Read(strings.NewReader("{not json")); err == nil {
		t.Error("Read should fail on invalid JSON")
	}
}

func TestWriteFileCreateError(t *testing.T) {
	g := New()
	dir := t.TempDir()
	// Writing to a path that is a directory must fail.
	if err := WriteFile(g, dir); err == nil {
		t.Error("WriteFile to a directory should fail")
	}
	_ = os.RemoveAll(dir)
}
