package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Graph Serialization API
// =============================================================================

// Marshal converts a Graph to JSON bytes.
// Vertices and edges are emitted in insertion order for deterministic output.
func Marshal(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes a Graph to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(g, f)
}

// Write writes a Graph as JSON to an io.Writer.
// Use Marshal for in-memory serialization or WriteFile for files.
func Write(g *Graph, w io.Writer) error {
	return writeTo(g, w)
}

// ReadFile reads a JSON file and returns the decoded Graph.
// Returns validation errors for malformed documents or structural violations
// (self-loops, duplicate edges, unknown endpoints).
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readFrom(f)
}

// Read decodes a JSON graph document from an io.Reader into a Graph.
// Use ReadFile for files or pass bytes.NewReader for in-memory data.
func Read(r io.Reader) (*Graph, error) {
	return readFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeTo(g *Graph, w io.Writer) error {
	out := FromGraph(g)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readFrom(r io.Reader) (*Graph, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToGraph(doc)
}
