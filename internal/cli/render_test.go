package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m0370/pedigree-drawer/pkg/errors"
)

func writeSampleRecord(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "family.json")
	if err := os.WriteFile(path, []byte(sampleRecord), 0o644); err != nil {
		t.Fatalf("write sample record: %v", err)
	}
	return path
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"no output strips input extension", "", "family.json", "family"},
		{"output with format extension", "chart.svg", "family.json", "chart"},
		{"output with unknown extension", "chart.out", "family.json", "chart.out"},
		{"output without extension", "chart", "family.json", "chart"},
		{"nested input path", "", "records/family.json", "records/family"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestArtifactPath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		format string
		single bool
		want   string
	}{
		{"single format explicit output", "chart.svg", "family.json", "svg", true, "chart.svg"},
		{"single format derived", "", "family.json", "svg", true, "family.svg"},
		{"multiple formats derived", "", "family.json", "json", false, "family.json"},
		{"multiple formats with base", "out", "family.json", "png", false, "out.png"},
		{"multiple formats output extension stripped", "out.svg", "family.json", "pdf", false, "out.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := artifactPath(tt.output, tt.input, tt.format, tt.single)
			if got != tt.want {
				t.Errorf("artifactPath(%q, %q, %q, %v) = %q, want %q",
					tt.output, tt.input, tt.format, tt.single, got, tt.want)
			}
		})
	}
}

func TestRunRenderWritesSVG(t *testing.T) {
	dir := t.TempDir()
	input := writeSampleRecord(t, dir)

	c := New(io.Discard, LogInfo)
	opts := renderOpts{formats: []string{"svg"}}
	if err := c.runRender(context.Background(), input, &opts); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "family.svg"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "<svg xmlns=") {
		t.Errorf("output should start with an svg root element, got %.40q", string(data))
	}
}

func TestRunRenderMultipleFormats(t *testing.T) {
	dir := t.TempDir()
	input := writeSampleRecord(t, dir)

	c := New(io.Discard, LogInfo)
	opts := renderOpts{
		output:  filepath.Join(dir, "out"),
		formats: []string{"svg", "json"},
	}
	if err := c.runRender(context.Background(), input, &opts); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	svg, err := os.ReadFile(filepath.Join(dir, "out.svg"))
	if err != nil {
		t.Fatalf("read svg output: %v", err)
	}
	if !strings.Contains(string(svg), "</svg>") {
		t.Error("svg output should contain a closing svg tag")
	}

	scene, err := os.ReadFile(filepath.Join(dir, "out.json"))
	if err != nil {
		t.Fatalf("read json output: %v", err)
	}
	if !json.Valid(scene) {
		t.Error("json output should be valid JSON")
	}
}

func TestRunRenderExplicitOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeSampleRecord(t, dir)
	output := filepath.Join(dir, "chart.svg")

	c := New(io.Discard, LogInfo)
	opts := renderOpts{output: output, formats: []string{"svg"}}
	if err := c.runRender(context.Background(), input, &opts); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	if _, err := os.Stat(output); err != nil {
		t.Errorf("explicit output file missing: %v", err)
	}
}

func TestRunRenderMissingInput(t *testing.T) {
	c := New(io.Discard, LogInfo)
	opts := renderOpts{formats: []string{"svg"}}

	err := c.runRender(context.Background(), filepath.Join(t.TempDir(), "missing.json"), &opts)
	if err == nil {
		t.Fatal("runRender() should fail for a missing input file")
	}
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidPath)
	}
}

func TestRunRenderValidationFailure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "dup.json")
	record := `{"individuals": [{"id": "I-1", "gender": "M"}, {"id": "I-1", "gender": "F"}]}`
	if err := os.WriteFile(input, []byte(record), 0o644); err != nil {
		t.Fatalf("write record: %v", err)
	}

	c := New(io.Discard, LogInfo)
	opts := renderOpts{formats: []string{"svg"}}

	err := c.runRender(context.Background(), input, &opts)
	if err == nil {
		t.Fatal("runRender() should fail for duplicate ids")
	}
	if !errors.IsValidation(err) {
		t.Errorf("IsValidation(err) = false, want true for %v", err)
	}
}

func TestRenderCommandRejectsUnknownFormat(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cmd := c.renderCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"family.json", "-f", "bogus"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("render command should reject an unknown format")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
}
