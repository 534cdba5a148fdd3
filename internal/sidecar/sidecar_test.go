package sidecar

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

func TestEncodeRoundTrip(t *testing.T) {
	res := outline.Result{
		Title: "Annual Report",
		Outline: []outline.Heading{
			{Text: "Annual Report", Page: 1, Level: outline.LevelH1},
			{Text: "Introduction", Page: 1, Level: outline.LevelH2},
			{Text: "付録A データ形式", Page: 9, Level: outline.LevelH3},
		},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, res); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var got outline.Result
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Title != res.Title {
		t.Errorf("title: expected %q, got %q", res.Title, got.Title)
	}
	if len(got.Outline) != len(res.Outline) {
		t.Fatalf("outline length: expected %d, got %d", len(res.Outline), len(got.Outline))
	}
	for i := range res.Outline {
		if got.Outline[i] != res.Outline[i] {
			t.Errorf("entry %d: expected %+v, got %+v", i, res.Outline[i], got.Outline[i])
		}
	}
}

func TestEncodePreservesNonASCIILiterally(t *testing.T) {
	res := outline.Result{
		Title:   "概要",
		Outline: []outline.Heading{{Text: "結論", Page: 2, Level: outline.LevelH2}},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, res); err != nil {
		t.Fatalf("encode: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "概要") || !strings.Contains(out, "結論") {
		t.Errorf("expected literal CJK text in output, got %s", out)
	}
	if strings.Contains(out, `\u`) {
		t.Errorf("expected no unicode escapes, got %s", out)
	}
}

func TestEncodeEmptyOutlineIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, outline.Result{Title: "Untitled"}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(buf.String(), `"outline": []`) {
		t.Errorf("expected empty outline to serialize as [], got %s", buf.String())
	}
}

func TestWriteCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	path := PathFor(dir, "report.pdf")

	res := outline.EmptyResult()
	if err := Write(path, res); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), `"title": "Untitled"`) {
		t.Errorf("unexpected sidecar content: %s", data)
	}
}

func TestPathFor(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"report.pdf", "out/report.json"},
		{"notes.markdown", "out/notes.json"},
		{"/abs/path/deck.docx", "out/deck.json"},
	}
	for _, tc := range cases {
		if got := PathFor("out", tc.filename); got != filepath.FromSlash(tc.want) {
			t.Errorf("PathFor(out, %q): expected %q, got %q", tc.filename, tc.want, got)
		}
	}
}
