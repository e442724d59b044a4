package htmlmask

import (
	"strings"
	"testing"

	"wordmask/internal/mask"
)

func TestTransformFragment(t *testing.T) {
	banned := mask.NewWordSet([]string{"hello"})
	mapping := mask.ParseMapping("e:3,o:0")

	got, err := Transform(`<p class="hello">say <b>Hello</b> world</p>`, banned, mapping)
	if err != nil {
		t.Fatalf("Transform returned error: %v", err)
	}
	want := `<p class="hello">say <b>H3ll0</b> world</p>`
	if got != want {
		t.Fatalf("Transform() = %q, want %q", got, want)
	}
}

func TestTransformSkipsScripts(t *testing.T) {
	banned := mask.NewWordSet([]string{"hello"})
	mapping := mask.ParseMapping("o:0")

	got, err := Transform(`<div>hello</div><script>var hello = 1;</script>`, banned, mapping)
	if err != nil {
		t.Fatalf("Transform returned error: %v", err)
	}
	if !strings.Contains(got, "<div>hell0</div>") {
		t.Fatalf("expected div text masked, got %q", got)
	}
	if !strings.Contains(got, "var hello = 1;") {
		t.Fatalf("expected script untouched, got %q", got)
	}
}

func TestTransformFullDocument(t *testing.T) {
	banned := mask.NewWordSet([]string{"secret"})
	mapping := mask.ParseMapping("e:3")

	got, err := Transform(`<html><head><title>secret</title></head><body>a secret</body></html>`, banned, mapping)
	if err != nil {
		t.Fatalf("Transform returned error: %v", err)
	}
	if !strings.HasPrefix(got, "<html>") {
		t.Fatalf("expected full document, got %q", got)
	}
	if strings.Contains(got, "secret") {
		t.Fatalf("expected every text node masked, got %q", got)
	}
	if !strings.Contains(got, "<title>s3cr3t</title>") {
		t.Fatalf("expected title masked, got %q", got)
	}
}

func TestTransformFragmentKeepsHeadElements(t *testing.T) {
	banned := mask.NewWordSet([]string{"hello"})
	mapping := mask.ParseMapping("o:0")

	got, err := Transform(`<title>hello</title><meta charset="utf-8"><p>hello</p>`, banned, mapping)
	if err != nil {
		t.Fatalf("Transform returned error: %v", err)
	}
	want := `<title>hell0</title><meta charset="utf-8"/><p>hell0</p>`
	if got != want {
		t.Fatalf("Transform() = %q, want %q", got, want)
	}
}

func TestTransformWithStatsSumsTextNodes(t *testing.T) {
	banned := mask.NewWordSet([]string{"hello", "xyz"})
	mapping := mask.ParseMapping("o:0")

	got, stats, err := TransformWithStats(`<p>say hello</p><p>xyz <b>hello</b></p><script>hello</script>`, banned, mapping)
	if err != nil {
		t.Fatalf("TransformWithStats returned error: %v", err)
	}
	if !strings.Contains(got, "<p>say hell0</p>") {
		t.Fatalf("unexpected output %q", got)
	}
	want := mask.Stats{Tokens: 5, Matched: 3, Changed: 2}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}
}
