package extract

import (
	"os"
	"path/filepath"
	"testing"
)

const testPage = `<!DOCTYPE html>
<html>
<head>
<title>Acme Widgets</title>
<meta name="description" content="industrial widget manufacturing">
<script>var internalSecret = "donotleak";</script>
<style>.hidden { display: none; }</style>
</head>
<body>
<p>Quality widgets since forever. Contact sales@acme.example.com today.</p>
<img src="logo.png" alt="acme factory floor">
</body>
</html>`

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	x, err := New(3, 50, 0)
	if err != nil {
		t.Fatal(err)
	}
	return x
}

func TestExtractStringHTML(t *testing.T) {
	x := newTestExtractor(t)
	res := x.ExtractString(testPage, true)

	wordSet := make(map[string]struct{}, len(res.Words))
	for _, w := range res.Words {
		wordSet[w] = struct{}{}
	}
	for _, want := range []string{"widgets", "quality", "acme", "factory", "industrial", "manufacturing"} {
		if _, ok := wordSet[want]; !ok {
			t.Errorf("missing word %q in %v", want, res.Words)
		}
	}
	if _, ok := wordSet["donotleak"]; ok {
		t.Error("script content leaked into words")
	}
	if _, ok := wordSet["hidden"]; ok {
		t.Error("style content leaked into words")
	}
	if _, ok := wordSet["the"]; ok {
		t.Error("stop word survived")
	}

	if len(res.Emails) != 1 || res.Emails[0] != "sales@acme.example.com" {
		t.Errorf("Emails = %v, want [sales@acme.example.com]", res.Emails)
	}

	metaSet := make(map[string]struct{}, len(res.Metadata))
	for _, m := range res.Metadata {
		metaSet[m] = struct{}{}
	}
	for _, want := range []string{"industrial widget manufacturing", "acme factory floor"} {
		if _, ok := metaSet[want]; !ok {
			t.Errorf("missing metadata %q in %v", want, res.Metadata)
		}
	}
}

func TestExtractStringPlainText(t *testing.T) {
	x := newTestExtractor(t)
	res := x.ExtractString("Winter holidays at <b>acme</b>: mail hr@acme.example.com", false)
	wordSet := make(map[string]struct{}, len(res.Words))
	for _, w := range res.Words {
		wordSet[w] = struct{}{}
	}
	for _, want := range []string{"winter", "holidays", "acme", "mail"} {
		if _, ok := wordSet[want]; !ok {
			t.Errorf("missing word %q", want)
		}
	}
	if len(res.Emails) != 1 {
		t.Errorf("Emails = %v, want one address", res.Emails)
	}
}

func TestWordGroups(t *testing.T) {
	x, err := New(3, 50, 2)
	if err != nil {
		t.Fatal(err)
	}
	res := x.ExtractString("alpha beta gamma", false)
	// sorted words: alpha beta gamma -> bigrams
	want := []string{"alpha beta", "beta gamma"}
	if len(res.WordGroups) != len(want) {
		t.Fatalf("WordGroups = %v, want %v", res.WordGroups, want)
	}
	for i := range want {
		if res.WordGroups[i] != want[i] {
			t.Errorf("group[%d] = %q, want %q", i, res.WordGroups[i], want[i])
		}
	}
}

func TestExtractFilesSkipsUnreadable(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "page.html")
	if err := os.WriteFile(good, []byte(testPage), 0o644); err != nil {
		t.Fatal(err)
	}
	x := newTestExtractor(t)
	res := x.ExtractFiles([]string{good, filepath.Join(dir, "missing.txt")})
	if len(res.Words) == 0 {
		t.Fatal("readable file contributed no words")
	}
}

func TestNewRejectsInvertedBounds(t *testing.T) {
	if _, err := New(10, 5, 0); err == nil {
		t.Fatal("expected error for max < min")
	}
}
