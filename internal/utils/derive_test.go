package utils

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"AI Trends in 2024", "ai-trends-in-2024"},
		{"  _Много)(*пробелов  и знаков!  ", ""},
		{"Résumé — Déjà Vu", "resume-deja-vu"},
		{"Already-a-slug", "already-a-slug"},
		{"UPPER case & symbols!!!", "upper-case-symbols"},
	}

	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, ожидалось %q", c.in, got, c.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	titles := []string{"Hello World", "Résumé — Déjà Vu", "AI Trends in 2024", "a--b--c"}
	for _, title := range titles {
		once := Slugify(title)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify не идемпотентна для %q: %q != %q", title, once, twice)
		}
	}
}

func TestPlainText(t *testing.T) {
	in := "<p>Первый   абзац</p>\n<p>Второй <b>жирный</b> абзац &amp; сущность</p>"
	got := PlainText(in)
	if strings.Contains(got, "<") || strings.Contains(got, ">") {
		t.Fatalf("в plain-тексте осталась разметка: %q", got)
	}
	if strings.Contains(got, "  ") {
		t.Fatalf("пробелы не схлопнуты: %q", got)
	}
	if !strings.Contains(got, "&") {
		t.Fatalf("HTML-сущность не раскрыта: %q", got)
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("one two  three\nfour"); got != 4 {
		t.Errorf("WordCount = %d, ожидалось 4", got)
	}
	if got := WordCount("   "); got != 0 {
		t.Errorf("WordCount для пустой строки = %d, ожидалось 0", got)
	}
}

func TestReadTimeMinutes(t *testing.T) {
	cases := []struct {
		words int
		want  int
	}{
		{0, 1},
		{1, 1},
		{200, 1},
		{201, 2},
		{250, 2},
		{400, 2},
		{401, 3},
	}
	for _, c := range cases {
		if got := ReadTimeMinutes(c.words); got != c.want {
			t.Errorf("ReadTimeMinutes(%d) = %d, ожидалось %d", c.words, got, c.want)
		}
	}
}
