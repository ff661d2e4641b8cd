package sanitize

import (
	"strings"
	"testing"
)

func TestHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "keeps formatting tags",
			input:    `<b>bold</b> <i>italic</i> <u>under</u> <s>strike</s>`,
			contains: []string{"<b>", "<i>", "<u>", "<s>"},
		},
		{
			name:     "keeps lists and alignment divs",
			input:    `<div style="text-align: center"><ul><li>one</li></ul></div>`,
			contains: []string{"<ul>", "<li>", "text-align"},
		},
		{
			name:     "keeps images with src",
			input:    `<img src="https://example.com/a.png" alt="a">`,
			contains: []string{"<img", "src="},
		},
		{
			name:     "drops script tags",
			input:    `<p>safe</p><script>alert(1)</script>`,
			contains: []string{"safe"},
			excludes: []string{"script", "alert"},
		},
		{
			name:     "drops event handlers",
			input:    `<div onclick="steal()">text</div>`,
			contains: []string{"text"},
			excludes: []string{"onclick"},
		},
		{
			name:     "drops javascript urls",
			input:    `<a href="javascript:alert(1)">link</a>`,
			excludes: []string{"javascript:"},
		},
		{
			name:     "keeps allowed inline styles",
			input:    `<span style="color: red; position: absolute">x</span>`,
			contains: []string{"color"},
			excludes: []string{"position"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HTML(tt.input)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("HTML(%q) = %q, missing %q", tt.input, got, want)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("HTML(%q) = %q, should not contain %q", tt.input, got, bad)
				}
			}
		})
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "le chat", "le chat"},
		{"strips markup", "<b>le chat</b>", "le chat"},
		{"strips scripts entirely", "title<script>x</script>", "title"},
		{"trims whitespace", "  padded  ", "padded"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.input); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
