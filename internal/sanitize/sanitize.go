// Package sanitize strips unsafe markup from user-authored editor content
// before it is persisted. The editor emits HTML from a contentEditable
// surface, so anything can arrive here.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	policy *bluemonday.Policy
)

// editorPolicy allows the tags the formatting toolbar can produce: inline
// styling (bold/italic/underline, font size, colors via style attribute),
// lists, alignment divs, and images inside their deletable wrapper.
func editorPolicy() *bluemonday.Policy {
	once.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowElements("font", "img", "span", "div", "u", "s")
		p.AllowAttrs("size", "color", "face").OnElements("font")
		p.AllowAttrs("src", "alt").OnElements("img")
		p.AllowAttrs("style").OnElements("span", "div", "p", "li")
		p.AllowAttrs("class", "contenteditable").OnElements("div", "span")
		p.AllowStyles("color", "background-color", "text-align", "font-size").Globally()
		policy = p
	})
	return policy
}

// HTML sanitizes rich-text editor output. It never fails; unsafe input
// simply comes back smaller.
func HTML(input string) string {
	return editorPolicy().Sanitize(input)
}

// Text sanitizes a plain-text field (card fronts/backs, todo text, titles)
// by stripping all markup.
func Text(input string) string {
	return strings.TrimSpace(bluemonday.StrictPolicy().Sanitize(input))
}
