package table

import (
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/net/html"
)

// ColorClassPrefix is the marker on the CSS class a colored cell's wrapper
// span carries. The presentation layer maps cell-bg-<token> back to a
// background color; this package only generates and recognizes the names.
const ColorClassPrefix = "cell-bg-"

const nbspEntity = "&nbsp;"

var colorWrapperRe = regexp.MustCompile(`^<span class="` + ColorClassPrefix + `([0-9a-z]+)">([\s\S]*)</span>$`)

// StripMarkup removes markup tags from cell content, decodes HTML entities
// to their literal characters, and trims the result. It is used for sort
// comparison and CSV export only; stored cell content keeps its markup.
func StripMarkup(content string) string {
	if !strings.ContainsAny(content, "<&") {
		return strings.TrimSpace(content)
	}
	z := html.NewTokenizer(strings.NewReader(content))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			// A non-breaking space counts as whitespace here, so a cell
			// holding only the empty-cell placeholder strips to "".
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}

// ColorClass derives the deterministic wrapper class name for a color
// value. Hex colors are normalized through go-colorful ("#F00" and
// "#ff0000" map to the same class); anything else is lowercased and
// reduced to its alphanumeric characters. Returns "" when nothing of the
// color value survives sanitizing.
func ColorClass(color string) string {
	color = strings.TrimSpace(color)
	if c, err := colorful.Hex(color); err == nil {
		return ColorClassPrefix + c.Hex()[1:]
	}
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimPrefix(color, "#")) {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return ColorClassPrefix + b.String()
}

// ApplyCellColor sets or clears the background color wrapper on a cell.
// Any existing wrapper is stripped first, so reapplying the same color is
// idempotent. An empty color removes the wrapper. Fully empty content is
// substituted with a non-breaking space so the wrapper has something to
// color.
func ApplyCellColor(c *Cell, color string) {
	plain := UnwrapColor(c.Content)
	class := ColorClass(color)
	if strings.TrimSpace(color) == "" || class == "" {
		c.Content = plain
		return
	}
	inner := plain
	if strings.TrimSpace(inner) == "" {
		inner = nbspEntity
	}
	c.Content = `<span class="` + class + `">` + inner + `</span>`
}

// UnwrapColor returns the cell content with its color wrapper removed, or
// the content unchanged when there is none. The empty-cell placeholder
// unwraps back to "".
func UnwrapColor(content string) string {
	m := colorWrapperRe.FindStringSubmatch(strings.TrimSpace(content))
	if m == nil {
		return content
	}
	if m[2] == nbspEntity {
		return ""
	}
	return m[2]
}

// CellColorToken returns the sanitized color token of a colored cell, or
// "" when the cell carries no color wrapper.
func CellColorToken(content string) string {
	m := colorWrapperRe.FindStringSubmatch(strings.TrimSpace(content))
	if m == nil {
		return ""
	}
	return m[1]
}
