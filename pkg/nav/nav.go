// Package nav renders navigation links with active-state styling. Active
// detection is a pure function of the current path, the link target, and the
// exact-match flag; the bar renderer only decorates, it never mutates state.
package nav

import (
	"html"
	"strings"
)

// IsActive reports whether a link targeting target should be styled active
// for the current path. Exact mode requires equality; otherwise a prefix
// match suffices. An empty current path (location unknown) is never active.
func IsActive(current, target string, exact bool) bool {
	if current == "" {
		return false
	}
	if exact {
		return current == target
	}
	return strings.HasPrefix(current, target)
}

// Link is one navigation entry: a label, the destination path, and whether
// active detection requires an exact path match.
type Link struct {
	Label string
	Href  string
	Exact bool
}

// Option configures a Bar.
type Option func(*Bar)

// WithBarClass overrides the class on the enclosing nav element.
func WithBarClass(class string) Option {
	return func(b *Bar) {
		b.barClass = class
	}
}

// WithLinkClass overrides the base class applied to every anchor.
func WithLinkClass(class string) Option {
	return func(b *Bar) {
		b.linkClass = class
	}
}

// WithActiveClass overrides the class added to anchors whose link is active.
func WithActiveClass(class string) Option {
	return func(b *Bar) {
		b.activeClass = class
	}
}

// Bar renders a static list of links, highlighting the ones active for the
// current path.
type Bar struct {
	links       []Link
	barClass    string
	linkClass   string
	activeClass string
}

// NewBar constructs a bar over the supplied links.
func NewBar(links []Link, options ...Option) *Bar {
	bar := &Bar{
		links:       append([]Link(nil), links...),
		barClass:    "ff-nav",
		linkClass:   "ff-nav-link",
		activeClass: "ff-nav-link-active",
	}
	for _, opt := range options {
		if opt != nil {
			opt(bar)
		}
	}
	return bar
}

// Render emits the nav markup for the current path. Anchors always carry the
// base class; the active class is appended only when IsActive holds.
func (b *Bar) Render(current string) string {
	var builder strings.Builder
	builder.WriteString(`<nav class="`)
	builder.WriteString(html.EscapeString(b.barClass))
	builder.WriteString("\">\n")

	for _, link := range b.links {
		class := b.linkClass
		if IsActive(current, link.Href, link.Exact) {
			class += " " + b.activeClass
		}
		builder.WriteString(`    <a href="`)
		builder.WriteString(html.EscapeString(link.Href))
		builder.WriteString(`" class="`)
		builder.WriteString(html.EscapeString(class))
		builder.WriteString(`">`)
		builder.WriteString(html.EscapeString(link.Label))
		builder.WriteString("</a>\n")
	}

	builder.WriteString("</nav>\n")
	return builder.String()
}
