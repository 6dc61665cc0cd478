// Package markup holds the minimal element-tree value that view builders
// return. It is deliberately not a widget catalog: rendering pipelines and
// rich control libraries belong to the host. The only job of this package
// is to carry qualified control identifiers from a view builder to
// whatever the host does with markup, plus a plain HTML writer for tests
// and demos.
package markup

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"
)

// Element is a single markup node: a tag with attributes, optional text,
// and children.
type Element struct {
	Tag      string
	Attrs    map[string]string
	Text     string
	Children []Element
}

// Fragment is an ordered sequence of elements produced by one view builder.
type Fragment []Element

// Append returns a fragment extended with the elements of other.
func (f Fragment) Append(other Fragment) Fragment {
	out := make(Fragment, 0, len(f)+len(other))
	out = append(out, f...)
	out = append(out, other...)
	return out
}

// ControlIDs collects every "id" attribute in the fragment, depth-first.
// These are the qualified identifiers the behavior binder's computations
// will be keyed by.
func (f Fragment) ControlIDs() []string {
	var ids []string
	for _, el := range f {
		ids = append(ids, el.controlIDs()...)
	}
	return ids
}

func (e Element) controlIDs() []string {
	var ids []string
	if id, ok := e.Attrs["id"]; ok {
		ids = append(ids, id)
	}
	for _, child := range e.Children {
		ids = append(ids, child.controlIDs()...)
	}
	return ids
}

// WriteHTML renders the fragment as escaped HTML.
func (f Fragment) WriteHTML(w io.Writer) error {
	for _, el := range f {
		if err := el.writeHTML(w); err != nil {
			return err
		}
	}
	return nil
}

func (e Element) writeHTML(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "<%s", e.Tag); err != nil {
		return err
	}

	// Attributes render in a stable order.
	names := make([]string, 0, len(e.Attrs))
	for name := range e.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(w, " %s=%q", name, html.EscapeString(e.Attrs[name])); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if e.Text != "" {
		if _, err := io.WriteString(w, html.EscapeString(e.Text)); err != nil {
			return err
		}
	}
	for _, child := range e.Children {
		if err := child.writeHTML(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "</%s>", e.Tag)
	return err
}

// String renders the fragment as HTML, for logging and test assertions.
func (f Fragment) String() string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = f.WriteHTML(&sb)
	return sb.String()
}
