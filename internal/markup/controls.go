package markup

import "strconv"

// Helpers covering the controls the shipped modules emit. Each takes the
// already-qualified identifier; composing identifiers is the caller's job.

// Div wraps children in a container carrying the qualified identifier.
func Div(id string, children ...Element) Element {
	return Element{Tag: "div", Attrs: map[string]string{"id": id}, Children: children}
}

// Label emits a caption bound to a control.
func Label(forID, text string) Element {
	return Element{Tag: "label", Attrs: map[string]string{"for": forID}, Text: text}
}

// SelectInput emits a dropdown control offering the given choices.
func SelectInput(id string, choices []string) Element {
	options := make([]Element, 0, len(choices))
	for _, choice := range choices {
		options = append(options, Element{
			Tag:   "option",
			Attrs: map[string]string{"value": choice},
			Text:  choice,
		})
	}
	return Element{Tag: "select", Attrs: map[string]string{"id": id}, Children: options}
}

// SliderInput emits a numeric range control.
func SliderInput(id string, min, max, value int) Element {
	return Element{Tag: "input", Attrs: map[string]string{
		"id":    id,
		"type":  "range",
		"min":   strconv.Itoa(min),
		"max":   strconv.Itoa(max),
		"value": strconv.Itoa(value),
	}}
}

// TextInput emits a free-text control.
func TextInput(id, value string) Element {
	return Element{Tag: "input", Attrs: map[string]string{
		"id":    id,
		"type":  "text",
		"value": value,
	}}
}

// OutputSlot emits the placeholder the host fills with the rendered value
// of the output directive registered under the same qualified identifier.
func OutputSlot(id string) Element {
	return Element{Tag: "div", Attrs: map[string]string{"id": id, "class": "output"}}
}

// Heading emits a section title.
func Heading(text string) Element {
	return Element{Tag: "h3", Text: text}
}
