package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFragment_WriteHTML(t *testing.T) {
	f := Fragment{
		Div("hist1",
			Label("hist1-var", "Variable"),
			SelectInput("hist1-var", []string{"speed", "distance"}),
			OutputSlot("hist1-plot"),
		),
	}

	got := f.String()
	assert.Equal(t,
		`<div id="hist1"><label for="hist1-var">Variable</label>`+
			`<select id="hist1-var"><option value="speed">speed</option>`+
			`<option value="distance">distance</option></select>`+
			`<div class="output" id="hist1-plot"></div></div>`,
		got,
	)
}

func TestFragment_EscapesContent(t *testing.T) {
	f := Fragment{{Tag: "p", Text: `<script>"boom"</script>`}}
	assert.Equal(t, "<p>&lt;script&gt;&#34;boom&#34;&lt;/script&gt;</p>", f.String())
}

func TestFragment_ControlIDs(t *testing.T) {
	f := Fragment{
		Div("hist1",
			SelectInput("hist1-var", nil),
			OutputSlot("hist1-plot"),
		),
		Heading("no id here"),
	}
	assert.Equal(t, []string{"hist1", "hist1-var", "hist1-plot"}, f.ControlIDs())
}

func TestFragment_Append(t *testing.T) {
	a := Fragment{Heading("a")}
	b := Fragment{Heading("b")}
	combined := a.Append(b)
	assert.Len(t, combined, 2)
	assert.Len(t, a, 1)
}
