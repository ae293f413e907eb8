package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	cases := map[string]string{
		"Ivan Petrov":                   "Ivan Petrov",
		"<script>alert(1)</script>":     "&lt;script&gt;alert(1)&lt;&#x2F;script&gt;",
		`Tom & "Jerry"`:                 "Tom &amp; &quot;Jerry&quot;",
		"it's `x`":                      "it&#x27;s &#96;x&#96;",
		`C:\path`:                       "C:&#x5C;path",
		"Сколько стоит обучение?":       "Сколько стоит обучение?",
	}
	for in, want := range cases {
		assert.Equal(t, want, Escape(in), in)
	}
}

func TestText_Trims(t *testing.T) {
	assert.Equal(t, "@ivan", Text("  @ivan \n"))
}

func TestUnescape_ReversesEscape(t *testing.T) {
	for _, in := range []string{`Tom & "Jerry"`, "it's `x`", "</b>", `C:\path`} {
		assert.Equal(t, in, Unescape(Escape(in)))
	}
}
