package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Clean_RemovesScriptVectors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string // substrings that must survive
		deny  []string // substrings that must not appear
	}{
		{
			name:  "script tag",
			input: `before<script>alert(1)</script>after`,
			want:  []string{"before", "after"},
			deny:  []string{"<script", "alert(1)"},
		},
		{
			name:  "event handler attribute",
			input: `<img src=x onerror=alert(1)>hi`,
			want:  []string{"hi"},
			deny:  []string{"onerror"},
		},
		{
			name:  "javascript URI",
			input: `<a href="javascript:alert(1)">click</a>`,
			want:  []string{"click"},
			deny:  []string{"javascript:"},
		},
		{
			name:  "benign formatting survives",
			input: `<b>bold</b> and <i>italic</i>`,
			want:  []string{"<b>bold</b>", "<i>italic</i>"},
			deny:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
			for _, d := range tt.deny {
				assert.NotContains(t, got, d)
			}
		})
	}
}

func Test_Clean_Total(t *testing.T) {
	assert.Equal(t, "", Clean(""))
	assert.NotPanics(t, func() { Clean("<<<>>>\x00") })
}

func Test_Clean_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"<b>bold</b>",
		`<script>alert(1)</script>`,
		`<img src=x onerror=alert(1)>hi`,
		`<a href="javascript:alert(1)">x</a>`,
		`<a href="https://example.com">ok</a>`,
	}
	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once), "input %q", in)
	}
}
