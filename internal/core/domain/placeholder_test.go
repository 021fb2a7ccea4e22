package domain_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/csspipe/internal/core/domain"
)

func TestEncodePlaceholders(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no placeholders",
			in:   "div { color: red; }",
			want: "div { color: red; }",
		},
		{
			name: "single placeholder",
			in:   "div { color: %%styled-jsx-placeholder-0%%; }",
			want: "div { color: /*%%styled-jsx-placeholder-0%%*/; }",
		},
		{
			name: "many placeholders",
			in:   "%%styled-jsx-placeholder-1%% { margin: %%styled-jsx-placeholder-12%%px }",
			want: "/*%%styled-jsx-placeholder-1%%*/ { margin: /*%%styled-jsx-placeholder-12%%*/px }",
		},
		{
			name: "repeated identical placeholder",
			in:   "a{b:%%styled-jsx-placeholder-3%%;c:%%styled-jsx-placeholder-3%%}",
			want: "a{b:/*%%styled-jsx-placeholder-3%%*/;c:/*%%styled-jsx-placeholder-3%%*/}",
		},
		{
			name: "non numeric id is left alone",
			in:   "%%styled-jsx-placeholder-x%%",
			want: "%%styled-jsx-placeholder-x%%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.EncodePlaceholders(tt.in))
			assert.Equal(t, tt.in, domain.DecodePlaceholders(tt.want))
		})
	}
}

func TestPlaceholders_RoundTrip(t *testing.T) {
	var sb strings.Builder
	for i := range 50 {
		fmt.Fprintf(&sb, ".c%d { width: %%%%styled-jsx-placeholder-%d%%%%; }\n", i, i%7)
	}
	inputs := []string{
		"",
		"%%styled-jsx-placeholder-0%%",
		"%%styled-jsx-placeholder-0%%%%styled-jsx-placeholder-0%%",
		"/*%%styled-jsx-placeholder-4%%*/",
		sb.String(),
	}

	for _, in := range inputs {
		assert.Equal(t, in, domain.DecodePlaceholders(domain.EncodePlaceholders(in)))
	}
}

func TestDecodePlaceholders_RelocatedByTransform(t *testing.T) {
	guarded := domain.EncodePlaceholders("div{color:%%styled-jsx-placeholder-0%%}")
	// A transform that reorders the declaration block keeps comment contents intact.
	moved := strings.Replace(guarded, "div{", "section div {", 1)

	assert.Equal(t, "section div {color:%%styled-jsx-placeholder-0%%}", domain.DecodePlaceholders(moved))
}
