package sentences

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmenter_Segment(t *testing.T) {
	s := New()
	ctx := context.Background()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "basic sentences",
			in:   "First sentence. Second sentence! Third?",
			want: []string{"First sentence.", "Second sentence!", "Third?"},
		},
		{
			name: "no terminal punctuation",
			in:   "just one fragment",
			want: []string{"just one fragment"},
		},
		{
			name: "messy whitespace",
			in:   "One.   Two.\n\nThree.",
			want: []string{"One.", "Two.", "Three."},
		},
		{
			name: "repeated punctuation",
			in:   "Really?! Yes... absolutely.",
			want: []string{"Really?!", "Yes...", "absolutely."},
		},
		{
			name: "trailing punctuation without space",
			in:   "Only one sentence.",
			want: []string{"Only one sentence."},
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "whitespace only",
			in:   "   \n ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Segment(ctx, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
