package urls

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripper_Strip(t *testing.T) {
	s := New()
	ctx := context.Background()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "https url",
			in:   "see https://example.com/docs for details",
			want: "see for details",
		},
		{
			name: "url with tracking params",
			in:   "read http://example.com/a?utm_source=x&utm_medium=y now",
			want: "read now",
		},
		{
			name: "www url",
			in:   "visit www.example.com today",
			want: "visit today",
		},
		{
			name: "multiple urls",
			in:   "https://a.example http://b.example text www.c.example",
			want: "text",
		},
		{
			name: "no urls",
			in:   "nothing to remove",
			want: "nothing to remove",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Strip(ctx, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
