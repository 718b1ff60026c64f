package pii

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMasker_Mask(t *testing.T) {
	m := New()
	ctx := context.Background()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "email",
			in:   "Contact jane.doe@example.com for details",
			want: "Contact [EMAIL] for details",
		},
		{
			name: "phone",
			in:   "Call 5551234567 today",
			want: "Call [PHONE] today",
		},
		{
			name: "phone with country code",
			in:   "Call +1 5551234567 today",
			want: "Call [PHONE] today",
		},
		{
			name: "email and phone",
			in:   "jane@example.org or 5551234567",
			want: "[EMAIL] or [PHONE]",
		},
		{
			name: "no pii",
			in:   "Nothing sensitive here",
			want: "Nothing sensitive here",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Mask(ctx, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMasker_Mask_Idempotent(t *testing.T) {
	m := New()
	ctx := context.Background()

	once, err := m.Mask(ctx, "Reach jane@example.com or 5551234567")
	require.NoError(t, err)

	twice, err := m.Mask(ctx, once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}
