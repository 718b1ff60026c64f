package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTextState(t *testing.T) {
	s := NewTextState("Hello world")
	assert.Equal(t, "Hello world", s.Raw)
	assert.Equal(t, "Hello world", s.Current)
	assert.Zero(t, s.TokenCount)
}

func TestTextState_WordCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"whitespace only", "   \t\n", 0},
		{"single word", "hello", 1},
		{"multiple words", "the quick brown fox", 4},
		{"extra spacing", "  spaced   out  ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewTextState(tt.text)
			assert.Equal(t, tt.want, s.WordCount())
		})
	}
}

func TestTextState_IsQuestion(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"terminal question mark", "Is this fine?", true},
		{"leading what", "What is the refund policy", true},
		{"leading how uppercase", "HOW do I reset my password", true},
		{"contraction", "What's the pricing", true},
		{"interrogative mid-sentence", "Tell me what happened", false},
		{"statement", "The invoice was paid.", false},
		{"interrogative prefix word", "Whoever did this left", false},
		{"empty", "", false},
		{"whitespace", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewTextState(tt.text)
			assert.Equal(t, tt.want, s.IsQuestion())
		})
	}
}
