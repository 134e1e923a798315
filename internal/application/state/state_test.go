package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeLoading, "Loading"},
		{ModeInitial, "Initial"},
		{ModePlay, "Play"},
		{ModeGameOver, "GameOver"},
		{Mode(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mode.String())
		})
	}
}

func TestModeConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, Mode(0), ModeLoading)
	assert.Equal(t, Mode(1), ModeInitial)
	assert.Equal(t, Mode(2), ModePlay)
	assert.Equal(t, Mode(3), ModeGameOver)
}

func TestMode_Ticks(t *testing.T) {
	assert.False(t, ModeLoading.Ticks())
	assert.False(t, ModeInitial.Ticks())
	assert.True(t, ModePlay.Ticks())
	assert.False(t, ModeGameOver.Ticks())
}

func TestMode_Valid(t *testing.T) {
	assert.True(t, ModeGameOver.Valid())
	assert.False(t, Mode(-1).Valid())
	assert.False(t, Mode(4).Valid())
}
