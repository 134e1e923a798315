package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAction_IsUrgent(t *testing.T) {
	for a := ActionNone; a < ActionCount; a++ {
		t.Run(a.String(), func(t *testing.T) {
			want := a >= ActionQuickMoveForward
			assert.Equal(t, want, a.IsUrgent())
		})
	}
}

func TestAction_Normal(t *testing.T) {
	tests := []struct {
		quick, want Action
	}{
		{ActionQuickMoveForward, ActionMoveForward},
		{ActionQuickMoveBackward, ActionMoveBackward},
		{ActionQuickMoveLeft, ActionMoveLeft},
		{ActionQuickMoveRight, ActionMoveRight},
		{ActionQuickTurnLeft, ActionRotateLeft},
		{ActionQuickTurnRight, ActionRotateRight},
		{ActionJump, ActionJump},
		{ActionNone, ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.quick.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.quick.Normal())
		})
	}
}

func TestActionFrame_Set(t *testing.T) {
	var f ActionFrame
	assert.True(t, f.Empty())

	f.Set(ActionMoveForward, 0.5)
	f.Set(ActionTrigger, 1)
	f.Set(ActionTrigger, 0.3)
	f.Set(ActionRotateLeft, 4)
	f.Set(ActionNone, 1)

	v, ok := f.Get(ActionMoveForward)
	assert.True(t, ok)
	assert.Equal(t, 0.5, v)

	v, _ = f.Get(ActionTrigger)
	assert.Equal(t, 1.0, v, "a repeated action keeps the larger intensity")

	v, _ = f.Get(ActionRotateLeft)
	assert.Equal(t, 1.0, v, "intensity clamps to 1")

	assert.False(t, f.Has(ActionNone))
	assert.Equal(t, 3, f.Len())
	assert.Equal(t, []Action{ActionMoveForward, ActionRotateLeft, ActionTrigger}, f.Actions())
}

func TestActionFrame_Claim(t *testing.T) {
	var f ActionFrame

	assert.False(t, f.Claim(ActionJump), "only quick variants can be urgent")
	assert.True(t, f.Claim(ActionQuickMoveLeft))
	assert.False(t, f.Claim(ActionQuickTurnRight))

	assert.Equal(t, ActionQuickMoveLeft, f.Urgency)
	assert.True(t, f.Has(ActionQuickMoveLeft))
	assert.False(t, f.Has(ActionQuickTurnRight))

	f.Reset()
	assert.True(t, f.Empty())
	assert.Equal(t, ActionNone, f.Urgency)
}

func TestLookInput_Active(t *testing.T) {
	assert.False(t, LookInput{}.Active(1e-4))
	assert.False(t, LookInput{DX: 1e-5, WheelSteps: 3}.Active(1e-4))
	assert.True(t, LookInput{DY: -0.2}.Active(1e-4))
}
