package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestButtonByName(t *testing.T) {
	tests := []struct {
		name string
		want Button
		ok   bool
	}{
		{"a", ButtonA, true},
		{"lsb", ButtonLSB, true},
		{"rsb", ButtonRSB, true},
		{"guide", ButtonGuide, true},
		{"z", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ButtonByName(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				assert.Equal(t, tt.name, got.String())
			}
		})
	}
}

func TestAxisByName(t *testing.T) {
	a, ok := AxisByName("rt2")
	assert.True(t, ok)
	assert.Equal(t, AxisRT2, a)
	assert.True(t, a.IsTrigger())

	a, ok = AxisByName("lsy")
	assert.True(t, ok)
	assert.False(t, a.IsTrigger())

	_, ok = AxisByName("dpad")
	assert.False(t, ok)
	assert.Equal(t, "unknown", AxisCount.String())
}

func TestControl_Index(t *testing.T) {
	assert.Equal(t, Control(0), ButtonControl(ButtonA))
	assert.Equal(t, Control(ButtonCount), AxisControl(AxisLSX))
	assert.Equal(t, ControlCount-1, AxisControl(AxisRT2))
	assert.Equal(t, "x", ButtonControl(ButtonX).String())
	assert.Equal(t, "lt2", AxisControl(AxisLT2).String())
	assert.LessOrEqual(t, int(ControlCount), 32, "PendingSet must fit every control")
}

func TestPendingSet(t *testing.T) {
	var p PendingSet
	a := ButtonControl(ButtonA)
	rt2 := AxisControl(AxisRT2)

	assert.False(t, p.Has(a))
	p.Add(a)
	p.Add(rt2)
	p.Add(a)
	assert.True(t, p.Has(a))
	assert.True(t, p.Has(rt2))
	assert.Equal(t, 2, p.Len())

	assert.True(t, p.Remove(a))
	assert.False(t, p.Remove(a), "second release is a no-op")
	assert.False(t, p.Has(a))
	assert.Equal(t, 1, p.Len())
}
