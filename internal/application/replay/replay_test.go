package replay

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/fpcore/internal/domain/input"
)

func TestFrameFromSnapshot(t *testing.T) {
	tests := []struct {
		name string
		snap input.DeviceSnapshot
		want Frame
	}{
		{
			name: "rest",
			snap: input.NewSnapshot(),
			want: Frame{F: 3},
		},
		{
			name: "disconnected",
			snap: input.Disconnected(),
			want: Frame{F: 3, Off: true},
		},
		{
			name: "pressed controls only",
			snap: input.NewSnapshot().With(map[string]float64{"a": 1, "lsy": -0.5, "rt2": 0.2}),
			want: Frame{F: 3, Controls: map[string]float64{"a": 1, "lsy": -0.5, "rt2": 0.2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FrameFromSnapshot(3, tt.snap)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.snap, got.Snapshot())
		})
	}
}

func TestFrame_JSON(t *testing.T) {
	frame := FrameFromSnapshot(10, input.NewSnapshot().With(map[string]float64{"x": 1}))

	data, err := json.Marshal(frame)
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":10,"v":{"x":1}}`, string(data))
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder("hero1", 1, 1.0/60)
	_, err := uuid.Parse(rec.Session())
	require.NoError(t, err)

	rec.RecordFrame(input.NewSnapshot())
	rec.RecordFrame(input.NewSnapshot().With(map[string]float64{"b": 1}))
	rec.Stop()
	rec.RecordFrame(input.NewSnapshot())

	assert.False(t, rec.IsRecording())
	require.Equal(t, 2, rec.FrameCount())

	data := rec.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, "hero1", data.Player)
	assert.Equal(t, 1, data.StageIndex)
	assert.Equal(t, 1, data.Frames[1].F)
}

func TestRecorder_EncodeEmpty(t *testing.T) {
	rec := NewRecorder("hero1", 0, 1.0/60)
	assert.Error(t, rec.Encode(&bytes.Buffer{}))
}

func TestRecorder_RoundTrip(t *testing.T) {
	snaps := []input.DeviceSnapshot{
		input.NewSnapshot().With(map[string]float64{"a": 1}),
		input.Disconnected(),
		input.NewSnapshot().With(map[string]float64{"lsx": 0.25, "rsb": 1}),
	}
	rec := NewRecorder("hero1", 0, 1.0/60)
	for _, s := range snaps {
		rec.RecordFrame(s)
	}

	path := filepath.Join(t.TempDir(), "replay.json")
	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, rec.Session(), data.Session)

	replayer := NewReplayer(*data)
	for i, want := range snaps {
		got, ok := replayer.Next()
		require.True(t, ok, "frame %d", i)
		assert.Equal(t, want, got, "frame %d", i)
	}
	_, ok := replayer.Next()
	assert.False(t, ok)
}

func TestDecodeReplay_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"missing frame time", `{"version":"2.0","frames":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeReplay(bytes.NewBufferString(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadReplay_MissingFile(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "failed to open file")
}

func TestReplayer_Poll(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(2, map[string]float64{"lb": 1}))

	assert.Equal(t, 2, replayer.TotalFrames())
	assert.Equal(t, 1.0, replayer.Poll().Button(input.ButtonLB))
	assert.Equal(t, 1, replayer.CurrentFrame())
	assert.False(t, replayer.Done())

	replayer.Poll()
	assert.True(t, replayer.Done())
	assert.Equal(t, input.NewSnapshot(), replayer.Poll(), "an exhausted replay is a device at rest")

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
	assert.False(t, replayer.Done())
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60, nil)

	assert.Equal(t, Version, data.Version)
	assert.Len(t, data.Frames, 60)
	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
	}
}
