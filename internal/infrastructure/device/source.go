// Package device polls input hardware into device snapshots.
package device

import "github.com/younwookim/fpcore/internal/domain/input"

// Source yields one device snapshot per tick
type Source interface {
	Poll() input.DeviceSnapshot
}

// SourceFunc adapts a function to Source
type SourceFunc func() input.DeviceSnapshot

func (f SourceFunc) Poll() input.DeviceSnapshot {
	return f()
}

// Tap calls record with every snapshot src yields
func Tap(src Source, record func(input.DeviceSnapshot)) Source {
	return SourceFunc(func() input.DeviceSnapshot {
		s := src.Poll()
		record(s)
		return s
	})
}
