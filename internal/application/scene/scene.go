// Package scene defines the screens the host window switches between.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one host screen driven by game.Game.
//
// Update returns the next scene to switch to, or nil to stay. A non-nil
// error stops the window loop.
type Scene interface {
	Update(dt float64) (next Scene, err error)
	Draw(screen *ebiten.Image)

	// Resize receives the window size once it has settled
	Resize(w, h int)

	OnEnter()
	OnExit()
}
