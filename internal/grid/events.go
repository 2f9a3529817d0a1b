package grid

import "github.com/rocketscienceinc/inarow/internal/entity"

type (
	PlaceFunc  func(at entity.Coordinate, marker entity.Marker)
	RemoveFunc func(at entity.Coordinate, marker entity.Marker)
)

// Renderer - consumer of every grid mutation.
type Renderer interface {
	BeforePlace(at entity.Coordinate, marker entity.Marker)
	AfterPlace(at entity.Coordinate, marker entity.Marker)
	BeforeRemove(at entity.Coordinate, marker entity.Marker)
}

// OnBeforePlace - registers fn; listeners run in registration order.
func (that *Grid) OnBeforePlace(fn PlaceFunc) {
	that.beforePlace = append(that.beforePlace, fn)
}

func (that *Grid) OnAfterPlace(fn PlaceFunc) {
	that.afterPlace = append(that.afterPlace, fn)
}

func (that *Grid) OnBeforeRemove(fn RemoveFunc) {
	that.beforeRemove = append(that.beforeRemove, fn)
}

// Attach - subscribes the renderer to all three notifications.
func (that *Grid) Attach(renderer Renderer) {
	that.OnBeforePlace(renderer.BeforePlace)
	that.OnAfterPlace(renderer.AfterPlace)
	that.OnBeforeRemove(renderer.BeforeRemove)
}
