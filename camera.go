package main

import (
	"math"

	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/common"
)

// Camera follows a world point and clamps its view to the map.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	zoom    float64

	// smoothing factor (0..1). higher -> faster follow
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

func NewCamera(screenW, screenH int, zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	return &Camera{
		PosX:    float64(screenW) / 2,
		PosY:    float64(screenH) / 2,
		screenW: screenW,
		screenH: screenH,
		zoom:    zoom,
		smooth:  0.15,
	}
}

func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	return c.PosX - viewW/2, c.PosY - viewH/2
}

func (c *Camera) Zoom() float64 { return c.zoom }

// Update eases the camera toward the target. Call once per logic tick.
func (c *Camera) Update(targetX, targetY float64) {
	if c.smooth <= 0 {
		c.PosX, c.PosY = targetX, targetY
	} else {
		c.PosX = common.Lerp(c.PosX, targetX, c.smooth)
		c.PosY = common.Lerp(c.PosY, targetY, c.smooth)
	}
	c.constrain()
}

// SnapTo centers the camera immediately, e.g. after a map change.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX, c.PosY = x, y
	c.constrain()
}

func (c *Camera) constrain() {
	// snap to the 1/zoom grid so texels land on whole screen pixels
	c.PosX = math.Round(c.PosX*c.zoom) / c.zoom
	c.PosY = math.Round(c.PosY*c.zoom) / c.zoom

	halfW := float64(c.screenW) / c.zoom / 2
	halfH := float64(c.screenH) / c.zoom / 2
	c.PosX = clampAxis(c.PosX, halfW, c.worldW)
	c.PosY = clampAxis(c.PosY, halfH, c.worldH)
}

// clampAxis keeps a half-extent view inside [0, world]. A world smaller than
// the view is centered.
func clampAxis(pos, half, world float64) float64 {
	if world <= 0 {
		return pos
	}
	lo, hi := half, world-half
	if hi < lo {
		return world / 2
	}
	return math.Max(lo, math.Min(hi, pos))
}
