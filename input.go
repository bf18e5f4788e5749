package main

import (
	"github.com/KarimElBerniUNIBO/the-legend-of-bald-sub000/system"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// gamepad stick dead zone
const stickDeadZone = 0.25

// Input turns keyboard and gamepad state into a simulation Intent.
type Input struct {
	gamepads []ebiten.GamepadID
}

func NewInput() *Input {
	return &Input{}
}

// Poll reads the current frame's input.
func (i *Input) Poll() system.Intent {
	var in system.Intent

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.MoveY += 1
	}
	in.Attack = ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyJ)
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		in.WeaponStep++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		in.WeaponStep--
	}
	in.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	i.gamepads = ebiten.AppendGamepadIDs(i.gamepads[:0])
	for _, id := range i.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		ax := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ay := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if ax < -stickDeadZone {
			in.MoveX = -1
		} else if ax > stickDeadZone {
			in.MoveX = 1
		}
		if ay < -stickDeadZone {
			in.MoveY = -1
		} else if ay > stickDeadZone {
			in.MoveY = 1
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			in.Attack = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontTopRight) {
			in.WeaponStep++
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontTopLeft) {
			in.WeaponStep--
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			in.Restart = true
		}
	}
	return in
}
