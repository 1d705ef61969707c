// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package placement provides the transform state of a model placed in
// the AR view: position, rotation and uniform scale, together with the
// placed / unplaced phase that gates whether the model is shown at all.
//
// All operations are value methods that return the new state, so the
// state can be tested without any rendering surface.
package placement

//go:generate core generate

import (
	"cogentcore.org/core/math32"
)

const (
	// MinScale is the smallest allowed uniform scale.
	MinScale float32 = 0.5

	// MaxScale is the largest allowed uniform scale.
	MaxScale float32 = 3.0

	// ScaleStep is the scale change per Bigger / Smaller activation.
	ScaleStep float32 = 0.2

	// RotateStep is the rotation change in radians per Rotate activation.
	RotateStep float32 = math32.Pi / 4

	// MoveStep is the position change per move control activation.
	MoveStep float32 = 0.1
)

// Phases are the phases of the AR view.
type Phases int32 //enums:enum

const (
	// Unplaced is the initial phase: the model is not shown and the
	// adjustment controls are hidden.
	Unplaced Phases = iota

	// Placed is the phase after the user confirmed placement.
	Placed
)

// Axes are the rotation axes.
type Axes int32 //enums:enum

const (
	X Axes = iota
	Y
	Z
)

// Transform is the rigid transform applied to a placed model as a whole.
type Transform struct {

	// Pos is the position offset.
	Pos math32.Vector3

	// Rot is the Euler rotation in radians, each axis in [0, 2π).
	Rot math32.Vector3

	// Scale is the uniform scale, in [MinScale, MaxScale].
	Scale float32
}

// Defaults returns the default transform: origin, no rotation, scale 1.
func Defaults() Transform {
	return Transform{Scale: 1}
}

// IsDefault returns whether t is the default transform.
func (t Transform) IsDefault() bool {
	return t == Defaults()
}

// State is the placement state of the AR view.
type State struct {
	Phase     Phases
	Transform Transform
}

// New returns a new unplaced state with the default transform.
func New() State {
	return State{Transform: Defaults()}
}

// Place confirms placement. It has no effect once placed.
func (s State) Place() State {
	s.Phase = Placed
	return s
}

// IsPlaced returns whether placement has been confirmed.
func (s State) IsPlaced() bool {
	return s.Phase == Placed
}

// AdjustScale changes the scale by delta, clamped to [MinScale, MaxScale].
func (s State) AdjustScale(delta float32) State {
	if !s.IsPlaced() {
		return s
	}
	s.Transform.Scale = math32.Clamp(s.Transform.Scale+delta, MinScale, MaxScale)
	return s
}

// Bigger increases the scale by one [ScaleStep].
func (s State) Bigger() State {
	return s.AdjustScale(ScaleStep)
}

// Smaller decreases the scale by one [ScaleStep].
func (s State) Smaller() State {
	return s.AdjustScale(-ScaleStep)
}

// Rotate rotates around the given axis by delta radians.
func (s State) Rotate(axis Axes, delta float32) State {
	if !s.IsPlaced() {
		return s
	}
	r := &s.Transform.Rot
	switch axis {
	case X:
		r.X = normAngle(r.X + delta)
	case Y:
		r.Y = normAngle(r.Y + delta)
	case Z:
		r.Z = normAngle(r.Z + delta)
	}
	return s
}

// Move translates the position by the given offset.
func (s State) Move(dx, dy, dz float32) State {
	if !s.IsPlaced() {
		return s
	}
	s.Transform.Pos = s.Transform.Pos.Add(math32.Vec3(dx, dy, dz))
	return s
}

// Reset restores the default transform, staying in the current phase.
func (s State) Reset() State {
	s.Transform = Defaults()
	return s
}

// normAngle returns a in [0, 2π).
func normAngle(a float32) float32 {
	a = math32.Mod(a, 2*math32.Pi)
	if a < 0 {
		a += 2 * math32.Pi
	}
	if a >= 2*math32.Pi {
		a = 0
	}
	return a
}
