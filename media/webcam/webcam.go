// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package webcam implements the media layer on the web, using
// navigator.mediaDevices.getUserMedia and an HTML video element
// placed behind the app canvas.
package webcam

import (
	"cogentcore.org/furnish/media"
)

// Reason returns the reason for a getUserMedia rejection with the given
// DOMException name.
func Reason(name string) media.Reasons {
	switch name {
	case "NotAllowedError", "PermissionDeniedError":
		return media.PermissionDenied
	case "NotFoundError", "DevicesNotFoundError", "OverconstrainedError", "ConstraintNotSatisfiedError":
		return media.NoDevice
	case "SecurityError":
		return media.InsecureContext
	}
	return media.Other
}

// facingMode returns the getUserMedia facingMode value for f.
func facingMode(f media.Facings) string {
	if f == media.FacingUser {
		return "user"
	}
	return "environment"
}

// constraints returns the getUserMedia constraints object for c.
func constraints(c media.Constraints) map[string]any {
	return map[string]any{
		"video": map[string]any{
			"facingMode": facingMode(c.Facing),
			"width":      map[string]any{"ideal": c.Width},
			"height":     map[string]any{"ideal": c.Height},
		},
		"audio": c.Audio,
	}
}
