// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package media

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

// ErrCameraUnavailable matches every [*UnavailableError] under [errors.Is].
var ErrCameraUnavailable = errors.New("camera unavailable")

// Reasons are the reasons a camera can be unavailable.
type Reasons int32 //enums:enum

const (
	// Other is any failure not covered by another reason.
	Other Reasons = iota

	// PermissionDenied is when the user or platform refused access.
	PermissionDenied

	// NoDevice is when no camera matches the constraints.
	NoDevice

	// InsecureContext is when the page is not served from a secure
	// origin, so the browser does not expose the camera at all.
	InsecureContext
)

// UnavailableError is returned when a camera cannot be acquired.
// It is a recoverable condition: the view keeps working without a
// live background.
type UnavailableError struct {
	Reason Reasons

	// Err is the underlying platform error, if any.
	Err error
}

func (e *UnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %v", ErrCameraUnavailable, e.Reason)
	}
	return fmt.Sprintf("%v: %v: %v", ErrCameraUnavailable, e.Reason, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

func (e *UnavailableError) Is(target error) bool {
	return target == ErrCameraUnavailable
}

// Unavailable returns err as an [*UnavailableError], wrapping it with
// the [Other] reason if it is not one already.
func Unavailable(err error) *UnavailableError {
	var ue *UnavailableError
	if errors.As(err, &ue) {
		return ue
	}
	return &UnavailableError{Reason: Other, Err: err}
}
