// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gstcam

import (
	"testing"
	"time"

	"cogentcore.org/furnish/media"
	"github.com/stretchr/testify/assert"
)

func TestCaps(t *testing.T) {
	c := media.DefaultConstraints()
	assert.Equal(t, "video/x-raw,format=RGBA,width=1920,height=1080,framerate=[1/1,30/1]", caps(c, 30))
	c.Width, c.Height = 640, 480
	assert.Equal(t, "video/x-raw,format=RGBA,width=640,height=480", caps(c, 0))
	assert.Equal(t, 640*480*4, frameSize(640, 480))
}

func TestDefaults(t *testing.T) {
	c := &Config{}
	c.Defaults()
	assert.Equal(t, "autovideosrc", c.Source)
	assert.Equal(t, 30, c.FPS)
	assert.Equal(t, 5*time.Second, c.StartTimeout)
}
