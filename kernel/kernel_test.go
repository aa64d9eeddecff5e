// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	lib, err := New(0.5)
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), lib.VoxelSize())
	assert.False(t, lib.Closed())

	require.NoError(t, lib.Close())
	assert.True(t, lib.Closed())
	require.NoError(t, lib.Close())
}

func TestNewInvalidVoxelSize(t *testing.T) {
	for _, size := range []float32{0, -0.5} {
		_, err := New(size)
		assert.Error(t, err)
	}
}
