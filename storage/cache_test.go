// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache(t *testing.T) {
	c := newCache()

	_, found := c.Get("a")
	assert.False(t, found, "empty cache")

	c.Set(dbPut, "a", []byte("one"))
	value, found := c.Get("a")
	assert.True(t, found, "after put")
	assert.Equal(t, []byte("one"), value, "after put")

	c.Set(dbDelete, "a", nil)
	value, found = c.Get("a")
	assert.True(t, found, "deleted key is still known to the batch")
	assert.Nil(t, value, "deleted key has no value")

	c.Clear()
	_, found = c.Get("a")
	assert.False(t, found, "after clear")
}
