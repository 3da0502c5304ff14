// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bewd-social/shardd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/var/lib/shardd/data", util.EnsureAbsolute("/var/lib/shardd", "data"), "relative path not joined")
	assert.Equal(t, "/tmp/x.log", util.EnsureAbsolute("/var/lib/shardd", "/tmp/./x.log"), "absolute path not cleaned")
}

func TestEnsureFileExists(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "present")
	assert.False(t, util.EnsureFileExists(name), "file should not exist yet")

	err = ioutil.WriteFile(name, []byte("x"), 0600)
	assert.Nil(t, err, "write file")
	assert.True(t, util.EnsureFileExists(name), "file should exist")
}

func TestIsPlainName(t *testing.T) {
	assert.True(t, util.IsPlainName("shardd.leveldb"), "plain name rejected")
	assert.False(t, util.IsPlainName("data/shardd.leveldb"), "path accepted")
	assert.False(t, util.IsPlainName(""), "empty name accepted")
}
