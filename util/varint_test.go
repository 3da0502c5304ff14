// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bewd-social/shardd/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{137, []byte{0x89, 0x01}},
	{255, []byte{0xff, 0x01}},
	{256, []byte{0x80, 0x02}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

var varint64TruncatedTests = [][]byte{
	{},
	{0x80},
	{0xff},
	{0x80, 0x80},
	{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
}

func TestToVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		if result := util.ToVarint64(item.value); !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: ToVarint64(%x) -> %x  expected: %x", i, item.value, result, item.encoded)
		}
	}
}

func TestFromVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		b := append(append([]byte{}, item.encoded...), 0xff, 0x97, 0x23)
		result, count := util.FromVarint64(b)
		if result != item.value {
			t.Errorf("%d: FromVarint64(%x) -> %d  expected: %d", i, b, result, item.value)
		}
		if count != len(item.encoded) {
			t.Errorf("%d: FromVarint64(%x) count: %d  expected: %d", i, b, count, len(item.encoded))
		}
	}
}

func TestFromVarint64Truncated(t *testing.T) {
	for i, item := range varint64TruncatedTests {
		result, count := util.FromVarint64(item)
		if 0 != result || 0 != count {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: 0, 0", i, item, result, count)
		}
	}
}

func TestPackBytes(t *testing.T) {
	buffer := util.PackBytes(nil, []byte("post-1"))
	buffer = util.PackBytes(buffer, []byte{})
	buffer = util.PackBytes(buffer, []byte("SHRD"))

	first, n := util.UnpackBytes(buffer)
	assert.Equal(t, []byte("post-1"), first, "wrong first item")
	assert.Equal(t, 7, n, "wrong first length")
	buffer = buffer[n:]

	second, n := util.UnpackBytes(buffer)
	assert.Equal(t, []byte{}, second, "wrong empty item")
	assert.Equal(t, 1, n, "wrong empty length")
	buffer = buffer[n:]

	third, n := util.UnpackBytes(buffer)
	assert.Equal(t, []byte("SHRD"), third, "wrong third item")
	assert.Equal(t, len(buffer), n, "wrong third length")
}

func TestUnpackBytesTruncated(t *testing.T) {
	item, n := util.UnpackBytes([]byte{0x05, 'a', 'b'})
	assert.Nil(t, item, "truncated item returned data")
	assert.Equal(t, 0, n, "truncated item consumed bytes")

	item, n = util.UnpackBytes([]byte{})
	assert.Nil(t, item, "empty buffer returned data")
	assert.Equal(t, 0, n, "empty buffer consumed bytes")
}
