// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/util"
)

func TestCanonicalIPandPort(t *testing.T) {
	tests := []struct {
		in   string
		out  string
		ipv6 bool
	}{
		{"127.0.0.1:2130", "127.0.0.1:2130", false},
		{" 127.0.0.1 : 2130 ", "127.0.0.1:2130", false},
		{"[::1]:2130", "[::1]:2130", true},
		{"*:2130", "[::]:2130", true},
		{"[0:0:0:0:0:0:0:1]:65535", "[::1]:65535", true},
	}

	for i, item := range tests {
		c, v6, err := util.CanonicalIPandPort(item.in)
		assert.Nil(t, err, "%d: unexpected error", i)
		assert.Equal(t, item.out, c, "%d: wrong canonical form", i)
		assert.Equal(t, item.ipv6, v6, "%d: wrong IPv6 flag", i)
	}
}

func TestCanonicalIPandPortErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{"localhost:2130", fault.InvalidIPAddress},
		{"127.0.0.1", fault.InvalidIPAddress},
		{"127.0.0.1:0", fault.InvalidPortNumber},
		{"127.0.0.1:65536", fault.InvalidPortNumber},
		{"127.0.0.1:port", fault.InvalidPortNumber},
	}

	for i, item := range tests {
		_, _, err := util.CanonicalIPandPort(item.in)
		assert.Equal(t, item.err, err, "%d: wrong error for: %q", i, item.in)
	}
}
