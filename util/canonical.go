// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bewd-social/shardd/fault"
)

// CanonicalIPandPort - make the IP:Port canonical
//
// a leading "*" is accepted as the wildcard address and
// becomes "[::]" which listens on both IPv4 and IPv6
//
// examples:
//
//	IPv4:  127.0.0.1:1234
//	IPv6:  [::1]:1234
//
// the second result is true for an IPv6 address
func CanonicalIPandPort(hostPort string) (string, bool, error) {

	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return "", false, fault.InvalidIPAddress
	}

	host = strings.TrimSpace(host)
	if "*" == host {
		host = "::"
	}

	IP := net.ParseIP(host)
	if nil == IP {
		return "", false, fault.InvalidIPAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err {
		return "", false, fault.InvalidPortNumber
	}
	if numericPort < 1 || numericPort > 65535 {
		return "", false, fault.InvalidPortNumber
	}

	if nil != IP.To4() {
		return IP.String() + ":" + strconv.Itoa(numericPort), false, nil
	}
	return "[" + IP.String() + "]:" + strconv.Itoa(numericPort), true, nil
}
