// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nodes

import (
	"encoding/hex"
	"net"
	"strconv"
	"strings"

	"github.com/bewd-social/shardd/fault"
)

// Tag - leading word of every applicable TXT record
const Tag = "shardd=v1"

const fingerprintLength = 2 * 32 // characters

// Node - the RPC endpoint advertised by one TXT record
type Node struct {
	IPv4        net.IP `json:"ipv4,omitempty"`
	IPv6        net.IP `json:"ipv6,omitempty"`
	RPCPort     uint16 `json:"rpcPort"`
	Fingerprint []byte `json:"fingerprint"`
}

// ParseTXT - decode a DNS TXT record of the form
//
//	shardd=v1 a=<IPv4;IPv6> r=<PORT> f=<SHA3-256(cert)>
//
// each of a, r and f must occur exactly once
func ParseTXT(s string) (*Node, error) {

	n := &Node{}

	countA := 0
	countF := 0
	countR := 0

words:
	for i, w := range strings.Split(strings.TrimSpace(s), " ") {

		if 0 == i {
			if Tag == w {
				continue words
			}
			return nil, fault.InvalidDnsTxtRecord
		}

		if "" == w {
			continue words
		}

		// <letter>=<parameter>
		if len(w) < 3 || '=' != w[1] {
			return nil, fault.InvalidDnsTxtRecord
		}

		parameter := w[2:]
		err := error(nil)
		switch w[0] {
		case 'a':
			for _, address := range strings.Split(parameter, ";") {
				if "" == address {
					continue
				}
				if '[' == address[0] && ']' == address[len(address)-1] {
					address = address[1 : len(address)-1]
				}
				IP := net.ParseIP(address)
				if nil == IP {
					err = fault.InvalidIPAddress
					break
				}
				if nil != IP.To4() {
					n.IPv4 = IP.To4()
				} else {
					n.IPv6 = IP
				}
			}
			countA += 1

		case 'r':
			n.RPCPort, err = getPort(parameter)
			countR += 1

		case 'f':
			if len(parameter) != fingerprintLength {
				err = fault.InvalidFingerprint
			} else {
				n.Fingerprint, err = hex.DecodeString(parameter)
				if nil != err {
					err = fault.InvalidFingerprint
				}
			}
			countF += 1

		default:
			err = fault.InvalidDnsTxtRecord
		}
		if nil != err {
			return nil, err
		}
	}

	if countA != 1 || countF != 1 || countR != 1 {
		return nil, fault.InvalidDnsTxtRecord
	}
	if nil == n.IPv4 && nil == n.IPv6 {
		return nil, fault.InvalidIPAddress
	}

	return n, nil
}

// String - encode as a TXT record
func (n Node) String() string {
	addresses := make([]string, 0, 2)
	if nil != n.IPv4 {
		addresses = append(addresses, n.IPv4.String())
	}
	if nil != n.IPv6 {
		addresses = append(addresses, "["+n.IPv6.String()+"]")
	}
	return Tag +
		" a=" + strings.Join(addresses, ";") +
		" r=" + strconv.Itoa(int(n.RPCPort)) +
		" f=" + hex.EncodeToString(n.Fingerprint)
}

// Connect - host:port for a client, IPv4 preferred
func (n Node) Connect() string {
	port := strconv.Itoa(int(n.RPCPort))
	if nil != n.IPv4 {
		return net.JoinHostPort(n.IPv4.String(), port)
	}
	return net.JoinHostPort(n.IPv6.String(), port)
}

func getPort(s string) (uint16, error) {
	port, err := strconv.Atoi(s)
	if nil != err {
		return 0, fault.InvalidPortNumber
	}
	if port < 1 || port > 65535 {
		return 0, fault.InvalidPortNumber
	}
	return uint16(port), nil
}

// Decode - parse a set of TXT strings keeping only the valid records
func Decode(texts []string) ([]Node, error) {
	result := make([]Node, 0, len(texts))
	for _, t := range texts {
		if node, err := ParseTXT(t); nil == err {
			result = append(result, *node)
		}
	}
	if 0 == len(result) {
		return nil, fault.NoNodesFound
	}
	return result, nil
}
