// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/pem"
	"io/ioutil"
	"net"
	"strconv"

	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/nodes"
	"github.com/bewd-social/shardd/rpc/certificate"
	"github.com/bewd-social/shardd/rpc/listeners"
	"github.com/bewd-social/shardd/util"
)

// build the TXT records that advertise this node
//
// announced addresses sharing a port are combined into one record
func dnsTXT(rpcConfig *listeners.RPCConfiguration) ([]string, error) {

	if 0 == len(rpcConfig.Announce) {
		return nil, fault.MissingParameters
	}

	data, err := ioutil.ReadFile(rpcConfig.Certificate)
	if nil != err {
		return nil, err
	}
	block, _ := pem.Decode(data)
	if nil == block || "CERTIFICATE" != block.Type {
		return nil, fault.InvalidFingerprint
	}
	fingerprint := certificate.Fingerprint(block.Bytes)

	records := make([]*nodes.Node, 0, len(rpcConfig.Announce))
	byPort := make(map[uint16]*nodes.Node)

	for _, announce := range rpcConfig.Announce {
		canonical, _, err := util.CanonicalIPandPort(announce)
		if nil != err {
			return nil, err
		}
		host, p, _ := net.SplitHostPort(canonical)
		n, _ := strconv.Atoi(p)
		port := uint16(n)
		IP := net.ParseIP(host)

		node, ok := byPort[port]
		if !ok || (nil != IP.To4() && nil != node.IPv4) || (nil == IP.To4() && nil != node.IPv6) {
			node = &nodes.Node{
				RPCPort:     port,
				Fingerprint: fingerprint[:],
			}
			byPort[port] = node
			records = append(records, node)
		}
		if nil != IP.To4() {
			node.IPv4 = IP.To4()
		} else {
			node.IPv6 = IP
		}
	}

	result := make([]string, len(records))
	for i, node := range records {
		result[i] = node.String()
	}
	return result, nil
}
