// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nodes

import (
	"net"
	"strings"

	"github.com/miekg/dns"

	"github.com/bitmark-inc/logger"

	"github.com/bewd-social/shardd/fault"
)

const (
	resolverFile       = "/etc/resolv.conf"
	maximumNameServers = 3 // resolv.conf(5) MAXNS
)

// Resolver - fetch the raw TXT strings for a domain
type Resolver func(domain string) ([]string, error)

// Lookuper - interface to resolve a nodes domain
type Lookuper interface {
	Lookup(domain string) ([]Node, error)
}

type lookuper struct {
	log     *logger.L
	resolve Resolver
}

// NewLookuper - create a lookuper; a nil resolver queries the
// system name servers directly
func NewLookuper(log *logger.L, resolve Resolver) Lookuper {
	if nil == resolve {
		resolve = ResolveTXT
	}
	return &lookuper{
		log:     log,
		resolve: resolve,
	}
}

// Lookup - resolve and decode every applicable TXT record
//
// records that do not parse are skipped
func (l *lookuper) Lookup(domain string) ([]Node, error) {
	log := l.log

	domain = strings.TrimSpace(domain)
	if "" == domain {
		return nil, fault.InvalidNodeDomain
	}

	texts, err := l.resolve(domain)
	if nil != err {
		log.Errorf("lookup TXT: %q  error: %s", domain, err)
		return nil, err
	}

	result := make([]Node, 0, len(texts))
	for i, t := range texts {
		node, err := ParseTXT(t)
		if nil != err {
			log.Debugf("ignore TXT[%d]: %q  error: %s", i, t, err)
			continue
		}
		log.Infof("result[%d]: IPv4: %q  IPv6: %q  rpc: %d", i, node.IPv4, node.IPv6, node.RPCPort)
		log.Infof("result[%d]: rpc fingerprint: %x", i, node.Fingerprint)
		result = append(result, *node)
	}

	if 0 == len(result) {
		return nil, fault.NoNodesFound
	}
	return result, nil
}

// ResolveTXT - query the resolv.conf name servers for TXT records
//
// the first server giving an answer wins
func ResolveTXT(domain string) ([]string, error) {
	conf, err := dns.ClientConfigFromFile(resolverFile)
	if nil != err {
		return nil, err
	}

	servers := conf.Servers
	if len(servers) > maximumNameServers {
		servers = servers[:maximumNameServers]
	}

	err = fault.NoNodesFound
	for _, server := range servers {
		texts, e := exchangeTXT(net.JoinHostPort(server, conf.Port), domain)
		if nil != e {
			err = e
			continue
		}
		if 0 != len(texts) {
			return texts, nil
		}
	}
	return nil, err
}

func exchangeTXT(server string, domain string) ([]string, error) {
	c := dns.Client{}
	msg := dns.Msg{}
	msg.SetQuestion(dns.Fqdn(domain), dns.TypeTXT)

	r, _, err := c.Exchange(&msg, server)
	if nil != err {
		return nil, err
	}

	texts := make([]string, 0, len(r.Answer))
	for _, rr := range r.Answer {
		if txt, ok := rr.(*dns.TXT); ok {
			// long records arrive split into 255 byte strings
			texts = append(texts, strings.Join(txt.Txt, ""))
		}
	}
	return texts, nil
}
