// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS JSON-RPC listeners with a connection limit
package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bewd-social/shardd/counter"
	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/util"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// Listener - a started server that can be closed
type Listener interface {
	Serve() error
	Close() error
}

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
	Announce           []string `gluamapper:"announce" json:"announce"`
}

type rpcListener struct {
	sync.Mutex

	log            *logger.L
	count          *counter.Counter
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
	addresses      []string
	listeners      []net.Listener
	wg             sync.WaitGroup
}

// NewRPC - validate configuration and create a listener for server
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	// validate all listen addresses
	addresses := make([]string, len(configuration.Listen))
	for i, listen := range configuration.Listen {
		address, _, err := util.CanonicalIPandPort(listen)
		if nil != err {
			log.Errorf("invalid %s listen: %q  error: %s", logName, listen, err)
			return nil, err
		}
		addresses[i] = address
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	r := &rpcListener{
		log:            log,
		count:          count,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
		addresses:      addresses,
	}
	return r, nil
}

// Serve - start accepting on every address
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for _, address := range r.addresses {
		r.log.Infof("starting RPC server: %s", address)
		listener, err := tls.Listen("tcp", address, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			r.closeAll()
			return err
		}
		r.listeners = append(r.listeners, listener)

		r.wg.Add(1)
		go r.accept(listener)
	}
	return nil
}

// Close - stop accepting and wait for the accept loops to finish
//
// connections already being served are left to complete
func (r *rpcListener) Close() error {
	r.Lock()
	r.closeAll()
	r.Unlock()

	r.wg.Wait()
	return nil
}

func (r *rpcListener) closeAll() {
	for _, listener := range r.listeners {
		_ = listener.Close()
	}
	r.listeners = nil
}

func (r *rpcListener) accept(listener net.Listener) {
	defer r.wg.Done()

	for {
		conn, err := listener.Accept()
		if nil != err {
			r.log.Infof("rpc accept terminated: %s", err)
			break
		}
		if r.count.Increment() <= r.maxConnections {
			go func() {
				r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
				_ = conn.Close()
				r.count.Decrement()
			}()
		} else {
			r.count.Decrement()
			r.log.Warnf("connection limit: %d reached, reject: %s", r.maxConnections, conn.RemoteAddr())
			_ = conn.Close()
		}
	}
}
