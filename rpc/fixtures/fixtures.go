// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for RPC tests
package fixtures

import (
	"bytes"
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bewd-social/shardd/account"
)

const (
	dir = "testing"

	// LogCategory - logger channel for handlers under test
	LogCategory = "testing"
)

// test accounts
var (
	AdminKey    = makeKey(true, 0x11)
	BuilderKey  = makeKey(true, 0x22)
	ReceiverKey = makeKey(true, 0x33)
	LiveKey     = makeKey(false, 0x44)
)

func makeKey(test bool, b byte) *account.PrivateKey {
	key, err := account.NewPrivateKey(test, bytes.NewReader(bytes.Repeat([]byte{b}, 32)))
	if nil != err {
		panic(err)
	}
	return key
}

// SetupTestLogger - log to a temporary directory
func SetupTestLogger() {
	removeTestFiles()
	_ = os.Mkdir(dir, 0700)

	logConfig := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logConfig)
}

// TeardownTestLogger - stop logging and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	removeTestFiles()
}

func removeTestFiles() {
	_ = os.RemoveAll(dir)
}

var (
	certificateOnce sync.Once
	certificatePEM  string
	keyPEM          string
)

func generate() {
	certificateOnce.Do(func() {
		cert, key, err := certgen.NewTLSCertPair("shardd test certificate", time.Now().Add(24*time.Hour), false, nil)
		if nil != err {
			panic(err)
		}
		certificatePEM = string(cert)
		keyPEM = string(key)
	})
}

// Certificate - PEM of a self-signed test certificate
func Certificate() string {
	generate()
	return certificatePEM
}

// Key - PEM private key of the test certificate
func Key() string {
	generate()
	return keyPEM
}

// Nonce - a request nonce for the current time
func Nonce() uint64 {
	return uint64(time.Now().UnixNano())
}
