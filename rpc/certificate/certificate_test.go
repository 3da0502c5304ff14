// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bewd-social/shardd/rpc/certificate"
	"github.com/bewd-social/shardd/rpc/fixtures"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer := fixtures.Certificate()
	key := fixtures.Key()

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
	)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair.Certificate, tlsConfig.Certificates[0].Certificate, "wrong config")

	_, _, err = certificate.Get(logger.New(fixtures.LogCategory), "test", cer, "")
	assert.NotNil(t, err, "missing key")
}

func TestRead(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "certificate")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	_ = ioutil.WriteFile(certificateFile, []byte(fixtures.Certificate()), 0600)
	_ = ioutil.WriteFile(keyFile, []byte(fixtures.Key()), 0600)

	_, fingerprint, err := certificate.Read(logger.New(fixtures.LogCategory), "test", certificateFile, keyFile)
	assert.Nil(t, err, "wrong Read")

	_, expected, _ := certificate.Get(logger.New(fixtures.LogCategory), "test", fixtures.Certificate(), fixtures.Key())
	assert.Equal(t, expected, fingerprint, "wrong fingerprint")

	_, _, err = certificate.Read(logger.New(fixtures.LogCategory), "test", filepath.Join(dir, "missing.crt"), keyFile)
	assert.NotNil(t, err, "missing certificate file")
}
