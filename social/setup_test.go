// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package social_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/ledger"
	"github.com/bewd-social/shardd/shards"
	"github.com/bewd-social/shardd/social"
	"github.com/bewd-social/shardd/storage"
)

const (
	testingDirName = "testing"
)

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func setup(t *testing.T) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(testingDirName+"/social.leveldb", storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown() {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func makeAccount(t *testing.T, b byte) *account.Account {
	key, err := account.NewPrivateKey(true, bytes.NewReader(bytes.Repeat([]byte{b}, 32)))
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}
	return key.Account()
}

// settlement that records its calls
type recordingSettlement struct {
	calls []settleCall
	err   error
}

type settleCall struct {
	from    *account.Account
	to      *account.Account
	postID  string
	shards  uint64
	payment int64
}

func (r *recordingSettlement) Settle(from *account.Account, to *account.Account, postID string, shards uint64, payment int64) error {
	r.calls = append(r.calls, settleCall{from, to, postID, shards, payment})
	return r.err
}

func newSocial(settlement social.Settlement) (*social.Social, *shards.Contract) {
	log := logger.New("testing")
	contract := shards.New(log, ledger.DefaultLifetime, nil)
	return social.New(log, contract, settlement), contract
}
