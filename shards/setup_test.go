// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shards_test

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/authority"
	"github.com/bewd-social/shardd/ledger"
	"github.com/bewd-social/shardd/messagebus"
	"github.com/bewd-social/shardd/shards"
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

	err := storage.Initialise(testingDirName+"/shards.leveldb", storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown() {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

// deterministic test account
func makeAccount(t *testing.T, b byte) *account.Account {
	key, err := account.NewPrivateKey(true, bytes.NewReader(bytes.Repeat([]byte{b}, 32)))
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}
	return key.Account()
}

type fixture struct {
	contract *shards.Contract
	events   <-chan messagebus.Message
	admin    *account.Account
	alice    *account.Account
	bob      *account.Account
	carol    *account.Account
}

func newFixture(t *testing.T) *fixture {
	bus := messagebus.NewBroadcastQueue()
	return &fixture{
		contract: shards.New(logger.New("testing"), ledger.DefaultLifetime, bus),
		events:   bus.Chan(1000),
		admin:    makeAccount(t, 1),
		alice:    makeAccount(t, 2),
		bob:      makeAccount(t, 3),
		carol:    makeAccount(t, 4),
	}
}

// drain all events released so far
func (f *fixture) drain(t *testing.T) []shards.Event {
	events := []shards.Event{}
	for {
		select {
		case m := <-f.events:
			var e shards.Event
			if err := json.Unmarshal(m.Parameters[0], &e); nil != err {
				t.Fatalf("event unmarshal error: %s", err)
			}
			if m.Command != e.Kind {
				t.Errorf("command: %q does not match kind: %q", m.Command, e.Kind)
			}
			events = append(events, e)
		default:
			return events
		}
	}
}

var defaultMetadata = shards.Metadata{
	Decimal: 0,
	Name:    "Post",
	Symbol:  "SHRD",
}

// create a post owned by admin
func (f *fixture) post(t *testing.T, postID string, threshold uint64, total uint64) uint64 {
	base, err := f.contract.InitializePost(authority.Accounts(f.admin), f.admin, postID, defaultMetadata, threshold, total, false)
	if nil != err {
		t.Fatalf("initialise post: %q  error: %s", postID, err)
	}
	return base
}

// owners of every shard of a post
func (f *fixture) owners(t *testing.T, postID string) []*account.Account {
	owners, err := f.contract.Owners(postID, 0, shards.MaximumOwnersCount)
	if nil != err {
		t.Fatalf("owners: %q  error: %s", postID, err)
	}
	result := make([]*account.Account, len(owners))
	for i, o := range owners {
		if uint64(i) != o.Index {
			t.Fatalf("owners: %q  entry: %d has index: %d", postID, i, o.Index)
		}
		result[i] = o.Account
	}
	return result
}

// count of owner entries equal to an account
func countOwned(owners []*account.Account, a *account.Account) uint64 {
	n := uint64(0)
	for _, o := range owners {
		if o.Equal(a) {
			n += 1
		}
	}
	return n
}
