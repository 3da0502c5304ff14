// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/storage"
)

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown()

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")
}

func TestCommit(t *testing.T) {
	setup(t)
	defer teardown()

	loadTestData(t)

	p := storage.Pool.TestData
	for _, e := range expectedElements {
		assert.Equal(t, e.Value, p.Get(e.Key), "value of: %s", e.Key)
		assert.True(t, p.Has(e.Key), "has: %s", e.Key)
	}
	assert.Nil(t, p.Get([]byte("/nonexistent")), "missing key")
	assert.False(t, p.Has([]byte("/nonexistent")), "missing key")
}

func TestAbortDiscardsWrites(t *testing.T) {
	setup(t)
	defer teardown()

	loadTestData(t)

	p := storage.Pool.TestData
	failure := errors.New("failed")

	err := storage.Atomically(func(trx storage.Transaction) error {
		trx.Put(p, []byte("key-one"), []byte("changed"))
		trx.Delete(p, []byte("key-two"))
		trx.Put(p, []byte("key-eight"), []byte("data-eight"))
		return failure
	})
	assert.Equal(t, failure, err, "error passes through")

	assert.Equal(t, []byte("data-one"), p.Get([]byte("key-one")), "overwrite discarded")
	assert.Equal(t, []byte("data-two"), p.Get([]byte("key-two")), "delete discarded")
	assert.False(t, p.Has([]byte("key-eight")), "insert discarded")

	// the next batch must not see the aborted writes either
	err = storage.Atomically(func(trx storage.Transaction) error {
		assert.Equal(t, []byte("data-one"), trx.Get(p, []byte("key-one")), "clean batch")
		assert.False(t, trx.Has(p, []byte("key-eight")), "clean batch")
		return nil
	})
	assert.Nil(t, err, "empty commit")
}

func TestReadThrough(t *testing.T) {
	setup(t)
	defer teardown()

	loadTestData(t)

	p := storage.Pool.TestData

	err := storage.Atomically(func(trx storage.Transaction) error {
		trx.Put(p, []byte("key-one"), []byte("pending"))
		trx.Delete(p, []byte("key-two"))

		assert.Equal(t, []byte("pending"), trx.Get(p, []byte("key-one")), "pending write visible")
		assert.Nil(t, trx.Get(p, []byte("key-two")), "pending delete shadows database")
		assert.False(t, trx.Has(p, []byte("key-two")), "pending delete shadows database")
		assert.Equal(t, []byte("data-three"), trx.Get(p, []byte("key-three")), "untouched key")

		// pool reads see committed data only
		assert.Equal(t, []byte("data-one"), p.Get([]byte("key-one")), "committed value")
		return nil
	})
	assert.Nil(t, err, "commit")

	assert.Equal(t, []byte("pending"), p.Get([]byte("key-one")), "after commit")
	assert.False(t, p.Has([]byte("key-two")), "after commit")
}

func TestNumericRecords(t *testing.T) {
	setup(t)
	defer teardown()

	p := storage.Pool.TestData

	err := storage.Atomically(func(trx storage.Transaction) error {
		trx.PutN(p, []byte("n"), 0x0102030405060708)
		trx.Put(p, []byte("nb"), append(storage.EncodeN(42), "tail"...))

		n, found := trx.GetN(p, []byte("n"))
		assert.True(t, found, "pending N")
		assert.Equal(t, uint64(0x0102030405060708), n, "pending N")

		n, b := trx.GetNB(p, []byte("nb"))
		assert.Equal(t, uint64(42), n, "pending NB count")
		assert.Equal(t, []byte("tail"), b, "pending NB bytes")
		return nil
	})
	assert.Nil(t, err, "commit")

	n, found := p.GetN([]byte("n"))
	assert.True(t, found, "N")
	assert.Equal(t, uint64(0x0102030405060708), n, "N")

	n, b := p.GetNB([]byte("nb"))
	assert.Equal(t, uint64(42), n, "NB count")
	assert.Equal(t, []byte("tail"), b, "NB bytes")

	_, found = p.GetN([]byte("absent"))
	assert.False(t, found, "absent N")
	_, b = p.GetNB([]byte("absent"))
	assert.Nil(t, b, "absent NB")
}
