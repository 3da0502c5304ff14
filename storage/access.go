// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// Access - raw database access with a pending batch
type Access interface {
	Abort()
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	Iterator(*ldb_util.Range) iterator.Iterator
	Pending([]byte) ([]byte, bool)
	Put([]byte, []byte)
}

type accessData struct {
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, cache Cache) Access {
	return &accessData{
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

func (d *accessData) Put(key []byte, value []byte) {
	v := make([]byte, len(value))
	copy(v, value)
	d.cache.Set(dbPut, string(key), v)
	d.batch.Put(key, v)
}

func (d *accessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// Commit - write the batch and clear pending state
func (d *accessData) Commit() error {
	err := d.db.Write(d.batch, nil)
	d.batch.Reset()
	d.cache.Clear()
	return err
}

// Pending - the value a key has in the current batch
func (d *accessData) Pending(key []byte) ([]byte, bool) {
	return d.cache.Get(string(key))
}

// Get - committed value only
func (d *accessData) Get(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

func (d *accessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *accessData) Has(key []byte) (bool, error) {
	return d.db.Has(key, nil)
}

func (d *accessData) Abort() {
	d.batch.Reset()
	d.cache.Clear()
}
