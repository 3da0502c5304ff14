// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/storage"
)

// DayInLedgers - number of ledgers closed per day at a 5 second close interval
const DayInLedgers = 17280

// Kind - the family of a record whose lifetime is tracked
type Kind byte

// record families
const (
	Instance Kind = 'I'
	Post     Kind = 'P'
	Account  Kind = 'A'
)

func (k Kind) String() string {
	switch k {
	case Instance:
		return "instance"
	case Post:
		return "post"
	case Account:
		return "account"
	default:
		return "unknown"
	}
}

// ParseKind - record family from its name
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{Instance, Post, Account} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fault.InvalidItem
}

// Lifetime - extension policy in ledgers
type Lifetime struct {
	Threshold uint64
	Bump      uint64
}

// DefaultLifetime - extend to one week once less than six days remain
var DefaultLifetime = Lifetime{
	Threshold: 6 * DayInLedgers,
	Bump:      7 * DayInLedgers,
}

// instance key shared by all contract state
var instanceKey = []byte("shards")

func lifetimeKey(kind Kind, key []byte) []byte {
	return append([]byte{byte(kind)}, key...)
}

// Extend - keep a record live for at least Threshold more ledgers
//
// returns the resulting live-until ledger
func (l Lifetime) Extend(trx storage.Transaction, kind Kind, key []byte) uint64 {
	current := Sequence(trx)
	k := lifetimeKey(kind, key)
	liveUntil, found := trx.GetN(storage.Pool.Lifetime, k)
	if found && liveUntil >= current+l.Threshold {
		return liveUntil
	}
	liveUntil = current + l.Bump
	trx.PutN(storage.Pool.Lifetime, k, liveUntil)
	return liveUntil
}

// ExtendInstance - extend the shared contract instance
func (l Lifetime) ExtendInstance(trx storage.Transaction) uint64 {
	return l.Extend(trx, Instance, instanceKey)
}

// LiveUntil - committed live-until ledger of a record
func LiveUntil(kind Kind, key []byte) (uint64, bool) {
	return storage.Pool.Lifetime.GetN(lifetimeKey(kind, key))
}

// InstanceLiveUntil - committed live-until ledger of the contract instance
func InstanceLiveUntil() (uint64, bool) {
	return LiveUntil(Instance, instanceKey)
}

// Expired - a record whose lifetime has passed
type Expired struct {
	Kind      Kind
	Key       []byte
	LiveUntil uint64
}

// ExpiredRecords - scan the lifetime table for records not live at ledger current
func ExpiredRecords(current uint64) ([]Expired, error) {
	expired := []Expired{}
	err := storage.Pool.Lifetime.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if len(key) < 1 || len(value) < 8 {
			return nil
		}
		liveUntil := storage.DecodeN(value)
		if liveUntil < current {
			expired = append(expired, Expired{
				Kind:      Kind(key[0]),
				Key:       key[1:],
				LiveUntil: liveUntil,
			})
		}
		return nil
	})
	return expired, err
}
