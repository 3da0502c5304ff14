// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authority_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/authority"
	"github.com/bewd-social/shardd/fault"
)

func makeKey(t *testing.T, test bool, b byte) *account.PrivateKey {
	key, err := account.NewPrivateKey(test, bytes.NewReader(bytes.Repeat([]byte{b}, 32)))
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}
	return key
}

func TestFixed(t *testing.T) {
	a := makeKey(t, true, 1).Account()
	b := makeKey(t, true, 2).Account()
	c := makeKey(t, true, 3).Account()

	auth := authority.Accounts(a, b)
	assert.Nil(t, auth.RequireAuth(a), "a allowed")
	assert.Nil(t, auth.RequireAuth(b), "b allowed")
	assert.Equal(t, fault.Unauthorized, auth.RequireAuth(c), "c refused")
	assert.Equal(t, fault.Unauthorized, auth.RequireAuth(nil), "nil refused")

	assert.Equal(t, fault.Unauthorized, authority.Nobody.RequireAuth(a), "nobody")
	assert.Nil(t, authority.Anyone.RequireAuth(c), "anyone")
	assert.Equal(t, fault.Unauthorized, authority.Anyone.RequireAuth(nil), "anyone but nil")
}

func TestVerify(t *testing.T) {
	key := makeKey(t, true, 7)
	other := makeKey(t, true, 8)
	signer := key.Account()

	nonce := now()
	message := authority.Pack("Shards.Build", nonce, []byte("p1"), signer.Bytes())
	signature := key.Sign(message)

	v := authority.NewVerifier(true, time.Minute)

	auth, err := v.Verify(signer, nonce, message, signature)
	if assert.Nil(t, err, "valid request") {
		assert.Nil(t, auth.RequireAuth(signer), "signer authorised")
		assert.Equal(t, fault.Unauthorized, auth.RequireAuth(other.Account()), "only the signer")
	}

	_, err = v.Verify(signer, nonce, message, signature)
	assert.Equal(t, fault.ReplayedRequest, err, "replay")

	_, err = v.Verify(other.Account(), nonce, message, other.Sign([]byte("different")))
	assert.Equal(t, fault.InvalidSignature, err, "bad signature")

	// a failed verification must not poison the replay cache
	good := other.Sign(message)
	_, err = v.Verify(signer, nonce, message, good)
	assert.Equal(t, fault.InvalidSignature, err, "signature by someone else")
	_, err = v.Verify(other.Account(), nonce, message, good)
	assert.Nil(t, err, "same signature from its real signer")

	_, err = v.Verify(nil, nonce, message, signature)
	assert.Equal(t, fault.MissingParameters, err, "missing signer")
	_, err = v.Verify(signer, nonce, message, nil)
	assert.Equal(t, fault.MissingParameters, err, "missing signature")

	live := makeKey(t, false, 9)
	_, err = v.Verify(live.Account(), nonce, message, live.Sign(message))
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "live key on test network")
}

func TestPack(t *testing.T) {
	a := authority.Pack("M", 5, []byte("ab"), []byte{})
	assert.Equal(t, []byte{1, 'M', 2, 'a', 'b', 0, 5}, a, "packed layout")

	// moving bytes between fields changes the message
	b := authority.Pack("M", 5, []byte("a"), []byte("b"))
	assert.NotEqual(t, a, b, "field boundaries")

	c := authority.Pack("M", 6, []byte("ab"), []byte{})
	assert.NotEqual(t, a, c, "nonce")
}

func TestRequest(t *testing.T) {
	key := makeKey(t, true, 11)
	signer := key.Account()

	r := authority.Request{Nonce: now()}
	message := authority.Pack("Shards.Burn", r.Nonce, authority.PackAccount(signer), authority.PackInt(10))
	r.Sign(key, message)

	v := authority.NewVerifier(true, time.Minute)
	auth, err := r.Authorise(v, signer, message)
	if assert.Nil(t, err, "signed request") {
		assert.Nil(t, auth.RequireAuth(signer), "signer authorised")
	}

	_, err = r.Authorise(v, signer, message)
	assert.Equal(t, fault.ReplayedRequest, err, "same request twice")
}

func TestReplayAfterWindow(t *testing.T) {
	key := makeKey(t, true, 12)
	signer := key.Account()
	window := 50 * time.Millisecond

	r := authority.Request{Nonce: now()}
	message := authority.Pack("Shards.TransferFrom", r.Nonce, authority.PackAccount(signer), authority.PackInt(60))
	r.Sign(key, message)

	v := authority.NewVerifier(true, window)
	_, err := r.Authorise(v, signer, message)
	assert.Nil(t, err, "first use")

	time.Sleep(3 * window)

	_, err = r.Authorise(v, signer, message)
	assert.Equal(t, fault.StaleRequest, err, "replay after the window")

	// a restarted node has an empty replay cache
	restarted := authority.NewVerifier(true, window)
	_, err = r.Authorise(restarted, signer, message)
	assert.Equal(t, fault.StaleRequest, err, "replay after restart")
}

func TestNonceWindow(t *testing.T) {
	key := makeKey(t, true, 13)
	signer := key.Account()
	v := authority.NewVerifier(true, time.Minute)

	nonces := []struct {
		nonce uint64
		err   error
	}{
		{now(), nil},
		{now() - uint64(30*time.Second), nil},
		{now() + uint64(30*time.Second), nil},
		{now() - uint64(2*time.Minute), fault.StaleRequest},
		{now() + uint64(2*time.Minute), fault.StaleRequest},
		{0, fault.StaleRequest},
		{1, fault.StaleRequest},
		{^uint64(0), fault.StaleRequest},
	}
	for i, item := range nonces {
		message := authority.Pack("Shards.Burn", item.nonce, authority.PackAccount(signer))
		_, err := v.Verify(signer, item.nonce, message, key.Sign(message))
		assert.Equal(t, item.err, err, "%d: nonce: %d", i, item.nonce)
	}
}

func now() uint64 {
	return uint64(time.Now().UnixNano())
}

func TestPackFields(t *testing.T) {
	assert.Equal(t, []byte{1}, authority.PackBool(true), "true")
	assert.Equal(t, []byte{0}, authority.PackBool(false), "false")
	assert.Equal(t, []byte{0x96, 0x01}, authority.PackUint(150), "varint")
	assert.Equal(t, []byte{}, authority.PackAccount(nil), "nil account")
	assert.NotEqual(t, authority.PackInt(-1), authority.PackInt(1), "sign")
}
