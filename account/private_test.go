// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/fault"
)

// deterministic source so keys are reproducible
func seed(b byte) *bytes.Reader {
	return bytes.NewReader(bytes.Repeat([]byte{b}, 32))
}

func TestPrivateKeyRoundTrip(t *testing.T) {
	for _, test := range []bool{false, true} {
		key, err := account.NewPrivateKey(test, seed(0x5a))
		if !assert.Nil(t, err, "generate") {
			continue
		}

		s := key.String()
		decoded, err := account.PrivateKeyFromBase58(s)
		if !assert.Nil(t, err, "decode: %s", s) {
			continue
		}
		assert.Equal(t, test, decoded.Test, "network")
		assert.Equal(t, key.PrivateKey, decoded.PrivateKey, "key")
		assert.True(t, key.Account().Equal(decoded.Account()), "account")
		assert.Equal(t, test, key.Account().IsTesting(), "account network")

		buffer, err := json.Marshal(key)
		assert.Nil(t, err, "marshal")
		var k account.PrivateKey
		err = json.Unmarshal(buffer, &k)
		assert.Nil(t, err, "unmarshal")
		assert.Equal(t, key.PrivateKey, k.PrivateKey, "JSON key")
	}
}

func TestPrivateKeyRejectsAccount(t *testing.T) {
	_, err := account.PrivateKeyFromBase58("anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj")
	assert.Equal(t, fault.NotPrivateKey, err, "public key as private")

	_, err = account.PrivateKeyFromBase58("0OIl")
	assert.Equal(t, fault.CannotDecodePrivateKey, err, "bad base58")
}

func TestSignAndVerify(t *testing.T) {
	key, err := account.NewPrivateKey(true, seed(0x33))
	assert.Nil(t, err, "generate")

	message := []byte("shard transfer")
	signature := key.Sign(message)

	acc := key.Account()
	assert.Nil(t, acc.CheckSignature(message, signature), "valid signature")
	assert.Equal(t, fault.InvalidSignature, acc.CheckSignature([]byte("other"), signature), "wrong message")
	assert.Equal(t, fault.InvalidSignature, acc.CheckSignature(message, signature[:10]), "short signature")

	other, err := account.NewPrivateKey(true, seed(0x34))
	assert.Nil(t, err, "generate")
	assert.Equal(t, fault.InvalidSignature, other.Account().CheckSignature(message, signature), "wrong key")
}

func TestSignatureText(t *testing.T) {
	signature := account.Signature{0x01, 0xab, 0xff}
	assert.Equal(t, "01abff", signature.String(), "string")

	text, err := signature.MarshalText()
	assert.Nil(t, err, "marshal")

	var s account.Signature
	err = s.UnmarshalText(text)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, signature, s, "round trip")
}
