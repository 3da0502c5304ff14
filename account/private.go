// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"io"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/util"
)

// PrivateKey - ed25519 signing key for an account
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a fresh key from a random source
func NewPrivateKey(test bool, random io.Reader) (*PrivateKey, error) {
	_, privateKey, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: privateKey,
	}, nil
}

// PrivateKeyFromBase58 - convert a Base58 encoded string to a private key
func PrivateKeyFromBase58(privateKeyBase58Encoded string) (*PrivateKey, error) {
	privateKeyDecoded, err := base58.Decode(privateKeyBase58Encoded)
	if nil != err || len(privateKeyDecoded) <= checksumLength {
		return nil, fault.CannotDecodePrivateKey
	}

	checksumStart := len(privateKeyDecoded) - checksumLength
	checksum := sha3.Sum256(privateKeyDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], privateKeyDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	keyVariant, keyVariantLength := util.FromVarint64(privateKeyDecoded)
	if 0 == keyVariantLength || keyVariant&publicKeyCode == publicKeyCode {
		return nil, fault.NotPrivateKey
	}
	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.InvalidKeyType
	}
	if checksumStart-keyVariantLength != ed25519.PrivateKeySize {
		return nil, fault.InvalidKeyLength
	}

	privateKey := make([]byte, ed25519.PrivateKeySize)
	copy(privateKey, privateKeyDecoded[keyVariantLength:checksumStart])

	return &PrivateKey{
		Test:       0 != keyVariant&testKeyCode,
		PrivateKey: privateKey,
	}, nil
}

// Account - the public account for this key
func (privateKey *PrivateKey) Account() *Account {
	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, privateKey.PrivateKey[ed25519.PrivateKeySize-ed25519.PublicKeySize:])
	return &Account{
		Test:      privateKey.Test,
		PublicKey: publicKey,
	}
}

// Sign - produce an ed25519 signature of a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}

// Bytes - packed key variant ++ private key
func (privateKey *PrivateKey) Bytes() []byte {
	keyVariant := byte(ED25519 << algorithmShift)
	if privateKey.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, privateKey.PrivateKey...)
}

// String - base58 encoding of packed key with checksum
func (privateKey *PrivateKey) String() string {
	buffer := privateKey.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert a private key to its Base58 form
func (privateKey PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}

// UnmarshalText - convert a private key from Base58 text
func (privateKey *PrivateKey) UnmarshalText(s []byte) error {
	p, err := PrivateKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*privateKey = *p
	return nil
}
