// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authority

import (
	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/util"
)

// Request - signature fields carried by every mutating request
//
// Nonce is the signing time in Unix nanoseconds
type Request struct {
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// Sign - set the signature over a packed message
func (r *Request) Sign(key *account.PrivateKey, message []byte) {
	r.Signature = key.Sign(message)
}

// Authorise - verify the request was signed by signer
func (r *Request) Authorise(v *Verifier, signer *account.Account, message []byte) (Authoriser, error) {
	return v.Verify(signer, r.Nonce, message, r.Signature)
}

// PackUint - field encoding of an unsigned number
func PackUint(n uint64) []byte {
	return util.ToVarint64(n)
}

// PackInt - field encoding of a signed amount
func PackInt(n int64) []byte {
	return util.ToVarint64(uint64(n))
}

// PackBool - field encoding of a flag
func PackBool(b bool) []byte {
	if b {
		return []byte{1}
	}
	return []byte{0}
}

// PackAccount - field encoding of an account, empty for nil
func PackAccount(a *account.Account) []byte {
	if nil == a {
		return []byte{}
	}
	return a.Bytes()
}
