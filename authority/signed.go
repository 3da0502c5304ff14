// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authority

import (
	"encoding/hex"
	"math"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/util"
)

// DefaultReplayWindow - how far a request nonce may be from the
// current time
const DefaultReplayWindow = 10 * time.Minute

// Verifier - check signed requests and refuse replays
//
// a nonce is the signing time in Unix nanoseconds; only nonces within
// the window are accepted and each signature is remembered until its
// nonce can no longer be accepted
type Verifier struct {
	test   bool
	window time.Duration
	seen   *cache.Cache
}

// NewVerifier - verifier for accounts on one network
func NewVerifier(test bool, window time.Duration) *Verifier {
	if window <= 0 {
		window = DefaultReplayWindow
	}
	return &Verifier{
		test:   test,
		window: window,
		seen:   cache.New(2*window, window),
	}
}

// Verify - authorise signer if signature is its ed25519 signature of
// message and nonce is current
func (v *Verifier) Verify(signer *account.Account, nonce uint64, message []byte, signature account.Signature) (Authoriser, error) {
	if nil == signer || 0 == len(signature) {
		return nil, fault.MissingParameters
	}
	if signer.IsTesting() != v.test {
		return nil, fault.WrongNetworkForPublicKey
	}
	if err := signer.CheckSignature(message, signature); nil != err {
		return nil, err
	}
	if !v.current(nonce, time.Now()) {
		return nil, fault.StaleRequest
	}

	// Add fails if the key is already present and unexpired
	if err := v.seen.Add(hex.EncodeToString(signature), struct{}{}, cache.DefaultExpiration); nil != err {
		return nil, fault.ReplayedRequest
	}

	return Accounts(signer), nil
}

func (v *Verifier) current(nonce uint64, now time.Time) bool {
	if nonce > math.MaxInt64 {
		return false
	}
	d := now.Sub(time.Unix(0, int64(nonce)))
	return d <= v.window && d >= -v.window
}

// Pack - the message that a request signature covers
//
// method name, each field length prefixed, then the nonce as a varint
func Pack(method string, nonce uint64, fields ...[]byte) []byte {
	buffer := util.PackBytes(nil, []byte(method))
	for _, f := range fields {
		buffer = util.PackBytes(buffer, f)
	}
	return append(buffer, util.ToVarint64(nonce)...)
}
