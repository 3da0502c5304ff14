// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authority - decide whether a call may act for an account
package authority

import (
	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/fault"
)

// Authoriser - capability presented with every mutating call
type Authoriser interface {
	RequireAuth(*account.Account) error
}

// fixed set of accounts
type fixed []*account.Account

// Accounts - authorise exactly the listed accounts
func Accounts(accounts ...*account.Account) Authoriser {
	return fixed(accounts)
}

func (f fixed) RequireAuth(a *account.Account) error {
	if nil == a {
		return fault.Unauthorized
	}
	for _, allowed := range f {
		if allowed.Equal(a) {
			return nil
		}
	}
	return fault.Unauthorized
}

type anyone struct{}

// Anyone - authorise every account, for local tooling only
var Anyone Authoriser = anyone{}

func (anyone) RequireAuth(a *account.Account) error {
	if nil == a {
		return fault.Unauthorized
	}
	return nil
}

// Nobody - authorise no account
var Nobody Authoriser = fixed(nil)
