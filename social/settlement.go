// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package social

import (
	"github.com/bitmark-inc/logger"

	"github.com/bewd-social/shardd/account"
)

// Settlement - pays the creator for claimed shards
type Settlement interface {
	Settle(from *account.Account, to *account.Account, postID string, shards uint64, payment int64) error
}

// LogSettlement - record the payment intent only
type LogSettlement struct {
	Log *logger.L
}

// Settle - log the payment
func (s *LogSettlement) Settle(from *account.Account, to *account.Account, postID string, shards uint64, payment int64) error {
	s.Log.Infof("settle: %q  shards: %d  payment: %d  from: %s  to: %s", postID, shards, payment, from, to)
	return nil
}
