// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shards

import (
	"encoding/json"

	"github.com/bewd-social/shardd/account"
)

// event kinds, also used as message bus commands
const (
	EventMint          = "mint"
	EventTransfer      = "transfer"
	EventTransferShard = "transfer_shard"
	EventApprove       = "approve"
	EventBurn          = "burn"
	EventFractionalize = "fractionalize"
)

// Event - notification of a committed state change
type Event struct {
	Kind       string           `json:"kind"`
	PostID     string           `json:"postId,omitempty"`
	From       *account.Account `json:"from,omitempty"`
	To         *account.Account `json:"to,omitempty"`
	Spender    *account.Account `json:"spender,omitempty"`
	Amount     int64            `json:"amount"`
	Index      uint64           `json:"index"`
	Expiration uint64           `json:"expiration,omitempty"`
	Ledger     uint64           `json:"ledger"`
}

func (b *Batch) emit(e Event) {
	e.Ledger = b.current
	b.events = append(b.events, e)
}

// release - send all events of a committed batch
func (c *Contract) release(events []Event) {
	if nil == c.bus {
		return
	}
	for _, e := range events {
		packed, err := json.Marshal(e)
		if nil != err {
			c.log.Errorf("event: %s  marshal error: %s", e.Kind, err)
			continue
		}
		c.bus.Send(e.Kind, packed)
	}
}
