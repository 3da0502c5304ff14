// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package social

import (
	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/authority"
	"github.com/bewd-social/shardd/fault"
	"github.com/bewd-social/shardd/shards"
	"github.com/bewd-social/shardd/storage"
)

// Message - one direct message of a conversation
type Message struct {
	Number   uint64           `json:"number"`
	Sender   *account.Account `json:"sender"`
	Receiver *account.Account `json:"receiver"`
	Text     string           `json:"text"`
}

// SendMessage - append a message to the sender to receiver conversation
func (s *Social) SendMessage(auth authority.Authoriser, sender *account.Account, receiver *account.Account, text string) (uint64, error) {
	if err := requireAuth(auth, sender); nil != err {
		return 0, err
	}
	if nil == receiver {
		return 0, fault.MissingParameters
	}
	if err := checkText(text, MaximumMessageLength); nil != err {
		return 0, err
	}

	number := uint64(0)
	err := s.contract.Update(func(b *shards.Batch) error {
		trx := b.Transaction()
		conversation := pairKey(sender, receiver)
		number = nextNumber(trx, storage.Pool.MessageCount, conversation)
		key := append(conversation, storage.EncodeN(number)...)
		trx.Put(storage.Pool.Messages, key, []byte(text))
		return nil
	})
	if nil != err {
		return 0, err
	}
	s.log.Infof("message: %s  to: %s  number: %d", sender, receiver, number)
	return number, nil
}

// Messages - page of the sender to receiver conversation in sending order
func (s *Social) Messages(sender *account.Account, receiver *account.Account, start uint64, count int) ([]Message, error) {
	if nil == sender || nil == receiver {
		return nil, fault.MissingParameters
	}
	if err := checkCount(count); nil != err {
		return nil, err
	}

	conversation := pairKey(sender, receiver)
	cursor := storage.Pool.Messages.NewFetchCursor().Within(conversation).Seek(append(conversation, storage.EncodeN(start)...))
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	messages := make([]Message, 0, len(elements))
	for _, e := range elements {
		if len(e.Key) != len(conversation)+8 {
			return nil, fault.TruncatedRecord
		}
		messages = append(messages, Message{
			Number:   storage.DecodeN(e.Key[len(conversation):]),
			Sender:   sender,
			Receiver: receiver,
			Text:     string(e.Value),
		})
	}
	return messages, nil
}
