// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bewd-social/shardd/messagebus"
)

type recordingSocket struct {
	messages [][]interface{}
	err      error
}

func (r *recordingSocket) SendMessage(parts ...interface{}) (int, error) {
	if nil != r.err {
		return 0, r.err
	}
	r.messages = append(r.messages, parts)
	return len(parts), nil
}

func TestFrames(t *testing.T) {
	parts := frames(messagebus.Message{
		Command:    "transfer",
		Parameters: [][]byte{[]byte("one"), []byte("two")},
	})

	assert.Equal(t, 3, len(parts), "frame count")
	assert.Equal(t, "transfer", parts[0], "command frame")
	assert.Equal(t, []byte("one"), parts[1], "first parameter")
	assert.Equal(t, []byte("two"), parts[2], "second parameter")

	parts = frames(messagebus.Message{Command: "heart"})
	assert.Equal(t, []interface{}{"heart"}, parts, "command only")
}

func TestProcess(t *testing.T) {
	s4 := &recordingSocket{}
	s6 := &recordingSocket{}

	brdc := broadcaster{}
	err := brdc.process([]sender{s4, s6}, messagebus.Message{Command: "mint", Parameters: [][]byte{{1}}})
	assert.Nil(t, err, "process")
	assert.Equal(t, 1, len(s4.messages), "IPv4 messages")
	assert.Equal(t, 1, len(s6.messages), "IPv6 messages")
	assert.Equal(t, uint64(1), brdc.sent, "sent count")

	failing := &recordingSocket{err: errors.New("closed")}
	err = brdc.process([]sender{failing}, messagebus.Message{Command: "burn"})
	assert.NotNil(t, err, "failed send")
	assert.Equal(t, uint64(1), brdc.sent, "failed send not counted")
}
