// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bewd-social/shardd/messagebus"
	"github.com/bewd-social/shardd/util"
	"github.com/bewd-social/shardd/zmqutil"
)

const (
	heartbeatInterval = 60 * time.Second
	heartbeatCommand  = "heart"
	queueSize         = 1000
)

type sender interface {
	SendMessage(parts ...interface{}) (int, error)
}

// events from the bus are published on all bound sockets
type broadcaster struct {
	log     *logger.L
	queue   *messagebus.BroadcastQueue
	events  <-chan messagebus.Message
	socket4 *zmq.Socket
	socket6 *zmq.Socket
	sent    uint64
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(log *logger.L, privateKey []byte, publicKey []byte, broadcast []string, queue *messagebus.BroadcastQueue) error {

	brdc.log = log
	brdc.queue = queue

	socket4, socket6, err := zmqutil.NewBind(log, zmq.PUB, "publish", privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}
	brdc.socket4 = socket4
	brdc.socket6 = socket6

	// subscribe before background start so no event is missed
	brdc.events = queue.Chan(queueSize)

	return nil
}

// Run - wait for events and publish them, heartbeat when idle
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

	defer func() {
		brdc.queue.Release(brdc.events)
		if nil != brdc.socket4 {
			brdc.socket4.Close()
		}
		if nil != brdc.socket6 {
			brdc.socket6.Close()
		}
	}()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	sockets := make([]sender, 0, 2)
	if nil != brdc.socket4 {
		sockets = append(sockets, brdc.socket4)
	}
	if nil != brdc.socket6 {
		sockets = append(sockets, brdc.socket6)
	}

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-brdc.events:
			log.Debugf("publish: %s  parameters: %d", item.Command, len(item.Parameters))
			if err := brdc.process(sockets, item); nil != err {
				log.Errorf("publish: %s  error: %s", item.Command, err)
			}
		case <-ticker.C:
			heartbeat := messagebus.Message{
				Command:    heartbeatCommand,
				Parameters: [][]byte{util.ToVarint64(uint64(time.Now().Unix()))},
			}
			if err := brdc.process(sockets, heartbeat); nil != err {
				log.Errorf("heartbeat error: %s", err)
			}
		}
	}
	log.Infof("stopped after: %d messages", brdc.sent)
}

// send one multipart message on every socket
func (brdc *broadcaster) process(sockets []sender, item messagebus.Message) error {
	parts := frames(item)
	for _, socket := range sockets {
		if _, err := socket.SendMessage(parts...); nil != err {
			return err
		}
	}
	brdc.sent += 1
	return nil
}

// command frame followed by one frame per parameter
func frames(item messagebus.Message) []interface{} {
	parts := make([]interface{}, 0, 1+len(item.Parameters))
	parts = append(parts, item.Command)
	for _, p := range item.Parameters {
		parts = append(parts, p)
	}
	return parts
}
