// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
	"sync/atomic"
)

// internal constants
const (
	defaultQueueSize = 1000
)

// Message - a command and its packed parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// BroadcastQueue - fan out to every listener
type BroadcastQueue struct {
	dropped uint64 // first for 64 bit alignment
	sync.RWMutex
	listeners map[<-chan Message]chan Message
}

type busses struct {
	Broadcast *BroadcastQueue
}

// Bus - all available message queues
var Bus = busses{
	Broadcast: NewBroadcastQueue(),
}

// NewBroadcastQueue - create an empty queue
func NewBroadcastQueue() *BroadcastQueue {
	return &BroadcastQueue{
		listeners: make(map[<-chan Message]chan Message),
	}
}

// Send - deliver a message to all current listeners without blocking
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.RLock()
	defer queue.RUnlock()

	for _, c := range queue.listeners {
		select {
		case c <- m:
		default:
			atomic.AddUint64(&queue.dropped, 1)
		}
	}
}

// Chan - add a listener; size <= 0 selects the default buffer size
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = defaultQueueSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners[c] = c
	queue.Unlock()

	return c
}

// Release - remove a listener and close its channel
func (queue *BroadcastQueue) Release(c <-chan Message) {
	queue.Lock()
	defer queue.Unlock()

	if l, ok := queue.listeners[c]; ok {
		delete(queue.listeners, c)
		close(l)
	}
}

// Listeners - number of attached listeners
func (queue *BroadcastQueue) Listeners() int {
	queue.RLock()
	defer queue.RUnlock()
	return len(queue.listeners)
}

// Dropped - total messages lost to full listener buffers
func (queue *BroadcastQueue) Dropped() uint64 {
	return atomic.LoadUint64(&queue.dropped)
}
