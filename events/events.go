// Copyright (c) 2015 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.


// Package events contains the events emitted while a benchmark runs and the
// machinery to deliver them to listeners.
package events

import (
	"sync"
	"time"
)

// Event is an empty interface that is type switched when handled.
type Event interface{}

// An EventListener handles events emitted by a benchmark.
type EventListener interface {
	HandleEvent(event Event)
}

// EventEmitter can add and remove listeners and emit events to them.
type EventEmitter interface {
	AddListener(EventListener) bool
	RemoveListener(EventListener) bool
	EmitEvent(Event)
}

// SyncEventEmitter emits events in the calling goroutine. Listeners run
// outside of any timed region, so a slow listener never skews a measurement.
type SyncEventEmitter struct {
	lock      sync.RWMutex
	listeners []EventListener
}

// AddListener registers a listener. It returns false when the listener is nil
// or already registered.
func (e *SyncEventEmitter) AddListener(l EventListener) bool {
	if l == nil {
		return false
	}

	e.lock.Lock()
	defer e.lock.Unlock()

	for _, listener := range e.listeners {
		if listener == l {
			return false
		}
	}

	// copy so EmitEvent can iterate a snapshot without holding the lock
	listeners := make([]EventListener, 0, len(e.listeners)+1)
	listeners = append(listeners, e.listeners...)
	e.listeners = append(listeners, l)
	return true
}

// RemoveListener deregisters a listener. It returns false when the listener
// was never added.
func (e *SyncEventEmitter) RemoveListener(l EventListener) bool {
	e.lock.Lock()
	defer e.lock.Unlock()

	for i := range e.listeners {
		if e.listeners[i] == l {
			cpy := append([]EventListener(nil), e.listeners...)
			e.listeners = append(cpy[:i], cpy[i+1:]...)
			return true
		}
	}
	return false
}

// EmitEvent sends the event to all registered listeners.
func (e *SyncEventEmitter) EmitEvent(event Event) {
	e.lock.RLock()
	listeners := e.listeners
	e.lock.RUnlock()

	for _, listener := range listeners {
		listener.HandleEvent(event)
	}
}

// RunStartedEvent is sent before the first measurement of a run.
type RunStartedEvent struct {
	Mode       string
	Iterations int
}

// FileGeneratedEvent is sent for every temporary file created for a file run.
type FileGeneratedEvent struct {
	Path     string
	Size     int64
	Duration time.Duration
}

// IterationEvent is sent after every timed iteration.
type IterationEvent struct {
	Name     string
	Size     int64
	Duration time.Duration
}

// SampleEvent is sent once all iterations of an (adapter, size) pair have
// completed.
type SampleEvent struct {
	Name       string
	Size       int64
	Iterations int
	Total      time.Duration
	Mean       time.Duration
}
