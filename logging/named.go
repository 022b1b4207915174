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


package logging

import (
	"github.com/uber-common/bark"
)

// namedLogger forwards every call to a logReceiver together with its name, so
// the receiver can decide whether the message is silenced.
type namedLogger struct {
	name      string
	forwardTo logReceiver
	fields    bark.Fields
}

type logReceiver interface {
	Log(logName string, wantLevel Level, fields bark.Fields, msg []interface{})
	Logf(logName string, wantLevel Level, fields bark.Fields, format string, msg []interface{})
}

func (l *namedLogger) Debug(args ...interface{}) { l.forwardTo.Log(l.name, Debug, l.fields, args) }
func (l *namedLogger) Info(args ...interface{})  { l.forwardTo.Log(l.name, Info, l.fields, args) }
func (l *namedLogger) Warn(args ...interface{})  { l.forwardTo.Log(l.name, Warn, l.fields, args) }
func (l *namedLogger) Error(args ...interface{}) { l.forwardTo.Log(l.name, Error, l.fields, args) }
func (l *namedLogger) Fatal(args ...interface{}) { l.forwardTo.Log(l.name, Fatal, l.fields, args) }
func (l *namedLogger) Panic(args ...interface{}) { l.forwardTo.Log(l.name, Panic, l.fields, args) }

func (l *namedLogger) Debugf(format string, args ...interface{}) {
	l.forwardTo.Logf(l.name, Debug, l.fields, format, args)
}
func (l *namedLogger) Infof(format string, args ...interface{}) {
	l.forwardTo.Logf(l.name, Info, l.fields, format, args)
}
func (l *namedLogger) Warnf(format string, args ...interface{}) {
	l.forwardTo.Logf(l.name, Warn, l.fields, format, args)
}
func (l *namedLogger) Errorf(format string, args ...interface{}) {
	l.forwardTo.Logf(l.name, Error, l.fields, format, args)
}
func (l *namedLogger) Fatalf(format string, args ...interface{}) {
	l.forwardTo.Logf(l.name, Fatal, l.fields, format, args)
}
func (l *namedLogger) Panicf(format string, args ...interface{}) {
	l.forwardTo.Logf(l.name, Panic, l.fields, format, args)
}

// WithField returns a copy of the logger with key set.
func (l *namedLogger) WithField(key string, value interface{}) bark.Logger {
	return l.with(bark.Fields{key: value})
}

// WithFields returns a copy of the logger with fields merged in; the new
// fields win over existing ones with the same key.
func (l *namedLogger) WithFields(fields bark.LogFields) bark.Logger {
	return l.with(fields.Fields())
}

// WithError returns a copy of the logger carrying err in the "error" field.
func (l *namedLogger) WithError(err error) bark.Logger {
	return l.with(bark.Fields{"error": err})
}

func (l *namedLogger) Fields() bark.Fields {
	return l.fields
}

func (l *namedLogger) with(other map[string]interface{}) *namedLogger {
	fields := make(bark.Fields, len(l.fields)+len(other))
	for k, v := range l.fields {
		fields[k] = v
	}
	for k, v := range other {
		fields[k] = v
	}
	return &namedLogger{
		name:      l.name,
		forwardTo: l.forwardTo,
		fields:    fields,
	}
}
