package mocks

import "github.com/stretchr/testify/mock"

type Digest struct {
	mock.Mock
}

// Name provides a mock function with given fields:
func (_m *Digest) Name() string {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// Hash provides a mock function with given fields: buf
func (_m *Digest) Hash(buf []byte) {
	_m.Called(buf)
}

// Update provides a mock function with given fields: p
func (_m *Digest) Update(p []byte) {
	_m.Called(p)
}

// Value provides a mock function with given fields:
func (_m *Digest) Value() []byte {
	ret := _m.Called()

	var r0 []byte
	if rf, ok := ret.Get(0).(func() []byte); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0
}

// Reset provides a mock function with given fields:
func (_m *Digest) Reset() {
	_m.Called()
}
