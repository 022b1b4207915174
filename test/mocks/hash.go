package mocks

import "github.com/stretchr/testify/mock"

type Hash struct {
	mock.Mock
}

// Name provides a mock function with given fields:
func (_m *Hash) Name() string {
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
func (_m *Hash) Hash(buf []byte) {
	_m.Called(buf)
}

// Value provides a mock function with given fields:
func (_m *Hash) Value() uint64 {
	ret := _m.Called()

	var r0 uint64
	if rf, ok := ret.Get(0).(func() uint64); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(uint64)
	}

	return r0
}

// Reset provides a mock function with given fields:
func (_m *Hash) Reset() {
	_m.Called()
}
