package mocks

import "github.com/stretchr/testify/mock"

type Generator struct {
	mock.Mock
}

// Generate provides a mock function with given fields: sizeKB
func (_m *Generator) Generate(sizeKB int64) (string, error) {
	ret := _m.Called(sizeKB)

	var r0 string
	if rf, ok := ret.Get(0).(func(int64) string); ok {
		r0 = rf(sizeKB)
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(int64) error); ok {
		r1 = rf(sizeKB)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
