package storage

import (
	"github.com/stretchr/testify/mock"
)

// MockDBFile is a mock type for the DBFile type
type MockDBFile struct {
	mock.Mock
}

// Read provides a mock function with given fields: p
func (_m *MockDBFile) Read(p []byte) (int, error) {
	ret := _m.Called(p)
	return ret.Int(0), ret.Error(1)
}

// ReadAt provides a mock function with given fields: p, off
func (_m *MockDBFile) ReadAt(p []byte, off int64) (int, error) {
	ret := _m.Called(p, off)

	if fn, ok := ret.Get(0).(func([]byte, int64) int); ok {
		return fn(p, off), ret.Error(1)
	}
	return ret.Int(0), ret.Error(1)
}

// WriteAt provides a mock function with given fields: p, off
func (_m *MockDBFile) WriteAt(p []byte, off int64) (int, error) {
	ret := _m.Called(p, off)
	return ret.Int(0), ret.Error(1)
}

// Seek provides a mock function with given fields: offset, whence
func (_m *MockDBFile) Seek(offset int64, whence int) (int64, error) {
	ret := _m.Called(offset, whence)
	return ret.Get(0).(int64), ret.Error(1)
}

// Sync provides a mock function with given fields:
func (_m *MockDBFile) Sync() error {
	ret := _m.Called()
	return ret.Error(0)
}

// Close provides a mock function with given fields:
func (_m *MockDBFile) Close() error {
	ret := _m.Called()
	return ret.Error(0)
}
