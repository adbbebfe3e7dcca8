// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mocks - gomock mocks of the avl interfaces
package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockCapabilities is a mock of Capabilities interface
type MockCapabilities[E any] struct {
	ctrl     *gomock.Controller
	recorder *MockCapabilitiesMockRecorder[E]
}

// MockCapabilitiesMockRecorder is the mock recorder for MockCapabilities
type MockCapabilitiesMockRecorder[E any] struct {
	mock *MockCapabilities[E]
}

// NewMockCapabilities creates a new mock instance
func NewMockCapabilities[E any](ctrl *gomock.Controller) *MockCapabilities[E] {
	mock := &MockCapabilities[E]{ctrl: ctrl}
	mock.recorder = &MockCapabilitiesMockRecorder[E]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockCapabilities[E]) EXPECT() *MockCapabilitiesMockRecorder[E] {
	return m.recorder
}

// Compare mocks base method
func (m *MockCapabilities[E]) Compare(arg0, arg1 E) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Compare", arg0, arg1)
	ret0, _ := ret[0].(int)
	return ret0
}

// Compare indicates an expected call of Compare
func (mr *MockCapabilitiesMockRecorder[E]) Compare(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Compare", reflect.TypeOf((*MockCapabilities[E])(nil).Compare), arg0, arg1)
}

// Clone mocks base method
func (m *MockCapabilities[E]) Clone(arg0 E) E {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Clone", arg0)
	ret0, _ := ret[0].(E)
	return ret0
}

// Clone indicates an expected call of Clone
func (mr *MockCapabilitiesMockRecorder[E]) Clone(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Clone", reflect.TypeOf((*MockCapabilities[E])(nil).Clone), arg0)
}

// Destroy mocks base method
func (m *MockCapabilities[E]) Destroy(arg0 E) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Destroy", arg0)
}

// Destroy indicates an expected call of Destroy
func (mr *MockCapabilitiesMockRecorder[E]) Destroy(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Destroy", reflect.TypeOf((*MockCapabilities[E])(nil).Destroy), arg0)
}
