// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock exposes Fn fields overriding individual
// methods; unset methods return the mock's default values. The mocks are
// shared across service and API handler tests.
package mocks
