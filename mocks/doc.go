// Package mocks holds testify mocks for the interfaces in internal/ports,
// laid out the way mockery's expecter template lays them out.
package mocks
