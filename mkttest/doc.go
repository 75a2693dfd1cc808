// Package mkttest provides mocks and helpers shared by tests across
// the application packages.
package mkttest
