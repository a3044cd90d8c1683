// Package testutil provides XML helpers shared by tests across the
// codebase.
package testutil
