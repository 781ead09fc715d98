// Package integration holds end-to-end tests that build the pipemaze binary
// and drive it as a user would. They are excluded from ordinary test runs:
//
//	go test -tags e2e ./internal/integration/...
package integration
