// Package testutil provides shared test utilities for pipemaze.
//
// # Fixtures
//
// The fixtures.go file provides sample grids with their known answers:
//
//   - ScenarioMinimal, ScenarioNoise - the smallest loop, plain and cluttered
//   - ScenarioOpen, ScenarioSqueeze - interior pockets with and without a gap
//   - ScenarioComplex, ScenarioLarge - longer loops from worked examples
//   - ScenarioDeadEnd - a start cell whose path never closes
//   - Scenarios() - every solvable fixture, for table-driven tests
//
// # Environment Helpers
//
// The env.go file provides test environment setup:
//
//   - SetupTestDir(t) - creates a temp directory with .pipemaze structure
//   - WriteTestFile(t, base, path, content) - writes a file in test dir
//   - WriteGridFile(t, base, name, grid) - writes a grid fixture to disk
//
// # Timeouts
//
// The timeout.go file guards calls that must terminate:
//
//   - RequireCompletes(t, timeout, fn) - fails the test if fn does not return
//
// # Usage
//
//	func TestSomething(t *testing.T) {
//	    for _, sc := range testutil.Scenarios() {
//	        g, err := grid.New([]byte(sc.Grid))
//	        require.NoError(t, err)
//	        // ...
//	    }
//	}
package testutil
