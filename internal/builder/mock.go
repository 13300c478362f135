package builder

// MockRunner implements CommandRunner for testing.
// RunFunc can be set to control behavior; the zero value succeeds.
type MockRunner struct {
	RunFunc func(dir string) error
	// Calls records the working directories Run was invoked with
	Calls []string
}

// Run executes the configured function, recording the call.
func (m *MockRunner) Run(dir string) error {
	m.Calls = append(m.Calls, dir)
	if m.RunFunc != nil {
		return m.RunFunc(dir)
	}
	return nil
}
