package llm

import "context"

// MockClient permite tests sin llamar al colaborador real.
type MockClient struct {
	Response string
	Err      error
	Calls    int
}

func (m *MockClient) Analyze(ctx context.Context, prompt string) (string, error) {
	m.Calls++
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return m.Response, m.Err
}
