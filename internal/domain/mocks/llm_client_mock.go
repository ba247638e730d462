package mocks

import (
	"context"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
)

// MockLLMClient is a mock implementation of domain.LLMClient. Call counts are
// recorded so tests can assert the off-topic short circuit.
type MockLLMClient struct {
	ClassifyFunc func(ctx context.Context, message string) (entity.Verdict, error)
	GenerateFunc func(ctx context.Context, system string, history []*entity.ChatMessage, message string) (string, error)

	ClassifyCalls int
	GenerateCalls int

	// LastSystem / LastHistory capture the most recent Generate input.
	LastSystem  string
	LastHistory []*entity.ChatMessage
}

// Classify mocks the Classify method.
func (m *MockLLMClient) Classify(ctx context.Context, message string) (entity.Verdict, error) {
	m.ClassifyCalls++
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, message)
	}
	return entity.Verdict{OnTopic: true, Rationale: "mock verdict"}, nil
}

// Generate mocks the Generate method.
func (m *MockLLMClient) Generate(ctx context.Context, system string, history []*entity.ChatMessage, message string) (string, error) {
	m.GenerateCalls++
	m.LastSystem = system
	m.LastHistory = history
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, system, history, message)
	}
	return "mock reply", nil
}

// MockContextAssembler is a mock implementation of domain.ContextAssembler.
type MockContextAssembler struct {
	AssembleFunc func(ctx context.Context, language string) (string, error)
}

// Assemble mocks the Assemble method.
func (m *MockContextAssembler) Assemble(ctx context.Context, language string) (string, error) {
	if m.AssembleFunc != nil {
		return m.AssembleFunc(ctx, language)
	}
	return "mock system context", nil
}
