package main

import (
	"testing"
)

func TestMainFunctionCallsRunFunc(t *testing.T) {
	mockRunCalled := false
	originalRunFunc := RunFunc
	RunFunc = func() {
		mockRunCalled = true
	}
	defer func() { RunFunc = originalRunFunc }()

	main()

	if !mockRunCalled {
		t.Error("Expected RunFunc to be called")
	}
}
