package main

import (
	"errors"
	"strings"
	"testing"
)

func TestFinishRun(t *testing.T) {
	errRun := errors.New("program killed")
	errClose := errors.New("disk full")

	tests := []struct {
		name     string
		runErr   error
		closeErr error
		expected error
	}{
		{"clean", nil, nil, nil},
		{"close fails", nil, errClose, errClose},
		{"run fails", errRun, nil, errRun},
		{"run error wins", errRun, errClose, errRun},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			closed := false
			err := finishRun(tc.runErr, func() error {
				closed = true
				return tc.closeErr
			})

			if !closed {
				t.Error("log file was not closed")
			}
			if tc.expected == nil {
				if err != nil {
					t.Errorf("finishRun() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tc.expected) {
				t.Errorf("finishRun() = %v, expected to wrap %v", err, tc.expected)
			}
		})
	}
}

func TestFinishRunNamesCloseFailure(t *testing.T) {
	err := finishRun(nil, func() error { return errors.New("disk full") })
	if err == nil || !strings.Contains(err.Error(), "closing log file") {
		t.Errorf("finishRun() = %v, expected a log close error", err)
	}
}

func TestNewFileLoggerWithoutPath(t *testing.T) {
	flagLogPath = ""
	logger, closeLog, err := newFileLogger()
	if err != nil {
		t.Fatalf("newFileLogger() failed: %v", err)
	}
	logger.Info("discarded")
	if err := closeLog(); err != nil {
		t.Errorf("closeLog() = %v, expected nil", err)
	}
}
