package main

import (
	"path/filepath"
	"strings"
	"testing"
)

// startup failures are returned to cobra rather than exiting the process
func TestRunReturnsStartupErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "invalid configuration",
			env:     map[string]string{"SOLANA_COMMITMENT": "eventually"},
			wantErr: "failed to load configuration",
		},
		{
			name:    "missing signer key",
			env:     map[string]string{"SIGNER_KEY_PATH": filepath.Join(t.TempDir(), "missing.json")},
			wantErr: "failed to read keypair file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", "error")
			t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			err := run()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}
