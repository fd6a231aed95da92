package validation

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required,min=3"`
	Score int    `validate:"gte=0,lte=100"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     sampleRequest
		wantErr   bool
		wantParts []string
	}{
		{
			name:  "valid request",
			input: sampleRequest{Email: "a@b.com", Name: "Alice", Score: 50},
		},
		{
			name:      "missing required fields",
			input:     sampleRequest{Score: 50},
			wantErr:   true,
			wantParts: []string{"Email failed on 'required'", "Name failed on 'required'"},
		},
		{
			name:      "out of range score",
			input:     sampleRequest{Email: "a@b.com", Name: "Alice", Score: 150},
			wantErr:   true,
			wantParts: []string{"Score failed on 'lte'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&tt.input)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			for _, part := range tt.wantParts {
				if !strings.Contains(err.Error(), part) {
					t.Errorf("error missing %q: %v", part, err)
				}
			}
		})
	}
}
