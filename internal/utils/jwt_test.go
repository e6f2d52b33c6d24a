package utils

import (
	"testing"
	"time"
)

func TestGenerateJWTToken(t *testing.T) {
	issuer := "go-cred-vault"
	signKey := "test-sign-key"
	userID := int64(42)
	duration := time.Hour

	token, err := GenerateJWTToken(issuer, userID, duration, signKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty signed string")
	}
	if token.UserID != userID {
		t.Errorf("expected UserID %d, got %d", userID, token.UserID)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", duration: time.Hour, signKey: "key"},
		{name: "zero duration", issuer: "issuer", duration: 0, signKey: "key"},
		{name: "empty sign key", issuer: "issuer", duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.signKey)
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	issuer := "go-cred-vault"
	signKey := "test-sign-key"
	userID := int64(7)

	generated, err := GenerateJWTToken(issuer, userID, time.Hour, signKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, signKey, issuer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.UserID != userID {
		t.Errorf("expected UserID %d, got %d", userID, parsed.UserID)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	generated, err := GenerateJWTToken("issuer", 1, time.Hour, "right-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(generated.SignedString, "wrong-key", "issuer"); err == nil {
		t.Error("expected signature verification error, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	generated, err := GenerateJWTToken("issuer-a", 1, time.Hour, "key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(generated.SignedString, "key", "issuer-b"); err == nil {
		t.Error("expected issuer mismatch error, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	generated, err := GenerateJWTToken("issuer", 1, time.Nanosecond, "key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := ValidateAndParseJWTToken(generated.SignedString, "key", "issuer"); err == nil {
		t.Error("expected expiration error, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing token", header: "Bearer", wantErr: true},
		{name: "empty header", header: "", wantErr: true},
		{name: "empty token part", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseUserIDFromJWT(t *testing.T) {
	generated, err := GenerateJWTToken("issuer", 123, time.Hour, "key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, err := ParseUserIDFromJWT(generated.SignedString)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 123 {
		t.Errorf("expected 123, got %d", id)
	}
}

func TestParseUserIDFromJWT_Malformed(t *testing.T) {
	if _, err := ParseUserIDFromJWT("not-a-token"); err == nil {
		t.Error("expected error, got nil")
	}
}
