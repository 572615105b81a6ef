package utils

import (
	"testing"
	"time"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	deviceID := "warehouse-7"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, deviceID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.DeviceID != deviceID {
		t.Errorf("expected device ID %s, got %s", deviceID, token.DeviceID)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		deviceID string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "dev", time.Hour, "key"},
		{"empty device id", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "dev", 0, "key"},
		{"empty key", "iss", "dev", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.deviceID, tt.duration, tt.key)
			if err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("scanledger", "warehouse-7", time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "secret-key", "scanledger")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if parsed.DeviceID != "warehouse-7" {
		t.Errorf("expected device ID 'warehouse-7', got %s", parsed.DeviceID)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken("scanledger", "warehouse-7", time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(token.SignedString, "other-key", "scanledger"); err == nil {
		t.Error("expected validation to fail with wrong sign key")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("scanledger", "warehouse-7", time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(token.SignedString, "secret-key", "other-issuer"); err == nil {
		t.Error("expected validation to fail with wrong issuer")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken("scanledger", "warehouse-7", -time.Minute, "secret-key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(token.SignedString, "secret-key", "scanledger"); err == nil {
		t.Error("expected validation to fail for expired token")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing token", "Bearer ", "", true},
		{"no scheme", "abc.def.ghi", "", true},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected an error, got nil")
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
