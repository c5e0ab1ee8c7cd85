package auth

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	token, err := CreateToken("local|ana", "ana")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	subject, nickname, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if subject != "local|ana" || nickname != "ana" {
		t.Errorf("claims = %q, %q", subject, nickname)
	}
}

func TestParseTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	token, err := CreateToken("local|ana", "ana")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := ParseToken(token + "xx"); err == nil {
		t.Error("tampered token accepted")
	}
}

func TestTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	if _, err := CreateToken("local|ana", "ana"); err == nil {
		t.Error("CreateToken succeeded without a secret")
	}
}
