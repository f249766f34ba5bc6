package crypto

import (
	"crypto/ed25519"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/lestrrat-go/jwx/v3/jwk"
)

func TestGenerateKeyID(t *testing.T) {
	privateKey, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("failed to generate keypair: %v", err)
	}

	keyID, err := GenerateKeyID(privateKey.PublicKey())
	if err != nil {
		t.Fatalf("GenerateKeyID() error: %v", err)
	}
	if len(keyID) != 16 {
		t.Errorf("key ID length = %d, want 16", len(keyID))
	}

	again, err := GenerateKeyID(privateKey.PublicKey())
	if err != nil {
		t.Fatalf("GenerateKeyID() error: %v", err)
	}
	if keyID != again {
		t.Errorf("key ID is not deterministic: %q != %q", keyID, again)
	}
}

func TestPublicJWKSet(t *testing.T) {
	privateKey, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("failed to generate keypair: %v", err)
	}

	set, err := PublicJWKSet(privateKey)
	if err != nil {
		t.Fatalf("PublicJWKSet() error: %v", err)
	}
	if set.Len() != 1 {
		t.Fatalf("set length = %d, want 1", set.Len())
	}

	key, ok := set.Key(0)
	if !ok {
		t.Fatal("failed to get key from set")
	}

	var raw any
	if err := jwk.Export(key, &raw); err != nil {
		t.Fatalf("failed to export key: %v", err)
	}
	publicKey, ok := raw.(ed25519.PublicKey)
	if !ok {
		t.Fatalf("exported key is %T, want ed25519.PublicKey", raw)
	}
	if !solana.PublicKeyFromBytes(publicKey).Equals(privateKey.PublicKey()) {
		t.Error("JWK public key does not match the signer public key")
	}

	empty, err := PublicJWKSet()
	if err != nil {
		t.Fatalf("PublicJWKSet() with no keys error: %v", err)
	}
	if empty.Len() != 0 {
		t.Errorf("empty set length = %d, want 0", empty.Len())
	}
}

// a keypair saved as a JWK set can be used as the signer key file
func TestSaveJWKAndLoadSignerKey(t *testing.T) {
	privateKey, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("failed to generate keypair: %v", err)
	}
	keyID, err := GenerateKeyID(privateKey.PublicKey())
	if err != nil {
		t.Fatalf("GenerateKeyID() error: %v", err)
	}

	tmpDir := t.TempDir()
	if err := SavePrivateKeyToJWKFile(privateKey, keyID, tmpDir, "signer.private.jwk"); err != nil {
		t.Fatalf("failed to save private JWK: %v", err)
	}
	if err := SavePublicKeyToJWKFile(privateKey.PublicKey(), keyID, tmpDir, "signer.public.jwk"); err != nil {
		t.Fatalf("failed to save public JWK: %v", err)
	}

	loaded, err := LoadSignerKey(filepath.Join(tmpDir, "signer.private.jwk"))
	if err != nil {
		t.Fatalf("failed to load signer key: %v", err)
	}
	if !loaded.PublicKey().Equals(privateKey.PublicKey()) {
		t.Error("loaded key does not match original")
	}

	// a public-only JWK is not usable as a signer
	if _, err := LoadSignerKey(filepath.Join(tmpDir, "signer.public.jwk")); err == nil {
		t.Error("expected error loading a public JWK as the signer key")
	}
}

func TestJWKConversionErrors(t *testing.T) {
	if _, err := PublicKeyToJWK(solana.PublicKey{}, "kid"); err == nil {
		t.Error("expected error for zero public key")
	}
	if _, err := PrivateKeyToJWK(solana.PrivateKey(make([]byte, 10)), "kid"); err == nil {
		t.Error("expected error for short private key")
	}

	privateKey, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("failed to generate keypair: %v", err)
	}
	if _, err := PrivateKeyToJWK(privateKey, ""); err == nil {
		t.Error("expected error for empty key ID")
	}
}
