// this file contains the functions that turn caller supplied strings into validated Solana identifiers
// (public keys, secret keys, signatures) and the message signing operations built on them.
//
// Solana keys are Ed25519 keys:
//   - a public key is 32 bytes, exchanged as base58
//   - a secret key is 64 bytes (32 byte seed followed by the 32 byte public key), exchanged as base58
//   - a signature is 64 bytes, exchanged as base58
//
// Keypair files are read in the Solana CLI format (a JSON array of the 64 secret key bytes)
// or as a JWK set holding a single Ed25519 private key.

package crypto

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// GenerateKeypair generates a new random Solana keypair
func GenerateKeypair() (solana.PrivateKey, error) {
	privateKey, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, WrapKeyManagementError(err, "failed to generate keypair")
	}
	return privateKey, nil
}

// ParsePublicKey decodes a base58 public key.
// field is the name of the request field the value came from and is used in the error message.
func ParsePublicKey(field, value string) (solana.PublicKey, error) {
	if value == "" {
		return solana.PublicKey{}, NewValidationError(fmt.Sprintf("invalid %s: public key is empty", field))
	}

	publicKey, err := solana.PublicKeyFromBase58(value)
	if err != nil {
		return solana.PublicKey{}, WrapValidationError(err, fmt.Sprintf("invalid %s", field))
	}
	return publicKey, nil
}

// ParseSecretKey decodes a base58 secret key.
//
// The decoded value must be 64 bytes and its second half must be the public key derived from its seed.
func ParseSecretKey(field, value string) (solana.PrivateKey, error) {
	if value == "" {
		return nil, NewValidationError(fmt.Sprintf("invalid %s: secret key is empty", field))
	}

	raw, err := base58.Decode(value)
	if err != nil {
		return nil, WrapValidationError(err, fmt.Sprintf("invalid %s", field))
	}

	privateKey, err := privateKeyFromBytes(raw)
	if err != nil {
		return nil, WrapValidationError(err, fmt.Sprintf("invalid %s", field))
	}
	return privateKey, nil
}

// ParseSignature decodes a base58 signature
func ParseSignature(field, value string) (solana.Signature, error) {
	if value == "" {
		return solana.Signature{}, NewSignatureError(fmt.Sprintf("invalid %s: signature is empty", field))
	}

	signature, err := solana.SignatureFromBase58(value)
	if err != nil {
		return solana.Signature{}, WrapSignatureError(err, fmt.Sprintf("invalid %s", field))
	}
	return signature, nil
}

// SignMessage signs the message bytes with the secret key (Ed25519, no prehashing)
func SignMessage(secret solana.PrivateKey, message []byte) (solana.Signature, error) {
	if len(secret) != ed25519.PrivateKeySize {
		return solana.Signature{}, NewValidationError(fmt.Sprintf("secret key must be %d bytes, got %d", ed25519.PrivateKeySize, len(secret)))
	}

	signature, err := secret.Sign(message)
	if err != nil {
		return solana.Signature{}, WrapSignatureError(err, "failed to sign message")
	}
	return signature, nil
}

// VerifyMessage reports whether signature is a valid signature of message by publicKey
func VerifyMessage(publicKey solana.PublicKey, signature solana.Signature, message []byte) bool {
	return signature.Verify(publicKey, message)
}

// privateKeyFromBytes checks raw is a well formed 64 byte Ed25519 secret key
func privateKeyFromBytes(raw []byte) (solana.PrivateKey, error) {
	if len(raw) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("secret key must be %d bytes, got %d", ed25519.PrivateKeySize, len(raw))
	}

	derived := ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], raw[ed25519.SeedSize:]) {
		return nil, fmt.Errorf("secret key public half does not match its seed")
	}

	return solana.PrivateKey(bytes.Clone(raw)), nil
}

// SaveKeypairFile writes the secret key in the Solana CLI keypair format (JSON array of bytes).
// note the key is not encrypted
//
// Parameters:
//   - baseDir: The base directory to scope file access (e.g., "./keys")
//   - filename: The filename within the base directory (e.g., "signer.json")
func SaveKeypairFile(privateKey solana.PrivateKey, baseDir, filename string) error {
	if len(privateKey) != ed25519.PrivateKeySize {
		return NewKeyManagementError(fmt.Sprintf("secret key must be %d bytes, got %d", ed25519.PrivateKeySize, len(privateKey)))
	}

	values := make([]int, len(privateKey))
	for i, b := range privateKey {
		values[i] = int(b)
	}

	jsonBytes, err := json.Marshal(values)
	if err != nil {
		return WrapKeyManagementError(err, "failed to marshal keypair")
	}

	root, err := os.OpenRoot(baseDir)
	if err != nil {
		return WrapKeyManagementError(err, fmt.Sprintf("failed to open root directory %s", baseDir))
	}
	defer root.Close()

	if err := root.WriteFile(filename, jsonBytes, 0600); err != nil {
		return WrapKeyManagementError(err, "failed to write keypair file")
	}

	return nil
}

// ReadKeypairFile loads a secret key from a Solana CLI keypair file or a JWK set file.
//
// Parameters:
//   - baseDir: The base directory to scope file access (e.g., "./keys")
//   - filename: The filename within the base directory (e.g., "signer.json")
func ReadKeypairFile(baseDir, filename string) (solana.PrivateKey, error) {
	root, err := os.OpenRoot(baseDir)
	if err != nil {
		return nil, WrapKeyManagementError(err, fmt.Sprintf("failed to open root directory %s", baseDir))
	}
	defer root.Close()

	content, err := root.ReadFile(filename)
	if err != nil {
		return nil, WrapKeyManagementError(err, "failed to read keypair file")
	}

	content = bytes.TrimSpace(content)
	switch {
	case bytes.HasPrefix(content, []byte("[")):
		return parseKeygenJSON(content)
	case bytes.HasPrefix(content, []byte("{")):
		return parsePrivateKeyJWKSet(content)
	default:
		return nil, NewKeyManagementError("unrecognised keypair file format (expected a JSON byte array or a JWK set)")
	}
}

// LoadSignerKey loads the keypair file at path (see ReadKeypairFile)
func LoadSignerKey(path string) (solana.PrivateKey, error) {
	return ReadKeypairFile(filepath.Dir(path), filepath.Base(path))
}

func parseKeygenJSON(content []byte) (solana.PrivateKey, error) {
	var values []int
	if err := json.Unmarshal(content, &values); err != nil {
		return nil, WrapKeyManagementError(err, "failed to parse keypair file")
	}

	raw := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return nil, NewKeyManagementError(fmt.Sprintf("keypair file byte %d out of range: %d", i, v))
		}
		raw[i] = byte(v)
	}

	privateKey, err := privateKeyFromBytes(raw)
	if err != nil {
		return nil, WrapKeyManagementError(err, "invalid keypair file")
	}
	return privateKey, nil
}
