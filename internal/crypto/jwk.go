// JWK (JSON Web Key) support for Solana keys
//
// Solana keys are Ed25519 keys, so they map onto OKP JWKs (crv Ed25519).
// Reference: https://datatracker.ietf.org/doc/html/rfc8037
//
// these functions are used to publish the server's signer public key on /.well-known/jwks.json
// and by the keygen CLI to write keys in JWK format.

package crypto

import (
	"crypto"
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
)

// PublicKeyToJWK converts a Solana public key to an Ed25519 JWK
func PublicKeyToJWK(publicKey solana.PublicKey, keyID string) (jwk.Key, error) {
	if publicKey.IsZero() {
		return nil, NewValidationError("public key is zero")
	}
	if keyID == "" {
		return nil, NewValidationError("keyID is required")
	}

	key, err := jwk.Import(ed25519.PublicKey(publicKey.Bytes()))
	if err != nil {
		return nil, WrapKeyManagementError(err, "failed to create JWK from Ed25519 public key")
	}

	if err := setSigningKeyFields(key, keyID); err != nil {
		return nil, err
	}
	return key, nil
}

// PrivateKeyToJWK converts a Solana secret key to an Ed25519 JWK
func PrivateKeyToJWK(privateKey solana.PrivateKey, keyID string) (jwk.Key, error) {
	if len(privateKey) != ed25519.PrivateKeySize {
		return nil, NewValidationError(fmt.Sprintf("secret key must be %d bytes, got %d", ed25519.PrivateKeySize, len(privateKey)))
	}
	if keyID == "" {
		return nil, NewValidationError("keyID is required")
	}

	key, err := jwk.Import(ed25519.PrivateKey(privateKey))
	if err != nil {
		return nil, WrapKeyManagementError(err, "failed to create JWK from Ed25519 private key")
	}

	if err := setSigningKeyFields(key, keyID); err != nil {
		return nil, err
	}
	return key, nil
}

func setSigningKeyFields(key jwk.Key, keyID string) error {
	if err := key.Set(jwk.KeyIDKey, keyID); err != nil {
		return WrapInternalError(err, "failed to set key ID")
	}
	if err := key.Set(jwk.AlgorithmKey, jwa.EdDSA()); err != nil {
		return WrapInternalError(err, "failed to set algorithm")
	}
	if err := key.Set(jwk.KeyUsageKey, jwk.ForSignature); err != nil {
		return WrapInternalError(err, "failed to set key usage")
	}
	return nil
}

// GenerateKeyID returns the first 16 characters of the hex-encoded SHA-256 JWK thumbprint (RFC 7638) of the public key
func GenerateKeyID(publicKey solana.PublicKey) (string, error) {
	jwkKey, err := jwk.Import(ed25519.PublicKey(publicKey.Bytes()))
	if err != nil {
		return "", WrapKeyManagementError(err, "failed to import key")
	}

	thumbprint, err := jwkKey.Thumbprint(crypto.SHA256)
	if err != nil {
		return "", WrapInternalError(err, "failed to generate thumbprint")
	}

	return fmt.Sprintf("%x", thumbprint)[:16], nil
}

// PublicJWKSet returns a JWK set containing the public key of each of the supplied secret keys.
// The key ID of each entry is its thumbprint (see GenerateKeyID).
func PublicJWKSet(privateKeys ...solana.PrivateKey) (jwk.Set, error) {
	set := jwk.NewSet()
	for _, privateKey := range privateKeys {
		publicKey := privateKey.PublicKey()

		keyID, err := GenerateKeyID(publicKey)
		if err != nil {
			return nil, err
		}

		key, err := PublicKeyToJWK(publicKey, keyID)
		if err != nil {
			return nil, err
		}

		if err := set.AddKey(key); err != nil {
			return nil, WrapInternalError(err, "failed to add key to JWK set")
		}
	}
	return set, nil
}

// SavePrivateKeyToJWKFile saves a secret key to a JWK set file
// note the key is not encrypted
//
// Parameters:
//   - baseDir: The base directory to scope file access (e.g., "./keys")
//   - filename: The filename within the base directory (e.g., "signer.private.jwk")
func SavePrivateKeyToJWKFile(privateKey solana.PrivateKey, keyID, baseDir, filename string) error {
	key, err := PrivateKeyToJWK(privateKey, keyID)
	if err != nil {
		return err
	}
	return writeJWKSet(key, baseDir, filename, 0600)
}

// SavePublicKeyToJWKFile saves a public key to a JWK set file
//
// Parameters:
//   - baseDir: The base directory to scope file access (e.g., "./keys")
//   - filename: The filename within the base directory (e.g., "signer.public.jwk")
func SavePublicKeyToJWKFile(publicKey solana.PublicKey, keyID, baseDir, filename string) error {
	key, err := PublicKeyToJWK(publicKey, keyID)
	if err != nil {
		return err
	}
	return writeJWKSet(key, baseDir, filename, 0644)
}

func writeJWKSet(key jwk.Key, baseDir, filename string, perm os.FileMode) error {
	jwkSet := jwk.NewSet()
	if err := jwkSet.AddKey(key); err != nil {
		return WrapInternalError(err, "failed to add key to JWK set")
	}

	jsonBytes, err := json.MarshalIndent(jwkSet, "", "  ")
	if err != nil {
		return WrapInternalError(err, "failed to marshal JWK set")
	}

	root, err := os.OpenRoot(baseDir)
	if err != nil {
		return WrapKeyManagementError(err, fmt.Sprintf("failed to open root directory %s", baseDir))
	}
	defer root.Close()

	if err := root.WriteFile(filename, jsonBytes, perm); err != nil {
		return WrapKeyManagementError(err, "failed to write file")
	}

	return nil
}

// parsePrivateKeyJWKSet extracts the Ed25519 private key from the first entry of a JWK set
func parsePrivateKeyJWKSet(content []byte) (solana.PrivateKey, error) {
	jwkSet, err := jwk.Parse(content)
	if err != nil {
		return nil, WrapKeyManagementError(err, "failed to parse JWK set")
	}

	if jwkSet.Len() == 0 {
		return nil, NewKeyManagementError("JWK set is empty")
	}

	jwkKey, ok := jwkSet.Key(0)
	if !ok {
		return nil, NewKeyManagementError("failed to get key from JWK set")
	}

	var raw any
	if err := jwk.Export(jwkKey, &raw); err != nil {
		return nil, WrapKeyManagementError(err, "failed to export key")
	}

	privateKey, ok := raw.(ed25519.PrivateKey)
	if !ok {
		return nil, NewKeyManagementError(fmt.Sprintf("key is not an Ed25519 private key (got %T)", raw))
	}

	key, err := privateKeyFromBytes(privateKey)
	if err != nil {
		return nil, WrapKeyManagementError(err, "invalid JWK private key")
	}
	return key, nil
}
