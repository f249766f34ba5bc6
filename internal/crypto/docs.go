// crypto package provides the key and signature functions used by the solgate API.
//
// Solana keys are Ed25519 keys exchanged as base58 strings. The package validates caller supplied
// keys and signatures, signs and verifies messages, reads and writes keypair files (Solana CLI JSON
// array or JWK set) and converts keys to JWKs for the /.well-known/jwks.json endpoint.
//
// Every error returned is a *CryptoError; its Code tells the API layer whether the caller or the
// server is at fault.
package crypto
