package spl

import (
	"crypto/ed25519"
	"errors"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

var (
	// ErrInvalidWalletAddress is returned when the address is not a
	// base58-encoded ed25519 public key.
	ErrInvalidWalletAddress = errors.New("invalid wallet address")

	// ErrInvalidSignature is returned for undecodable or non-verifying
	// signatures.
	ErrInvalidSignature = errors.New("invalid signature")
)

// IsValidWalletAddress reports whether the string parses as a Solana
// public key.
func IsValidWalletAddress(address string) bool {
	_, err := solana.PublicKeyFromBase58(address)
	return err == nil
}

// VerifyWalletSignature checks a detached Ed25519 signature (base58, as
// wallet adapters emit) over the message bytes against the wallet's
// public key.
func VerifyWalletSignature(walletAddress, message, signature string) error {
	pub, err := solana.PublicKeyFromBase58(walletAddress)
	if err != nil {
		return ErrInvalidWalletAddress
	}

	sig, err := base58.Decode(signature)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return ErrInvalidSignature
	}

	if !ed25519.Verify(ed25519.PublicKey(pub[:]), []byte(message), sig) {
		return ErrInvalidSignature
	}
	return nil
}
