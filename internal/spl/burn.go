// Package spl contains pure helpers for the SPL token program wire format
// and for wallet signature checks. Nothing here touches the network.
package spl

import (
	"encoding/binary"
	"errors"

	"github.com/gagliardetto/solana-go"
)

// Token program burn opcodes.
const (
	opBurn        = 8
	opBurnChecked = 9
)

var (
	// ErrNoBurnInstruction is returned when a transaction carries no
	// token-program burn.
	ErrNoBurnInstruction = errors.New("no burn instruction found in transaction")

	// ErrMalformedInstruction is returned for burn payloads or account
	// lists that do not match the token program layout.
	ErrMalformedInstruction = errors.New("malformed burn instruction")
)

// Burn is a decoded token-program burn instruction.
type Burn struct {
	Amount    uint64           // raw token units destroyed
	Mint      solana.PublicKey // token mint the burn applies to
	Authority solana.PublicKey // owner that signed the burn
}

// DecodeBurnAmount parses the burned amount from a token-program burn
// payload: one opcode byte (8 Burn, 9 BurnChecked) followed by a
// little-endian uint64.
func DecodeBurnAmount(data []byte) (uint64, error) {
	if len(data) < 9 {
		return 0, ErrMalformedInstruction
	}
	if data[0] != opBurn && data[0] != opBurnChecked {
		return 0, ErrMalformedInstruction
	}
	return binary.LittleEndian.Uint64(data[1:9]), nil
}

// FindBurn scans a transaction message for the first token-program burn
// instruction and resolves its amount, mint, and authority. Burn accounts
// are laid out as [token account, mint, authority].
func FindBurn(msg *solana.Message) (*Burn, error) {
	for _, ix := range msg.Instructions {
		if int(ix.ProgramIDIndex) >= len(msg.AccountKeys) {
			continue
		}
		if !msg.AccountKeys[ix.ProgramIDIndex].Equals(solana.TokenProgramID) {
			continue
		}
		if len(ix.Data) == 0 || (ix.Data[0] != opBurn && ix.Data[0] != opBurnChecked) {
			continue
		}

		amount, err := DecodeBurnAmount(ix.Data)
		if err != nil {
			return nil, err
		}
		if len(ix.Accounts) < 3 {
			return nil, ErrMalformedInstruction
		}
		mintIdx := int(ix.Accounts[1])
		authIdx := int(ix.Accounts[2])
		if mintIdx >= len(msg.AccountKeys) || authIdx >= len(msg.AccountKeys) {
			return nil, ErrMalformedInstruction
		}

		return &Burn{
			Amount:    amount,
			Mint:      msg.AccountKeys[mintIdx],
			Authority: msg.AccountKeys[authIdx],
		}, nil
	}
	return nil, ErrNoBurnInstruction
}
