package auth

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// EthereumVerifier verifies EIP-191 personal-sign signatures, the scheme
// browser wallets use for message signing.
type EthereumVerifier struct{}

// Ensure EthereumVerifier implements Verifier
var _ Verifier = (*EthereumVerifier)(nil)

// NewEthereumVerifier creates a new EthereumVerifier
func NewEthereumVerifier() *EthereumVerifier {
	return &EthereumVerifier{}
}

// Verify recovers the signing address from a hex-encoded signature over
// the personal-sign hash of message and compares it to the claimed
// address, ignoring case. Malformed signatures are errors; a well-formed
// signature by the wrong key is simply not valid.
func (v *EthereumVerifier) Verify(address, message, signature string) (bool, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return false, fmt.Errorf("decode signature: %w", err)
	}
	if len(sig) != crypto.SignatureLength {
		return false, fmt.Errorf("signature must be %d bytes, got %d", crypto.SignatureLength, len(sig))
	}

	// Wallets encode the recovery id as 27/28 rather than 0/1.
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig = append([]byte(nil), sig...)
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pubKey, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return false, nil
	}

	recovered := crypto.PubkeyToAddress(*pubKey)
	return strings.EqualFold(recovered.Hex(), address), nil
}
