package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
)

func newAuthCmd() *cobra.Command {
	var keyHex string
	var challenge string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with a wallet private key",
		Long: `auth signs a challenge message with the given private key and exchanges
the signature for a bearer token. The token and the derived address are
cached for subsequent commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := crypto.HexToECDSA(strings.TrimPrefix(keyHex, "0x"))
			if err != nil {
				return fmt.Errorf("invalid private key: %w", err)
			}

			address := crypto.PubkeyToAddress(key.PublicKey).Hex()

			if challenge == "" {
				challenge = fmt.Sprintf("blackjack login %s at %s", address, time.Now().UTC().Format(time.RFC3339))
			}

			sig, err := crypto.Sign(accounts.TextHash([]byte(challenge)), key)
			if err != nil {
				return fmt.Errorf("failed to sign challenge: %w", err)
			}
			// Present the recovery id the way wallets do.
			sig[crypto.RecoveryIDOffset] += 27

			var result TokenResult
			body := SessionRequest{
				Action:    "auth",
				Player:    address,
				Message:   challenge,
				Signature: hexutil.Encode(sig),
			}
			if err := client.Post("/session", body, &result); err != nil {
				return err
			}

			if err := cfg.SaveToken(result.Token); err != nil {
				return err
			}
			if err := cfg.SavePlayer(address); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Authenticated as %s", address))
			return nil
		},
	}

	cmd.Flags().StringVar(&keyHex, "key", "", "Hex-encoded wallet private key")
	cmd.Flags().StringVar(&challenge, "challenge", "", "Challenge message to sign (default includes address and timestamp)")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
