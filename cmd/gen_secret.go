package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"
)

var secretBytes int

var genSecretCmd = &cobra.Command{
	Use:   "gen-secret",
	Short: "Generate a session signing secret",
	Long: `Prints a random secret for SESSION_SECRET. Use a different secret per
environment; rotating it invalidates every issued cart session.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		secret, err := generateSecureKey(secretBytes)
		if err != nil {
			return fmt.Errorf("generate session secret: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "# Add to your .env file (never commit it)")
		fmt.Fprintf(out, "SESSION_SECRET=%s\n", secret)
		return nil
	},
}

func init() {
	genSecretCmd.Flags().IntVar(&secretBytes, "bytes", 32, "Secret length in bytes")
}

func generateSecureKey(length int) (string, error) {
	if length < 16 {
		return "", fmt.Errorf("secret must be at least 16 bytes, got %d", length)
	}
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
