package main

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"maike/pkg/logger"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// writeKeyPair generates an RSA key and writes the private (PKCS#1) and
// public (PKIX) halves as PEM blocks to w.
func writeKeyPair(w io.Writer, bits int) error {
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return fmt.Errorf("could not generate RSA key: %w", err)
	}

	pub, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return fmt.Errorf("could not marshal public key: %w", err)
	}

	if err := pem.Encode(w, &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}); err != nil {
		return fmt.Errorf("could not write private key: %w", err)
	}
	if err := pem.Encode(w, &pem.Block{Type: "PUBLIC KEY", Bytes: pub}); err != nil {
		return fmt.Errorf("could not write public key: %w", err)
	}

	return nil
}

// keygenCommand prints a fresh RSA key pair for JWT_PRIVATE_KEY and
// JWT_PUBLIC_KEY. Meant for development setups.
func keygenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generates an RSA key pair for signing session tokens",
		Run: func(cmd *cobra.Command, args []string) {
			bits, _ := cmd.Flags().GetInt("bits")
			if err := writeKeyPair(os.Stdout, bits); err != nil {
				logger.Fatal(context.Background(), "could not generate key pair", zap.Error(err))
			}
		},
	}

	cmd.Flags().Int("bits", 2048, "RSA key size")

	return cmd
}
