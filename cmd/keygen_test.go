package main

import (
	"bytes"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestWriteKeyPair(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeKeyPair(&buf, 2048))

	priv, err := jwt.ParseRSAPrivateKeyFromPEM(buf.Bytes())
	require.NoError(t, err)

	_, rest, found := bytes.Cut(buf.Bytes(), []byte("-----END RSA PRIVATE KEY-----\n"))
	require.True(t, found)
	pub, err := jwt.ParseRSAPublicKeyFromPEM(rest)
	require.NoError(t, err)
	require.Zero(t, priv.PublicKey.N.Cmp(pub.N))
}

func TestConfigArgs(t *testing.T) {
	cases := []struct {
		args []string
		want []string
	}{
		{args: []string{"serve"}, want: nil},
		{args: []string{"-c", "dev.yml", "serve"}, want: []string{"-c", "dev.yml"}},
		{args: []string{"jwt", "--subject", "x", "--config=prod.yml"}, want: []string{"-c", "prod.yml"}},
		{args: []string{"migrate", "-c=local.yml"}, want: []string{"-c", "local.yml"}},
	}

	for _, c := range cases {
		require.Equal(t, c.want, configArgs(c.args), c.args)
	}
}
