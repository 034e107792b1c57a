// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/canonical/chapter-service/pkg/authentication"
)

var (
	clientID     string
	clientSecret string
	tokenURL     string
	issuerURL    string
	scopes       []string

	mintSubject  string
	mintEmail    string
	mintSecret   string
	mintIssuer   string
	mintAudience string
	mintTTL      time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get an access token",
	Long: `Get an access token.

By default the OAuth2 client credentials flow is used. With --mint a HS256 token is signed
locally with the shared secret used by AUTHENTICATION_MODE=jwt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			token string
			err   error
		)

		if mint, _ := cmd.Flags().GetBool("mint"); mint {
			token, err = mintToken(time.Now())
		} else {
			token, err = clientCredentialsToken(cmd.Context())
		}
		if err != nil {
			return err
		}

		cmd.Println(token)
		return nil
	},
}

func clientCredentialsToken(ctx context.Context) (string, error) {
	if clientID == "" || clientSecret == "" {
		return "", fmt.Errorf("--client-id and --client-secret are required")
	}

	if tokenURL == "" {
		if issuerURL == "" {
			return "", fmt.Errorf("either --token-url or --issuer-url must be provided")
		}

		// Discovery endpoint
		provider, err := oidc.NewProvider(ctx, issuerURL)
		if err != nil {
			return "", fmt.Errorf("failed to create OIDC provider from issuer: %w", err)
		}
		tokenURL = provider.Endpoint().TokenURL
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
		Scopes:       scopes,
	}

	token, err := config.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token.AccessToken, nil
}

func mintToken(now time.Time) (string, error) {
	if mintSecret == "" || mintSubject == "" {
		return "", fmt.Errorf("--secret and --subject are required with --mint")
	}

	claims := authentication.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   mintSubject,
			Issuer:    mintIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(mintTTL)),
		},
		Email: mintEmail,
	}
	if mintAudience != "" {
		claims.Audience = jwt.ClaimStrings{mintAudience}
	}

	return authentication.MintToken(mintSecret, claims)
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&clientID, "client-id", "", "Client ID")
	tokenCmd.Flags().StringVar(&clientSecret, "client-secret", "", "Client Secret")
	tokenCmd.Flags().StringVar(&tokenURL, "token-url", "", "Token URL")
	tokenCmd.Flags().StringVar(&issuerURL, "issuer-url", "", "Issuer URL (for OIDC discovery)")
	tokenCmd.Flags().StringSliceVar(&scopes, "scopes", []string{}, "Scopes (comma-separated)")

	tokenCmd.Flags().Bool("mint", false, "Sign a HS256 token locally instead of calling a token endpoint")
	tokenCmd.Flags().StringVar(&mintSubject, "subject", "", "Token subject (user id) when minting")
	tokenCmd.Flags().StringVar(&mintEmail, "email", "", "Email claim when minting")
	tokenCmd.Flags().StringVar(&mintSecret, "secret", "", "Shared secret when minting")
	tokenCmd.Flags().StringVar(&mintIssuer, "issuer", "", "Issuer claim when minting")
	tokenCmd.Flags().StringVar(&mintAudience, "audience", "authenticated", "Audience claim when minting")
	tokenCmd.Flags().DurationVar(&mintTTL, "ttl", time.Hour, "Lifetime of a minted token")
}
