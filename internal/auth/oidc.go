package auth

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

// OIDCVerifier validates bearer tokens against a configured issuer
// (Keycloak-style realm roles).
type OIDCVerifier struct {
	provider  *oidc.Provider
	verifier  *oidc.IDTokenVerifier
	audience  string
	adminRole string
}

// NewOIDCVerifier discovers the issuer and builds a token verifier.
func NewOIDCVerifier(ctx context.Context, issuerURL, clientID, audience, adminRole string) (*OIDCVerifier, error) {
	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("OIDC discovery failed for %q: %w", issuerURL, err)
	}

	cfg := &oidc.Config{ClientID: clientID}
	if clientID == "" {
		cfg.SkipClientIDCheck = true
	}

	return &OIDCVerifier{
		provider:  provider,
		verifier:  provider.Verifier(cfg),
		audience:  audience,
		adminRole: adminRole,
	}, nil
}

// VerifyToken checks signature, expiry, and audience.
func (v *OIDCVerifier) VerifyToken(ctx context.Context, rawToken string) (*oidc.IDToken, error) {
	idToken, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	if v.audience != "" {
		found := false
		for _, aud := range idToken.Audience {
			if aud == v.audience {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("token audience does not include %q", v.audience)
		}
	}

	return idToken, nil
}

// HasRole reports whether the token carries the given realm role.
func (v *OIDCVerifier) HasRole(idToken *oidc.IDToken, role string) (bool, error) {
	if role == "" {
		return true, nil
	}

	var claims struct {
		RealmAccess struct {
			Roles []string `json:"roles"`
		} `json:"realm_access"`
		Roles []string `json:"roles"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return false, fmt.Errorf("failed to parse token claims: %w", err)
	}

	for _, r := range claims.RealmAccess.Roles {
		if r == role {
			return true, nil
		}
	}
	for _, r := range claims.Roles {
		if r == role {
			return true, nil
		}
	}
	return false, nil
}
