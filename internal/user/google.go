package user

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type GoogleProfile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleVerifier exchanges an authorization code for the user's Google profile.
type GoogleVerifier interface {
	Exchange(ctx context.Context, code string) (*GoogleProfile, string, error)
}

type googleVerifier struct {
	config *oauth2.Config
}

func NewGoogleVerifier() GoogleVerifier {
	return &googleVerifier{
		config: &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://accounts.google.com/o/oauth2/auth",
				TokenURL: "https://oauth2.googleapis.com/token",
			},
		},
	}
}

func (g *googleVerifier) Exchange(ctx context.Context, code string) (*GoogleProfile, string, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, "", fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	client := g.config.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("userinfo endpoint returned status %d", resp.StatusCode)
	}

	var profile GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, "", fmt.Errorf("failed to decode user info: %w", err)
	}
	if profile.Email == "" {
		return nil, "", fmt.Errorf("userinfo response missing email")
	}

	return &profile, token.RefreshToken, nil
}
