package oauth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"github.com/jmk307/hellmap-api/internal/pkg/env"
)

const defaultGoogleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleVerifier resolves Google access tokens via the userinfo endpoint.
type GoogleVerifier struct {
	UserInfoURL string
	HTTPClient  *http.Client
}

type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func NewGoogleVerifierFromEnv() *GoogleVerifier {
	return &GoogleVerifier{
		UserInfoURL: env.GetEnv("GOOGLE_USERINFO_URL", defaultGoogleUserInfoURL),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (v *GoogleVerifier) Verify(ctx context.Context, accessToken string) (*Identity, error) {
	body, err := fetchUserInfo(ctx, v.HTTPClient, v.UserInfoURL, accessToken)
	if err != nil {
		return nil, err
	}

	var info googleUserInfo
	if err := sonic.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("oauth: decode google userinfo: %w", err)
	}
	if info.ID == "" {
		return nil, ErrTokenRejected
	}

	return &Identity{
		Provider:       "google",
		ProviderUserID: info.ID,
		Email:          info.Email,
	}, nil
}

// fetchUserInfo performs the bearer-authenticated userinfo request shared by
// both providers. 401/403 map to ErrTokenRejected, everything else is a
// transport error.
func fetchUserInfo(ctx context.Context, client *http.Client, url, accessToken string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("oauth: build userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("oauth: userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		io.Copy(io.Discard, resp.Body)
		return nil, ErrTokenRejected
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oauth: userinfo status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("oauth: read userinfo response: %w", err)
	}
	return body, nil
}
