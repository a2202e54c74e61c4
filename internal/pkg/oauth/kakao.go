package oauth

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"

	"github.com/jmk307/hellmap-api/internal/pkg/env"
)

const defaultKakaoUserInfoURL = "https://kapi.kakao.com/v2/user/me"

// KakaoVerifier resolves Kakao access tokens via the user/me endpoint.
type KakaoVerifier struct {
	UserInfoURL string
	HTTPClient  *http.Client
}

type kakaoUserInfo struct {
	ID           int64 `json:"id"`
	KakaoAccount struct {
		Email string `json:"email"`
	} `json:"kakao_account"`
}

func NewKakaoVerifierFromEnv() *KakaoVerifier {
	return &KakaoVerifier{
		UserInfoURL: env.GetEnv("KAKAO_USERINFO_URL", defaultKakaoUserInfoURL),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (v *KakaoVerifier) Verify(ctx context.Context, accessToken string) (*Identity, error) {
	body, err := fetchUserInfo(ctx, v.HTTPClient, v.UserInfoURL, accessToken)
	if err != nil {
		return nil, err
	}

	var info kakaoUserInfo
	if err := sonic.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("oauth: decode kakao userinfo: %w", err)
	}
	if info.ID == 0 {
		return nil, ErrTokenRejected
	}

	return &Identity{
		Provider:       "kakao",
		ProviderUserID: strconv.FormatInt(info.ID, 10),
		Email:          info.KakaoAccount.Email,
	}, nil
}
