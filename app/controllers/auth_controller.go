package controllers

import (
	"errors"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/jmk307/hellmap-api/app/models"
	"github.com/jmk307/hellmap-api/app/repository"
	"github.com/jmk307/hellmap-api/internal/pkg/oauth"
	"github.com/jmk307/hellmap-api/internal/pkg/token"
)

var (
	verifiers   map[string]oauth.Verifier
	verifiersMu sync.RWMutex
)

func providerVerifier(provider string) oauth.Verifier {
	verifiersMu.Lock()
	if verifiers == nil {
		verifiers = map[string]oauth.Verifier{
			models.PROVIDER_GOOGLE: oauth.NewGoogleVerifierFromEnv(),
			models.PROVIDER_KAKAO:  oauth.NewKakaoVerifierFromEnv(),
		}
	}
	verifiersMu.Unlock()

	verifiersMu.RLock()
	defer verifiersMu.RUnlock()
	return verifiers[provider]
}

// SetProviderVerifiers replaces the provider clients. Tests use this to point
// the login handlers at httptest servers.
func SetProviderVerifiers(v map[string]oauth.Verifier) {
	verifiersMu.Lock()
	verifiers = v
	verifiersMu.Unlock()
}

type socialLoginRequest struct {
	AccessToken string `json:"accessToken"`
}

type signupRequest struct {
	Provider   string `json:"provider"`
	ProviderID string `json:"providerId"`
	Nickname   string `json:"nickname"`
}

// HandleGoogleLogin exchanges a Google access token for an API token.
func HandleGoogleLogin(c *fiber.Ctx) error {
	return handleSocialLogin(c, models.PROVIDER_GOOGLE)
}

// HandleKakaoLogin exchanges a Kakao access token for an API token.
func HandleKakaoLogin(c *fiber.Ctx) error {
	return handleSocialLogin(c, models.PROVIDER_KAKAO)
}

// handleSocialLogin verifies the provider token, then either logs the linked
// user in or tells the client to continue with signup. Unknown identities are
// not an error: isValid=false plus the provider id is what the signup form
// needs.
func handleSocialLogin(c *fiber.Ctx, provider string) error {
	var req socialLoginRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.AccessToken) == "" {
		return RespondError(c, fiber.StatusBadRequest, "accessToken is required")
	}

	verifier := providerVerifier(provider)
	if verifier == nil {
		return RespondError(c, fiber.StatusInternalServerError, "login provider is not configured")
	}

	identity, err := verifier.Verify(c.Context(), req.AccessToken)
	if err != nil {
		if errors.Is(err, oauth.ErrTokenRejected) {
			return RespondError(c, fiber.StatusUnauthorized, "provider rejected the access token")
		}
		log.Errorf("[Auth] %s verification failed: %v", provider, err)
		return RespondError(c, fiber.StatusBadGateway, "could not verify the access token")
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	account, err := repo.GetProviderAccount(provider, identity.ProviderUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RespondOK(c, fiber.Map{
				"isValid":     false,
				"provider":    provider,
				"providerId":  identity.ProviderUserID,
				"accessToken": "",
			})
		}
		return RespondError(c, fiber.StatusInternalServerError, "failed to look up account")
	}

	apiToken, err := token.Default().Issue(account.User.ID, account.User.Nickname)
	if err != nil {
		return RespondError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return RespondOK(c, fiber.Map{
		"isValid":     true,
		"provider":    provider,
		"providerId":  identity.ProviderUserID,
		"nickname":    account.User.Nickname,
		"accessToken": apiToken,
	})
}

// HandleNicknameCheck reports whether a nickname is already taken.
// data: true means taken, matching what the signup form expects.
func HandleNicknameCheck(c *fiber.Ctx) error {
	nickname := strings.TrimSpace(c.Query("nickname"))
	if nickname == "" {
		return RespondError(c, fiber.StatusBadRequest, "nickname is required")
	}
	if !models.ValidNickname(nickname) {
		return RespondError(c, fiber.StatusBadRequest, "nickname must be 2-12 characters of Hangul, letters or digits")
	}

	taken, err := repository.GetGlobalFactory().GetUserRepository().NicknameTaken(nickname)
	if err != nil {
		return RespondError(c, fiber.StatusInternalServerError, "failed to check nickname")
	}
	return RespondOK(c, taken)
}

// HandleSignup creates the user and links the social identity the login step
// reported as unknown.
func HandleSignup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return RespondError(c, fiber.StatusBadRequest, "invalid request body")
	}

	req.Provider = strings.ToLower(strings.TrimSpace(req.Provider))
	if req.Provider != models.PROVIDER_GOOGLE && req.Provider != models.PROVIDER_KAKAO {
		return RespondError(c, fiber.StatusBadRequest, "provider must be google or kakao")
	}
	if strings.TrimSpace(req.ProviderID) == "" {
		return RespondError(c, fiber.StatusBadRequest, "providerId is required")
	}

	repo := repository.GetGlobalFactory().GetUserRepository()

	if _, err := repo.GetProviderAccount(req.Provider, req.ProviderID); err == nil {
		return RespondError(c, fiber.StatusConflict, "account already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return RespondError(c, fiber.StatusInternalServerError, "failed to look up account")
	}

	user, err := models.CreateUser(strings.TrimSpace(req.Nickname))
	if err != nil {
		return RespondError(c, fiber.StatusBadRequest, "nickname must be 2-12 characters of Hangul, letters or digits")
	}

	taken, err := repo.NicknameTaken(user.Nickname)
	if err != nil {
		return RespondError(c, fiber.StatusInternalServerError, "failed to check nickname")
	}
	if taken {
		return RespondError(c, fiber.StatusConflict, "nickname is already taken")
	}

	if err := repo.Create(user); err != nil {
		return RespondError(c, fiber.StatusInternalServerError, "failed to create user")
	}
	if err := repo.LinkProviderAccount(&models.ProviderAccount{
		UserID:         user.ID,
		Provider:       req.Provider,
		ProviderUserID: req.ProviderID,
	}); err != nil {
		return RespondError(c, fiber.StatusInternalServerError, "failed to link account")
	}

	apiToken, err := token.Default().Issue(user.ID, user.Nickname)
	if err != nil {
		return RespondError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return RespondCreated(c, fiber.Map{
		"nickname":    user.Nickname,
		"accessToken": apiToken,
	})
}
