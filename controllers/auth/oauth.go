package authController

import (
	"fintrack/config"
	"fintrack/database"
	"fintrack/middleware"
	"fintrack/models"
	"fintrack/utils"
	"log"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

// GoogleLogin verifies a Google ID token and signs the user in,
// provisioning the account on first login
func GoogleLogin(c *fiber.Ctx) error {
	reqData := new(struct {
		Credential string `json:"credential"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.Credential == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No credential provided!", nil)
	}

	payload, err := idtoken.Validate(c.Context(), reqData.Credential, config.AppConfig.GoogleClientID)
	if err != nil {
		log.Printf("Google token validation failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Google authentication failed!", nil)
	}

	email := claimString(payload.Claims, "email")
	name := claimString(payload.Claims, "name")
	picture := claimString(payload.Claims, "picture")

	if email == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email not provided by Google!", nil)
	}

	user, err := findOrCreateOAuthUser(name, email, picture, models.AuthProviderGoogle)
	if err != nil {
		log.Printf("Error provisioning Google user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign in with Google!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.FullName, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Google login successful.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

type githubUser struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// GithubLogin exchanges an OAuth code for a GitHub access token and
// signs the user in, provisioning the account on first login
func GithubLogin(c *fiber.Ctx) error {
	reqData := new(struct {
		Code string `json:"code"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.Code == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Code is required!", nil)
	}

	client := resty.New()

	// Exchange the code for an access token
	var tokenData struct {
		AccessToken string `json:"access_token"`
	}
	resp, err := client.R().
		SetHeader("Accept", "application/json").
		SetBody(map[string]string{
			"client_id":     config.AppConfig.GithubClientID,
			"client_secret": config.AppConfig.GithubClientSecret,
			"code":          reqData.Code,
		}).
		SetResult(&tokenData).
		Post("https://github.com/login/oauth/access_token")
	if err != nil || resp.IsError() || tokenData.AccessToken == "" {
		log.Printf("GitHub token exchange failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to get GitHub token!", nil)
	}

	// Fetch the GitHub profile
	var ghUser githubUser
	resp, err = client.R().
		SetHeader("Authorization", "token "+tokenData.AccessToken).
		SetResult(&ghUser).
		Get("https://api.github.com/user")
	if err != nil || resp.IsError() {
		log.Printf("GitHub user fetch failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "GitHub authentication failed!", nil)
	}

	// The profile email can be private, fall back to the emails endpoint
	if ghUser.Email == "" {
		var emails []githubEmail
		resp, err = client.R().
			SetHeader("Authorization", "token "+tokenData.AccessToken).
			SetResult(&emails).
			Get("https://api.github.com/user/emails")
		if err == nil && !resp.IsError() {
			for _, e := range emails {
				if e.Primary && e.Verified {
					ghUser.Email = e.Email
					break
				}
			}
		}
	}

	if ghUser.Email == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "GitHub email not found!", nil)
	}

	name := ghUser.Name
	if name == "" {
		name = ghUser.Login
	}

	user, err := findOrCreateOAuthUser(name, ghUser.Email, ghUser.AvatarURL, models.AuthProviderGithub)
	if err != nil {
		log.Printf("Error provisioning GitHub user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign in with GitHub!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.FullName, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "GitHub login successful.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// findOrCreateOAuthUser looks up a user by email, creating one with an
// unusable random local password when the provider signs them in for
// the first time
func findOrCreateOAuthUser(fullName, email, avatarURL string, provider models.AuthProvider) (*models.User, error) {
	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err == nil {
		return &user, nil
	}

	placeholder, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), config.AppConfig.SaltRound)
	if err != nil {
		return nil, err
	}

	user = models.User{
		FullName:     fullName,
		Email:        email,
		Password:     string(placeholder),
		ProfileImage: avatarURL,
		AuthProvider: provider,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}

	utils.SendWelcomeEmail(user.Email, user.FullName)

	return &user, nil
}

func claimString(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
