package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"sitecms_be/config"
	"sitecms_be/helper/at"
	"sitecms_be/helper/watoken"
	"sitecms_be/model"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/oauth2/v1"
	"google.golang.org/api/option"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

func (h *Handler) LoginUsers(w http.ResponseWriter, r *http.Request) {
	var loginData struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&loginData); err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "The JSON request body could not be decoded. Please check the structure of your request."))
		return
	}

	if loginData.Email == "" || loginData.Password == "" {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Email and password must not be empty."))
		return
	}

	var akun model.Akun
	err := h.DB.Where("email = ?", loginData.Email).First(&akun).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			at.WriteJSON(w, http.StatusUnauthorized, model.Fail(http.StatusUnauthorized, "Email is not registered."))
			return
		}
		log.Printf("[ERROR] Failed to query account: %v", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to query account."))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(akun.Password), []byte(loginData.Password)); err != nil {
		at.WriteJSON(w, http.StatusUnauthorized, model.Fail(http.StatusUnauthorized, "Wrong password."))
		return
	}

	var role model.Role
	if err := h.DB.First(&role, akun.RoleID).Error; err != nil {
		log.Printf("[ERROR] Failed to fetch role: %v", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to fetch role."))
		return
	}

	token, err := watoken.EncodeforHours(strconv.Itoa(akun.ID), akun.Nama, config.PrivateKey, 18)
	if err != nil {
		log.Printf("[ERROR] Failed to generate token: %v", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to generate token."))
		return
	}

	at.WriteJSON(w, http.StatusOK, model.Ok(http.StatusOK, map[string]interface{}{
		"token": token,
		"name":  akun.Nama,
		"role":  role.Rolename,
	}))
}

// LoginWithGoogle verifies a Google ID token, auto-provisions an account for
// unseen emails, and hands back a normal login token.
func (h *Handler) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	var requestBody struct {
		IDToken string `json:"id_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil || requestBody.IDToken == "" {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Please provide a valid ID token."))
		return
	}

	oauth2Service, err := oauth2.NewService(r.Context(), option.WithoutAuthentication())
	if err != nil {
		log.Printf("[ERROR] Failed to create OAuth2 service: %v", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to create OAuth2 service."))
		return
	}

	tokenInfoCall := oauth2Service.Tokeninfo()
	tokenInfoCall.IdToken(requestBody.IDToken)
	tokenInfo, err := tokenInfoCall.Do()
	if err != nil {
		log.Printf("[ERROR] Failed to verify ID token: %v", err)
		at.WriteJSON(w, http.StatusUnauthorized, model.Fail(http.StatusUnauthorized, "Invalid Google ID token."))
		return
	}

	email := tokenInfo.Email

	var akun model.Akun
	err = h.DB.Where("email = ?", email).First(&akun).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// First Google login gets the editor role.
		akun = model.Akun{Nama: email, Email: email, RoleID: 2}
		if err := h.DB.Create(&akun).Error; err != nil {
			log.Printf("[ERROR] Failed to create account: %v", err)
			at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to create account."))
			return
		}
	} else if err != nil {
		log.Printf("[ERROR] Failed to query account: %v", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to query account."))
		return
	}

	token, err := watoken.EncodeforHours(strconv.Itoa(akun.ID), akun.Email, config.PrivateKey, 18)
	if err != nil {
		log.Printf("[ERROR] Failed to generate token: %v", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to generate token."))
		return
	}

	at.WriteJSON(w, http.StatusOK, model.Ok(http.StatusOK, map[string]interface{}{
		"token": token,
		"email": akun.Email,
	}))
}
