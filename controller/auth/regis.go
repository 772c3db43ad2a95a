package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"sitecms_be/helper/at"
	"sitecms_be/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var user model.Akun
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "The JSON request body could not be decoded. Please check the structure of your request."))
		return
	}

	if user.RoleID == 0 {
		user.RoleID = 2
	}

	if user.Nama == "" || user.Email == "" || user.Password == "" {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Please provide nama, email and password."))
		return
	}

	var existing model.Akun
	err := h.DB.Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		at.WriteJSON(w, http.StatusConflict, model.Fail(http.StatusConflict, "An account with this email already exists."))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] Failed to check existing account: %v", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to check existing account."))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] Failed to hash password: %v", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to hash password."))
		return
	}
	user.Password = string(hashed)

	if err := h.DB.Create(&user).Error; err != nil {
		log.Printf("[ERROR] Failed to create account: %v", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to create account."))
		return
	}

	user.Password = ""
	at.WriteJSON(w, http.StatusCreated, model.Ok(http.StatusCreated, user))
}
