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

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email       string `json:"email"`
		NewPassword string `json:"new_password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "The JSON request body could not be decoded."))
		return
	}

	if request.Email == "" || request.NewPassword == "" {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Please provide the email and the new password."))
		return
	}

	var akun model.Akun
	if err := h.DB.Where("email = ?", request.Email).First(&akun).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			at.WriteJSON(w, http.StatusNotFound, model.Fail(http.StatusNotFound, "No account found with the provided email."))
			return
		}
		log.Printf("[ERROR] Failed to query account: %v", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to query account."))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] Failed to hash password: %v", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to hash password."))
		return
	}

	if err := h.DB.Model(&akun).Update("password", string(hashed)).Error; err != nil {
		log.Printf("[ERROR] Failed to update password: %v", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to update password."))
		return
	}

	at.WriteJSON(w, http.StatusOK, model.Response{
		Success:    true,
		Message:    "Password updated successfully",
		StatusCode: http.StatusOK,
	})
}
