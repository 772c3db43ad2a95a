package akun

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

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

func (h *Handler) GetAllAkun(w http.ResponseWriter, r *http.Request) {
	var akun []model.Akun
	if err := h.DB.Omit("password").Find(&akun).Error; err != nil {
		log.Printf("[ERROR] Failed to fetch accounts: %v", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to fetch accounts."))
		return
	}
	for i := range akun {
		akun[i].Password = ""
	}

	at.WriteJSON(w, http.StatusOK, model.Ok(http.StatusOK, akun))
}

func (h *Handler) GetById(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Please provide a valid user ID."))
		return
	}

	var akun model.Akun
	if err := h.DB.First(&akun, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			at.WriteJSON(w, http.StatusNotFound, model.Fail(http.StatusNotFound, "No account found with the provided ID."))
			return
		}
		log.Printf("[ERROR] Failed to fetch account: %v", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to fetch account."))
		return
	}
	akun.Password = ""

	at.WriteJSON(w, http.StatusOK, model.Ok(http.StatusOK, akun))
}

func (h *Handler) AddAkun(w http.ResponseWriter, r *http.Request) {
	var akun model.Akun
	if err := json.NewDecoder(r.Body).Decode(&akun); err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "The JSON request body could not be decoded."))
		return
	}

	if akun.Nama == "" || akun.Email == "" || akun.Password == "" || akun.RoleID == 0 {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Please provide nama, email, password and id_role."))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(akun.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] Failed to hash password: %v", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to hash password."))
		return
	}
	akun.Password = string(hashed)

	if err := h.DB.Create(&akun).Error; err != nil {
		log.Printf("[ERROR] Failed to create account: %v", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to create account."))
		return
	}

	akun.Password = ""
	at.WriteJSON(w, http.StatusCreated, model.Ok(http.StatusCreated, akun))
}

func (h *Handler) EditDataAkun(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Please provide a valid user ID."))
		return
	}

	var payload struct {
		Nama   string `json:"nama"`
		NoTelp string `json:"no_telp"`
		Email  string `json:"email"`
		RoleID int    `json:"id_role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "The JSON request body could not be decoded."))
		return
	}

	if payload.Nama == "" || payload.Email == "" || payload.RoleID == 0 {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Please provide valid data for the account."))
		return
	}

	res := h.DB.Model(&model.Akun{}).Where("id = ?", id).Updates(map[string]interface{}{
		"nama":    payload.Nama,
		"no_telp": payload.NoTelp,
		"email":   payload.Email,
		"role_id": payload.RoleID,
	})
	if res.Error != nil {
		log.Printf("[ERROR] Failed to update account: %v", res.Error)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to update account."))
		return
	}
	if res.RowsAffected == 0 {
		at.WriteJSON(w, http.StatusNotFound, model.Fail(http.StatusNotFound, "No account found with the provided ID."))
		return
	}

	at.WriteJSON(w, http.StatusOK, model.Response{
		Success:    true,
		Message:    "Account updated successfully",
		StatusCode: http.StatusOK,
	})
}

func (h *Handler) DeleteAkun(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Please provide a valid user ID."))
		return
	}

	res := h.DB.Delete(&model.Akun{}, "id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] Failed to delete account: %v", res.Error)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to delete account."))
		return
	}
	if res.RowsAffected == 0 {
		at.WriteJSON(w, http.StatusNotFound, model.Fail(http.StatusNotFound, "No account found with the provided ID."))
		return
	}

	at.WriteJSON(w, http.StatusOK, model.Response{
		Success:    true,
		Message:    "Account deleted successfully",
		StatusCode: http.StatusOK,
	})
}
