package banner

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"sitecms_be/helper/at"
	"sitecms_be/helper/atdb"
	"sitecms_be/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const Collection = "banners"

type Handler struct {
	DB *mongo.Database
}

func NewHandler(db *mongo.Database) *Handler {
	return &Handler{DB: db}
}

// CreateBanner stores a new banner. New banners always start visible; an
// isActive value in the request body is ignored and toggled via UpdateBanner.
func (h *Handler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var banner model.Banner
	if err := json.NewDecoder(r.Body).Decode(&banner); err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "The JSON request body could not be decoded."))
		return
	}

	if banner.Title.EN == "" || banner.Title.VI == "" {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Both title.en and title.vi are required."))
		return
	}
	if banner.Order < 0 {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Order must be a non-negative integer."))
		return
	}

	banner.ID = primitive.NilObjectID
	banner.IsActive = true
	banner.CreatedAt = time.Now()
	banner.UpdatedAt = banner.CreatedAt

	id, err := atdb.InsertOneDoc(r.Context(), h.DB, Collection, banner)
	if err != nil {
		log.Println("[ERROR] Failed to insert banner:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to create banner."))
		return
	}
	banner.ID = id

	at.WriteJSON(w, http.StatusCreated, model.Ok(http.StatusCreated, banner))
}

func (h *Handler) GetAllBanners(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if r.URL.Query().Get("active") != "false" {
		filter["isActive"] = true
	}

	banners, err := atdb.GetAllDoc[model.Banner](r.Context(), h.DB, Collection, filter,
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: 1}}))
	if err != nil {
		log.Println("[ERROR] Failed to fetch banners:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to fetch banners."))
		return
	}
	if banners == nil {
		banners = []model.Banner{}
	}

	at.WriteJSON(w, http.StatusOK, model.Ok(http.StatusOK, banners))
}

func (h *Handler) GetBannerByID(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(r.URL.Query().Get("id"))
	if err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Invalid banner ID format."))
		return
	}

	banner, err := atdb.GetOneDoc[model.Banner](r.Context(), h.DB, Collection, bson.M{"_id": oid})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			at.WriteJSON(w, http.StatusNotFound, model.Fail(http.StatusNotFound, "No banner found with the provided ID."))
			return
		}
		log.Println("[ERROR] Failed to fetch banner:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to fetch banner."))
		return
	}

	at.WriteJSON(w, http.StatusOK, model.Ok(http.StatusOK, banner))
}

func (h *Handler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(r.URL.Query().Get("id"))
	if err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Invalid banner ID format."))
		return
	}

	var payload struct {
		Title    *model.LocalizedText `json:"title,omitempty"`
		Subtitle *model.LocalizedText `json:"subtitle,omitempty"`
		Image    *string              `json:"image,omitempty"`
		Link     *string              `json:"link,omitempty"`
		Order    *int                 `json:"order,omitempty"`
		IsActive *bool                `json:"isActive,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "The JSON request body could not be decoded."))
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if payload.Title != nil {
		if payload.Title.EN == "" || payload.Title.VI == "" {
			at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Both title.en and title.vi are required."))
			return
		}
		set["title"] = *payload.Title
	}
	if payload.Subtitle != nil {
		set["subtitle"] = *payload.Subtitle
	}
	if payload.Image != nil {
		set["image"] = *payload.Image
	}
	if payload.Link != nil {
		set["link"] = *payload.Link
	}
	if payload.Order != nil {
		if *payload.Order < 0 {
			at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Order must be a non-negative integer."))
			return
		}
		set["order"] = *payload.Order
	}
	if payload.IsActive != nil {
		set["isActive"] = *payload.IsActive
	}

	matched, err := atdb.UpdateOneDoc(r.Context(), h.DB, Collection, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		log.Println("[ERROR] Failed to update banner:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to update banner."))
		return
	}
	if matched == 0 {
		at.WriteJSON(w, http.StatusNotFound, model.Fail(http.StatusNotFound, "No banner found with the provided ID."))
		return
	}

	banner, err := atdb.GetOneDoc[model.Banner](r.Context(), h.DB, Collection, bson.M{"_id": oid})
	if err != nil {
		log.Println("[ERROR] Failed to fetch updated banner:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to fetch updated banner."))
		return
	}

	at.WriteJSON(w, http.StatusOK, model.Ok(http.StatusOK, banner))
}

func (h *Handler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(r.URL.Query().Get("id"))
	if err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Invalid banner ID format."))
		return
	}

	deleted, err := atdb.DeleteOneDoc(r.Context(), h.DB, Collection, bson.M{"_id": oid})
	if err != nil {
		log.Println("[ERROR] Failed to delete banner:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to delete banner."))
		return
	}
	if deleted == 0 {
		at.WriteJSON(w, http.StatusNotFound, model.Fail(http.StatusNotFound, "No banner found with the provided ID."))
		return
	}

	at.WriteJSON(w, http.StatusOK, model.Response{
		Success:    true,
		Message:    "Banner deleted successfully",
		StatusCode: http.StatusOK,
	})
}
