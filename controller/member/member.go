package member

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

const Collection = "members"

type Handler struct {
	DB *mongo.Database
}

func NewHandler(db *mongo.Database) *Handler {
	return &Handler{DB: db}
}

// CreateMember stores a new team member. New members always start visible; an
// isActive value in the request body is ignored and toggled via UpdateMember.
func (h *Handler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var m model.Member
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "The JSON request body could not be decoded."))
		return
	}

	if m.Name == "" {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Name is required."))
		return
	}
	if m.Position.EN == "" || m.Position.VI == "" {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Both position.en and position.vi are required."))
		return
	}
	if m.Order < 0 {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Order must be a non-negative integer."))
		return
	}

	m.ID = primitive.NilObjectID
	m.IsActive = true
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt

	id, err := atdb.InsertOneDoc(r.Context(), h.DB, Collection, m)
	if err != nil {
		log.Println("[ERROR] Failed to insert member:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to create member."))
		return
	}
	m.ID = id

	at.WriteJSON(w, http.StatusCreated, model.Ok(http.StatusCreated, m))
}

func (h *Handler) GetAllMembers(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if r.URL.Query().Get("active") != "false" {
		filter["isActive"] = true
	}

	members, err := atdb.GetAllDoc[model.Member](r.Context(), h.DB, Collection, filter,
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: 1}}))
	if err != nil {
		log.Println("[ERROR] Failed to fetch members:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to fetch members."))
		return
	}
	if members == nil {
		members = []model.Member{}
	}

	at.WriteJSON(w, http.StatusOK, model.Ok(http.StatusOK, members))
}

func (h *Handler) GetMemberByID(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(r.URL.Query().Get("id"))
	if err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Invalid member ID format."))
		return
	}

	m, err := atdb.GetOneDoc[model.Member](r.Context(), h.DB, Collection, bson.M{"_id": oid})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			at.WriteJSON(w, http.StatusNotFound, model.Fail(http.StatusNotFound, "No member found with the provided ID."))
			return
		}
		log.Println("[ERROR] Failed to fetch member:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to fetch member."))
		return
	}

	at.WriteJSON(w, http.StatusOK, model.Ok(http.StatusOK, m))
}

func (h *Handler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(r.URL.Query().Get("id"))
	if err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Invalid member ID format."))
		return
	}

	var payload struct {
		Name     *string              `json:"name,omitempty"`
		Position *model.LocalizedText `json:"position,omitempty"`
		Bio      *model.LocalizedText `json:"bio,omitempty"`
		Photo    *string              `json:"photo,omitempty"`
		Order    *int                 `json:"order,omitempty"`
		IsActive *bool                `json:"isActive,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "The JSON request body could not be decoded."))
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if payload.Name != nil {
		if *payload.Name == "" {
			at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Name is required."))
			return
		}
		set["name"] = *payload.Name
	}
	if payload.Position != nil {
		if payload.Position.EN == "" || payload.Position.VI == "" {
			at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Both position.en and position.vi are required."))
			return
		}
		set["position"] = *payload.Position
	}
	if payload.Bio != nil {
		set["bio"] = *payload.Bio
	}
	if payload.Photo != nil {
		set["photo"] = *payload.Photo
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
		log.Println("[ERROR] Failed to update member:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to update member."))
		return
	}
	if matched == 0 {
		at.WriteJSON(w, http.StatusNotFound, model.Fail(http.StatusNotFound, "No member found with the provided ID."))
		return
	}

	m, err := atdb.GetOneDoc[model.Member](r.Context(), h.DB, Collection, bson.M{"_id": oid})
	if err != nil {
		log.Println("[ERROR] Failed to fetch updated member:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to fetch updated member."))
		return
	}

	at.WriteJSON(w, http.StatusOK, model.Ok(http.StatusOK, m))
}

func (h *Handler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(r.URL.Query().Get("id"))
	if err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Invalid member ID format."))
		return
	}

	deleted, err := atdb.DeleteOneDoc(r.Context(), h.DB, Collection, bson.M{"_id": oid})
	if err != nil {
		log.Println("[ERROR] Failed to delete member:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to delete member."))
		return
	}
	if deleted == 0 {
		at.WriteJSON(w, http.StatusNotFound, model.Fail(http.StatusNotFound, "No member found with the provided ID."))
		return
	}

	at.WriteJSON(w, http.StatusOK, model.Response{
		Success:    true,
		Message:    "Member deleted successfully",
		StatusCode: http.StatusOK,
	})
}
