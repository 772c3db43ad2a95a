package service

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"sitecms_be/helper/at"
	"sitecms_be/helper/atdb"
	"sitecms_be/helper/format"
	"sitecms_be/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const Collection = "services"

type Handler struct {
	DB *mongo.Database
}

func NewHandler(db *mongo.Database) *Handler {
	return &Handler{DB: db}
}

func (h *Handler) slugTaken(r *http.Request, slug string, exclude primitive.ObjectID) (bool, error) {
	filter := bson.M{"slug": slug}
	if exclude != primitive.NilObjectID {
		filter["_id"] = bson.M{"$ne": exclude}
	}
	count, err := atdb.CountDoc(r.Context(), h.DB, Collection, filter)
	return count > 0, err
}

// CreateService stores a new service, deriving the slug from name.en when
// none is sent. New services always start visible; an isActive value in the
// request body is ignored and toggled via UpdateService.
func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	var svc model.Service
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "The JSON request body could not be decoded."))
		return
	}

	if svc.Name.EN == "" || svc.Name.VI == "" {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Both name.en and name.vi are required."))
		return
	}
	if svc.Slug == "" {
		svc.Slug = format.Slugify(svc.Name.EN)
	}
	if !format.IsValidSlug(svc.Slug) {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Slug must contain only lowercase letters, digits and hyphens."))
		return
	}
	if svc.Order < 0 {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Order must be a non-negative integer."))
		return
	}

	taken, err := h.slugTaken(r, svc.Slug, primitive.NilObjectID)
	if err != nil {
		log.Println("[ERROR] Slug uniqueness check failed:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to check slug uniqueness."))
		return
	}
	if taken {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "A service with this slug already exists."))
		return
	}

	svc.ID = primitive.NilObjectID
	svc.IsActive = true
	svc.CreatedAt = time.Now()
	svc.UpdatedAt = svc.CreatedAt

	id, err := atdb.InsertOneDoc(r.Context(), h.DB, Collection, svc)
	if err != nil {
		log.Println("[ERROR] Failed to insert service:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to create service."))
		return
	}
	svc.ID = id

	at.WriteJSON(w, http.StatusCreated, model.Ok(http.StatusCreated, svc))
}

func (h *Handler) GetAllServices(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if r.URL.Query().Get("active") != "false" {
		filter["isActive"] = true
	}

	services, err := atdb.GetAllDoc[model.Service](r.Context(), h.DB, Collection, filter,
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: 1}}))
	if err != nil {
		log.Println("[ERROR] Failed to fetch services:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to fetch services."))
		return
	}
	if services == nil {
		services = []model.Service{}
	}

	at.WriteJSON(w, http.StatusOK, model.Ok(http.StatusOK, services))
}

func (h *Handler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(r.URL.Query().Get("id"))
	if err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Invalid service ID format."))
		return
	}

	svc, err := atdb.GetOneDoc[model.Service](r.Context(), h.DB, Collection, bson.M{"_id": oid})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			at.WriteJSON(w, http.StatusNotFound, model.Fail(http.StatusNotFound, "No service found with the provided ID."))
			return
		}
		log.Println("[ERROR] Failed to fetch service:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to fetch service."))
		return
	}

	at.WriteJSON(w, http.StatusOK, model.Ok(http.StatusOK, svc))
}

// GetServiceBySlug serves the public site's detail page lookup.
func (h *Handler) GetServiceBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	if !format.IsValidSlug(slug) {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Invalid slug format."))
		return
	}

	svc, err := atdb.GetOneDoc[model.Service](r.Context(), h.DB, Collection, bson.M{"slug": slug, "isActive": true})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			at.WriteJSON(w, http.StatusNotFound, model.Fail(http.StatusNotFound, "No service found with the provided slug."))
			return
		}
		log.Println("[ERROR] Failed to fetch service:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to fetch service."))
		return
	}

	at.WriteJSON(w, http.StatusOK, model.Ok(http.StatusOK, svc))
}

func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(r.URL.Query().Get("id"))
	if err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Invalid service ID format."))
		return
	}

	var payload struct {
		Name        *model.LocalizedText `json:"name,omitempty"`
		Description *model.LocalizedText `json:"description,omitempty"`
		Slug        *string              `json:"slug,omitempty"`
		Icon        *string              `json:"icon,omitempty"`
		Image       *string              `json:"image,omitempty"`
		Order       *int                 `json:"order,omitempty"`
		IsActive    *bool                `json:"isActive,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "The JSON request body could not be decoded."))
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if payload.Name != nil {
		if payload.Name.EN == "" || payload.Name.VI == "" {
			at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Both name.en and name.vi are required."))
			return
		}
		set["name"] = *payload.Name
	}
	if payload.Description != nil {
		set["description"] = *payload.Description
	}
	if payload.Slug != nil {
		if !format.IsValidSlug(*payload.Slug) {
			at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Slug must contain only lowercase letters, digits and hyphens."))
			return
		}
		taken, err := h.slugTaken(r, *payload.Slug, oid)
		if err != nil {
			log.Println("[ERROR] Slug uniqueness check failed:", err)
			at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to check slug uniqueness."))
			return
		}
		if taken {
			at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "A service with this slug already exists."))
			return
		}
		set["slug"] = *payload.Slug
	}
	if payload.Icon != nil {
		set["icon"] = *payload.Icon
	}
	if payload.Image != nil {
		set["image"] = *payload.Image
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
		log.Println("[ERROR] Failed to update service:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to update service."))
		return
	}
	if matched == 0 {
		at.WriteJSON(w, http.StatusNotFound, model.Fail(http.StatusNotFound, "No service found with the provided ID."))
		return
	}

	svc, err := atdb.GetOneDoc[model.Service](r.Context(), h.DB, Collection, bson.M{"_id": oid})
	if err != nil {
		log.Println("[ERROR] Failed to fetch updated service:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to fetch updated service."))
		return
	}

	at.WriteJSON(w, http.StatusOK, model.Ok(http.StatusOK, svc))
}

func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(r.URL.Query().Get("id"))
	if err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Invalid service ID format."))
		return
	}

	deleted, err := atdb.DeleteOneDoc(r.Context(), h.DB, Collection, bson.M{"_id": oid})
	if err != nil {
		log.Println("[ERROR] Failed to delete service:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to delete service."))
		return
	}
	if deleted == 0 {
		at.WriteJSON(w, http.StatusNotFound, model.Fail(http.StatusNotFound, "No service found with the provided ID."))
		return
	}

	at.WriteJSON(w, http.StatusOK, model.Response{
		Success:    true,
		Message:    "Service deleted successfully",
		StatusCode: http.StatusOK,
	})
}
