package testimonial

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

const Collection = "testimonials"

type Handler struct {
	DB *mongo.Database
}

func NewHandler(db *mongo.Database) *Handler {
	return &Handler{DB: db}
}

// CreateTestimonial stores a new testimonial. New testimonials always start
// visible; an isActive value in the request body is ignored and toggled via
// UpdateTestimonial.
func (h *Handler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var t model.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "The JSON request body could not be decoded."))
		return
	}

	if t.Author == "" {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Author is required."))
		return
	}
	if t.Quote.EN == "" || t.Quote.VI == "" {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Both quote.en and quote.vi are required."))
		return
	}
	if t.Rating < 1 || t.Rating > 5 {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Rating must be between 1 and 5."))
		return
	}

	t.ID = primitive.NilObjectID
	t.IsActive = true
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt

	id, err := atdb.InsertOneDoc(r.Context(), h.DB, Collection, t)
	if err != nil {
		log.Println("[ERROR] Failed to insert testimonial:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to create testimonial."))
		return
	}
	t.ID = id

	at.WriteJSON(w, http.StatusCreated, model.Ok(http.StatusCreated, t))
}

func (h *Handler) GetAllTestimonials(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if r.URL.Query().Get("active") != "false" {
		filter["isActive"] = true
	}

	ts, err := atdb.GetAllDoc[model.Testimonial](r.Context(), h.DB, Collection, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		log.Println("[ERROR] Failed to fetch testimonials:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to fetch testimonials."))
		return
	}
	if ts == nil {
		ts = []model.Testimonial{}
	}

	at.WriteJSON(w, http.StatusOK, model.Ok(http.StatusOK, ts))
}

func (h *Handler) GetTestimonialByID(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(r.URL.Query().Get("id"))
	if err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Invalid testimonial ID format."))
		return
	}

	t, err := atdb.GetOneDoc[model.Testimonial](r.Context(), h.DB, Collection, bson.M{"_id": oid})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			at.WriteJSON(w, http.StatusNotFound, model.Fail(http.StatusNotFound, "No testimonial found with the provided ID."))
			return
		}
		log.Println("[ERROR] Failed to fetch testimonial:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to fetch testimonial."))
		return
	}

	at.WriteJSON(w, http.StatusOK, model.Ok(http.StatusOK, t))
}

func (h *Handler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(r.URL.Query().Get("id"))
	if err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Invalid testimonial ID format."))
		return
	}

	var payload struct {
		Author   *string              `json:"author,omitempty"`
		Company  *string              `json:"company,omitempty"`
		Quote    *model.LocalizedText `json:"quote,omitempty"`
		Avatar   *string              `json:"avatar,omitempty"`
		Rating   *int                 `json:"rating,omitempty"`
		IsActive *bool                `json:"isActive,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "The JSON request body could not be decoded."))
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if payload.Author != nil {
		if *payload.Author == "" {
			at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Author is required."))
			return
		}
		set["author"] = *payload.Author
	}
	if payload.Company != nil {
		set["company"] = *payload.Company
	}
	if payload.Quote != nil {
		if payload.Quote.EN == "" || payload.Quote.VI == "" {
			at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Both quote.en and quote.vi are required."))
			return
		}
		set["quote"] = *payload.Quote
	}
	if payload.Avatar != nil {
		set["avatar"] = *payload.Avatar
	}
	if payload.Rating != nil {
		if *payload.Rating < 1 || *payload.Rating > 5 {
			at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Rating must be between 1 and 5."))
			return
		}
		set["rating"] = *payload.Rating
	}
	if payload.IsActive != nil {
		set["isActive"] = *payload.IsActive
	}

	matched, err := atdb.UpdateOneDoc(r.Context(), h.DB, Collection, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		log.Println("[ERROR] Failed to update testimonial:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to update testimonial."))
		return
	}
	if matched == 0 {
		at.WriteJSON(w, http.StatusNotFound, model.Fail(http.StatusNotFound, "No testimonial found with the provided ID."))
		return
	}

	t, err := atdb.GetOneDoc[model.Testimonial](r.Context(), h.DB, Collection, bson.M{"_id": oid})
	if err != nil {
		log.Println("[ERROR] Failed to fetch updated testimonial:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to fetch updated testimonial."))
		return
	}

	at.WriteJSON(w, http.StatusOK, model.Ok(http.StatusOK, t))
}

func (h *Handler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(r.URL.Query().Get("id"))
	if err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Invalid testimonial ID format."))
		return
	}

	deleted, err := atdb.DeleteOneDoc(r.Context(), h.DB, Collection, bson.M{"_id": oid})
	if err != nil {
		log.Println("[ERROR] Failed to delete testimonial:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to delete testimonial."))
		return
	}
	if deleted == 0 {
		at.WriteJSON(w, http.StatusNotFound, model.Fail(http.StatusNotFound, "No testimonial found with the provided ID."))
		return
	}

	at.WriteJSON(w, http.StatusOK, model.Response{
		Success:    true,
		Message:    "Testimonial deleted successfully",
		StatusCode: http.StatusOK,
	})
}
