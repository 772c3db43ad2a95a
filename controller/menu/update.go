package menu

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"sitecms_be/helper/at"
	"sitecms_be/helper/format"
	"sitecms_be/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UpdateMenu changes only the fields present in the request body; everything
// else keeps its prior value.
func (h *Handler) UpdateMenu(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Please provide a valid menu ID in the query parameters."))
		return
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Invalid menu ID format."))
		return
	}

	var payload model.MenuPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "The JSON request body could not be decoded."))
		return
	}

	if _, err := h.findByID(r.Context(), oid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			at.WriteJSON(w, http.StatusNotFound, model.Fail(http.StatusNotFound, "No menu item found with the provided ID."))
			return
		}
		log.Println("[ERROR] Failed to fetch menu item:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to fetch menu item."))
		return
	}

	set := bson.M{"updatedAt": time.Now()}

	if payload.Name != nil {
		if !validateName(payload.Name) {
			at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Both name.en and name.vi are required."))
			return
		}
		set["name"] = *payload.Name
	}
	if payload.Link != nil {
		set["link"] = *payload.Link
	}
	if payload.Icon != nil {
		set["icon"] = *payload.Icon
	}
	if payload.IsActive != nil {
		set["isActive"] = *payload.IsActive
	}
	if payload.Order != nil {
		if *payload.Order < 0 {
			at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Order must be a non-negative integer."))
			return
		}
		set["order"] = *payload.Order
	}

	if payload.Slug != nil {
		if !format.IsValidSlug(*payload.Slug) {
			at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Slug must contain only lowercase letters, digits and hyphens."))
			return
		}
		taken, err := h.slugTaken(r.Context(), *payload.Slug, oid)
		if err != nil {
			log.Println("[ERROR] Slug uniqueness check failed:", err)
			at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to check slug uniqueness."))
			return
		}
		if taken {
			at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "A menu item with this slug already exists."))
			return
		}
		set["slug"] = *payload.Slug
	}

	if payload.ParentID != nil {
		parentID, err := parseParentRef(payload.ParentID)
		if err != nil {
			at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Invalid parentId format."))
			return
		}
		if parentID != nil {
			items, err := h.fetchAll(r.Context())
			if err != nil {
				log.Println("[ERROR] Failed to fetch menu items:", err)
				at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to validate parent."))
				return
			}
			byID := indexByID(items)
			if _, ok := byID[*parentID]; !ok {
				at.WriteJSON(w, http.StatusNotFound, model.Fail(http.StatusNotFound, "The provided parentId does not exist."))
				return
			}
			if wouldCreateCycle(byID, oid, parentID) {
				at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "An item cannot become a descendant of itself."))
				return
			}
		}
		set["parentId"] = parentID
	}

	if _, err := h.store.setFields(r.Context(), oid, set); err != nil {
		log.Println("[ERROR] Failed to update menu item:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to update menu item."))
		return
	}

	updated, err := h.findByID(r.Context(), oid)
	if err != nil {
		log.Println("[ERROR] Failed to fetch updated menu item:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to fetch updated menu item."))
		return
	}
	updated.Children = []model.MenuItem{}

	at.WriteJSON(w, http.StatusOK, model.Ok(http.StatusOK, updated))
}

// DeleteMenu removes one item and demotes its direct children to root. The
// subtree below survives; this is deliberately not a cascading delete. The
// final compaction of the vacated sibling group is best-effort: a failure
// there leaves a rank gap but the delete itself still succeeds.
func (h *Handler) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Please provide a valid menu ID."))
		return
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Invalid menu ID format."))
		return
	}

	item, err := h.findByID(r.Context(), oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			at.WriteJSON(w, http.StatusNotFound, model.Fail(http.StatusNotFound, "No menu item found with the provided ID."))
			return
		}
		log.Println("[ERROR] Failed to fetch menu item:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to fetch menu item."))
		return
	}

	// Demote children to root before removing the parent.
	if err := h.store.demoteChildren(r.Context(), oid); err != nil {
		log.Println("[ERROR] Failed to demote children:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to reparent children."))
		return
	}

	if err := h.store.remove(r.Context(), oid); err != nil {
		log.Println("[ERROR] Failed to delete menu item:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to delete menu item."))
		return
	}

	// Close the rank gap the removed item leaves in its sibling group.
	if err := h.store.shiftOrders(r.Context(), item.ParentID, item.ID, item.Order, false, -1); err != nil {
		log.Println("[ERROR] Failed to compact sibling orders:", err)
	}

	at.WriteJSON(w, http.StatusOK, model.Response{
		Success:    true,
		Message:    "Menu item deleted successfully",
		StatusCode: http.StatusOK,
	})
}
