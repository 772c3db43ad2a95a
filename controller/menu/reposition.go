package menu

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"sitecms_be/helper/at"
	"sitecms_be/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func indexByID(items []model.MenuItem) map[primitive.ObjectID]model.MenuItem {
	byID := make(map[primitive.ObjectID]model.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return byID
}

// wouldCreateCycle walks the ancestor chain from newParent upward and reports
// whether it reaches the item being moved. The walk is bounded by the map size
// so a corrupted chain cannot loop forever.
func wouldCreateCycle(byID map[primitive.ObjectID]model.MenuItem, itemID primitive.ObjectID, newParent *primitive.ObjectID) bool {
	current := newParent
	for steps := 0; current != nil && steps <= len(byID); steps++ {
		if *current == itemID {
			return true
		}
		ancestor, ok := byID[*current]
		if !ok {
			return false
		}
		current = ancestor.ParentID
	}
	return false
}

// MoveMenu repositions one item: new rank, optionally new parent. Destination
// siblings at or above the target rank shift up one to make room; when the
// item leaves a sibling group, the vacated group is compacted so ranks stay
// dense on both sides of the move.
func (h *Handler) MoveMenu(w http.ResponseWriter, r *http.Request) {
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

	var payload model.MovePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "The JSON request body could not be decoded."))
		return
	}
	if payload.Order == nil || *payload.Order < 0 {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Order must be a non-negative integer."))
		return
	}

	newParent, err := parseParentRef(payload.ParentID)
	if err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Invalid parentId format."))
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

	if newParent != nil {
		items, err := h.fetchAll(r.Context())
		if err != nil {
			log.Println("[ERROR] Failed to fetch menu items:", err)
			at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to validate parent."))
			return
		}
		byID := indexByID(items)
		if _, ok := byID[*newParent]; !ok {
			at.WriteJSON(w, http.StatusNotFound, model.Fail(http.StatusNotFound, "The provided parentId does not exist."))
			return
		}
		if wouldCreateCycle(byID, oid, newParent) {
			at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "An item cannot become a descendant of itself."))
			return
		}
	}

	err = h.store.inTransaction(r.Context(), func(ctx context.Context) error {
		return h.applyMove(ctx, item, *payload.Order, newParent)
	})
	if err != nil {
		log.Println("[ERROR] Failed to reposition menu item:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to reposition menu item."))
		return
	}

	moved, err := h.findByID(r.Context(), oid)
	if err != nil {
		log.Println("[ERROR] Failed to fetch moved menu item:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to fetch moved menu item."))
		return
	}
	moved.Children = []model.MenuItem{}

	at.WriteJSON(w, http.StatusOK, model.Ok(http.StatusOK, moved))
}

// applyMove writes the move in three steps: the item's new position, an
// insertion-style shift of the destination sibling group, and a compaction of
// the group the item left so no rank gap remains behind it.
func (h *Handler) applyMove(ctx context.Context, item model.MenuItem, newOrder int, newParent *primitive.ObjectID) error {
	_, err := h.store.setFields(ctx, item.ID, bson.M{
		"order": newOrder, "parentId": newParent, "updatedAt": time.Now(),
	})
	if err != nil {
		return err
	}

	if err := h.store.shiftOrders(ctx, newParent, item.ID, newOrder, true, 1); err != nil {
		return err
	}

	if !sameParent(item.ParentID, newParent) {
		return h.store.shiftOrders(ctx, item.ParentID, item.ID, item.Order, false, -1)
	}
	return nil
}

func sameParent(a, b *primitive.ObjectID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
