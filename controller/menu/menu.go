package menu

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"sitecms_be/helper/at"
	"sitecms_be/helper/format"
	"sitecms_be/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const Collection = "menus"

// Handler serves the menu endpoints from a store. It is built once in main
// and registered on the router; no package-level connection state.
type Handler struct {
	store store
}

func NewHandler(db *mongo.Database) *Handler {
	return &Handler{store: &mongoStore{db: db}}
}

func (h *Handler) fetchAll(ctx context.Context) ([]model.MenuItem, error) {
	return h.store.all(ctx)
}

func (h *Handler) findByID(ctx context.Context, id primitive.ObjectID) (model.MenuItem, error) {
	return h.store.get(ctx, id)
}

// slugTaken checks slug uniqueness across the whole collection, optionally
// ignoring one item (the one being updated).
func (h *Handler) slugTaken(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error) {
	count, err := h.store.countSlug(ctx, slug, exclude)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// parseParentRef resolves the parentId field of a payload. The frontend sends
// the literal string "null" (or an empty string) for root items.
func parseParentRef(ref *string) (*primitive.ObjectID, error) {
	if ref == nil || *ref == "" || *ref == "null" {
		return nil, nil
	}
	oid, err := primitive.ObjectIDFromHex(*ref)
	if err != nil {
		return nil, err
	}
	return &oid, nil
}

func validateName(name *model.LocalizedText) bool {
	return name != nil && name.EN != "" && name.VI != ""
}

func (h *Handler) CreateMenu(w http.ResponseWriter, r *http.Request) {
	var payload model.MenuPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "The JSON request body could not be decoded. Please check the structure of your request."))
		return
	}

	if !validateName(payload.Name) {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Both name.en and name.vi are required."))
		return
	}
	if payload.Slug == nil || !format.IsValidSlug(*payload.Slug) {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Slug must contain only lowercase letters, digits and hyphens."))
		return
	}
	if payload.Order != nil && *payload.Order < 0 {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Order must be a non-negative integer."))
		return
	}

	parentID, err := parseParentRef(payload.ParentID)
	if err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Invalid parentId format."))
		return
	}
	if parentID != nil {
		if _, err := h.findByID(r.Context(), *parentID); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				at.WriteJSON(w, http.StatusNotFound, model.Fail(http.StatusNotFound, "The provided parentId does not exist."))
				return
			}
			log.Println("[ERROR] Failed to look up parent:", err)
			at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to look up parent menu."))
			return
		}
	}

	taken, err := h.slugTaken(r.Context(), *payload.Slug, primitive.NilObjectID)
	if err != nil {
		log.Println("[ERROR] Slug uniqueness check failed:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to check slug uniqueness."))
		return
	}
	if taken {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "A menu item with this slug already exists."))
		return
	}

	now := time.Now()
	item := model.MenuItem{
		Name:      *payload.Name,
		Link:      "/",
		Slug:      *payload.Slug,
		Order:     0,
		ParentID:  parentID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if payload.Link != nil {
		item.Link = *payload.Link
	}
	if payload.Icon != nil {
		item.Icon = *payload.Icon
	}
	if payload.Order != nil {
		item.Order = *payload.Order
	}
	if payload.IsActive != nil {
		item.IsActive = *payload.IsActive
	}

	id, err := h.store.insert(r.Context(), item)
	if err != nil {
		log.Println("[ERROR] Failed to insert menu item:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to create menu item."))
		return
	}
	item.ID = id
	item.Children = []model.MenuItem{}

	at.WriteJSON(w, http.StatusCreated, model.Ok(http.StatusCreated, item))
}

// GetMenus serves the tree views. Query parameters: active ("false" turns the
// active-only filter off) and parentId (the literal "null" selects the root
// sibling group with one level of children).
func (h *Handler) GetMenus(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") != "false"

	items, err := h.fetchAll(r.Context())
	if err != nil {
		log.Println("[ERROR] Failed to fetch menu items:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to fetch menu items."))
		return
	}

	var tree []model.MenuItem
	if r.URL.Query().Get("parentId") == "null" {
		tree = RootsWithChildren(items, activeOnly)
	} else {
		tree = BuildTree(items, activeOnly)
	}

	at.WriteJSON(w, http.StatusOK, model.Ok(http.StatusOK, tree))
}

func (h *Handler) GetMenuByID(w http.ResponseWriter, r *http.Request) {
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

	// Admin fetch: direct children regardless of isActive.
	children, err := h.store.childrenOf(r.Context(), oid)
	if err != nil {
		log.Println("[ERROR] Failed to fetch children:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to fetch menu item."))
		return
	}
	sortSiblings(children)
	for i := range children {
		children[i].Children = []model.MenuItem{}
	}
	item.Children = children

	at.WriteJSON(w, http.StatusOK, model.Ok(http.StatusOK, item))
}
