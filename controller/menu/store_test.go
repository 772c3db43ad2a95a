package menu

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sitecms_be/model"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// memStore keeps the collection in a slice and applies the field sets and
// order shifts the handlers request, so the full write sequence of a create,
// update, move or delete can be asserted without a running mongod.
type memStore struct {
	items []model.MenuItem
}

var _ store = (*memStore)(nil)

func (m *memStore) find(id primitive.ObjectID) *model.MenuItem {
	for i := range m.items {
		if m.items[i].ID == id {
			return &m.items[i]
		}
	}
	return nil
}

func (m *memStore) all(context.Context) ([]model.MenuItem, error) {
	return append([]model.MenuItem(nil), m.items...), nil
}

func (m *memStore) get(_ context.Context, id primitive.ObjectID) (model.MenuItem, error) {
	if it := m.find(id); it != nil {
		return *it, nil
	}
	return model.MenuItem{}, mongo.ErrNoDocuments
}

func (m *memStore) childrenOf(_ context.Context, parent primitive.ObjectID) ([]model.MenuItem, error) {
	var out []model.MenuItem
	for _, it := range m.items {
		if it.ParentID != nil && *it.ParentID == parent {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memStore) countSlug(_ context.Context, slug string, exclude primitive.ObjectID) (int64, error) {
	var n int64
	for _, it := range m.items {
		if it.Slug == slug && it.ID != exclude {
			n++
		}
	}
	return n, nil
}

func (m *memStore) insert(_ context.Context, item model.MenuItem) (primitive.ObjectID, error) {
	item.ID = primitive.NewObjectID()
	m.items = append(m.items, item)
	return item.ID, nil
}

func (m *memStore) setFields(_ context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	it := m.find(id)
	if it == nil {
		return 0, nil
	}
	for k, v := range fields {
		switch k {
		case "name":
			it.Name = v.(model.LocalizedText)
		case "link":
			it.Link = v.(string)
		case "slug":
			it.Slug = v.(string)
		case "icon":
			it.Icon = v.(string)
		case "order":
			it.Order = v.(int)
		case "isActive":
			it.IsActive = v.(bool)
		case "parentId":
			p, _ := v.(*primitive.ObjectID)
			it.ParentID = p
		case "updatedAt":
			it.UpdatedAt = v.(time.Time)
		}
	}
	return 1, nil
}

func (m *memStore) shiftOrders(_ context.Context, parent *primitive.ObjectID, exclude primitive.ObjectID, from int, inclusive bool, delta int) error {
	for i := range m.items {
		it := &m.items[i]
		if it.ID == exclude || !sameParent(it.ParentID, parent) {
			continue
		}
		if it.Order > from || (inclusive && it.Order == from) {
			it.Order += delta
		}
	}
	return nil
}

func (m *memStore) demoteChildren(_ context.Context, parent primitive.ObjectID) error {
	for i := range m.items {
		if m.items[i].ParentID != nil && *m.items[i].ParentID == parent {
			m.items[i].ParentID = nil
			m.items[i].UpdatedAt = time.Now()
		}
	}
	return nil
}

func (m *memStore) remove(_ context.Context, id primitive.ObjectID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memStore) inTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestMoveMenuShiftsDestinationAndCompactsSource(t *testing.T) {
	base := time.Now().Add(-time.Hour)

	home := newItem("home", 0, nil, true, base)
	about := newItem("about", 1, nil, true, base)
	services := newItem("services", 2, nil, true, base)
	contact := newItem("contact", 3, nil, true, base)
	legal := newItem("legal", 0, &services.ID, true, base)
	privacy := newItem("privacy", 1, &services.ID, true, base)

	st := &memStore{items: []model.MenuItem{home, about, services, contact, legal, privacy}}
	h := &Handler{store: st}

	req := httptest.NewRequest(http.MethodPut, "/move/menu?id="+legal.ID.Hex(),
		strings.NewReader(`{"order":2,"parentId":"null"}`))
	rec := httptest.NewRecorder()
	h.MoveMenu(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	moved := st.find(legal.ID)
	assert.Nil(t, moved.ParentID)
	assert.Equal(t, 2, moved.Order)
	assert.True(t, moved.UpdatedAt.After(base))

	// Root siblings at or above the target rank moved up one.
	assert.Equal(t, 0, st.find(home.ID).Order)
	assert.Equal(t, 1, st.find(about.ID).Order)
	assert.Equal(t, 3, st.find(services.ID).Order)
	assert.Equal(t, 4, st.find(contact.ID).Order)

	// The vacated group closed its rank gap.
	assert.Equal(t, 0, st.find(privacy.ID).Order)
}

func TestMoveMenuWithinGroupDoesNotCompact(t *testing.T) {
	base := time.Now().Add(-time.Hour)

	first := newItem("first", 0, nil, true, base)
	second := newItem("second", 1, nil, true, base)
	third := newItem("third", 2, nil, true, base)

	st := &memStore{items: []model.MenuItem{first, second, third}}
	h := &Handler{store: st}

	req := httptest.NewRequest(http.MethodPut, "/move/menu?id="+third.ID.Hex(),
		strings.NewReader(`{"order":0,"parentId":"null"}`))
	rec := httptest.NewRecorder()
	h.MoveMenu(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, st.find(third.ID).Order)
	assert.Equal(t, 1, st.find(first.ID).Order)
	assert.Equal(t, 2, st.find(second.ID).Order)
}

func TestMoveMenuRejectsDescendantParent(t *testing.T) {
	base := time.Now().Add(-time.Hour)

	services := newItem("services", 0, nil, true, base)
	legal := newItem("legal", 0, &services.ID, true, base)

	st := &memStore{items: []model.MenuItem{services, legal}}
	h := &Handler{store: st}

	req := httptest.NewRequest(http.MethodPut, "/move/menu?id="+services.ID.Hex(),
		strings.NewReader(`{"order":0,"parentId":"`+legal.ID.Hex()+`"}`))
	rec := httptest.NewRecorder()
	h.MoveMenu(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, st.find(services.ID).ParentID)
}

func TestDeleteMenuDemotesChildrenAndCompactsSiblings(t *testing.T) {
	base := time.Now().Add(-time.Hour)

	home := newItem("home", 0, nil, true, base)
	services := newItem("services", 1, nil, true, base)
	contact := newItem("contact", 2, nil, true, base)
	legal := newItem("legal", 0, &services.ID, true, base)
	privacy := newItem("privacy", 1, &services.ID, true, base)

	st := &memStore{items: []model.MenuItem{home, services, contact, legal, privacy}}
	h := &Handler{store: st}

	req := httptest.NewRequest(http.MethodDelete, "/delete/menu?id="+services.ID.Hex(), nil)
	rec := httptest.NewRecorder()
	h.DeleteMenu(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, st.find(services.ID))

	// Direct children survive at root.
	assert.Nil(t, st.find(legal.ID).ParentID)
	assert.Nil(t, st.find(privacy.ID).ParentID)

	// The root group closed the gap the delete left.
	assert.Equal(t, 0, st.find(home.ID).Order)
	assert.Equal(t, 1, st.find(contact.ID).Order)
}

func TestCreateMenuRejectsDuplicateSlug(t *testing.T) {
	st := &memStore{}
	h := &Handler{store: st}

	create := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/create/menu", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.CreateMenu(rec, req)
		return rec
	}

	rec := create(`{"name":{"en":"Services","vi":"Dịch vụ"},"slug":"services"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = create(`{"name":{"en":"Other services","vi":"Dịch vụ khác"},"slug":"services"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp model.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "already exists")
	assert.Len(t, st.items, 1)
}

func TestUpdateMenuChangesOnlySuppliedField(t *testing.T) {
	base := time.Now().Add(-time.Hour)

	services := newItem("services", 2, nil, true, base)
	services.Link = "/services"

	st := &memStore{items: []model.MenuItem{services}}
	h := &Handler{store: st}

	req := httptest.NewRequest(http.MethodPut, "/update/menu?id="+services.ID.Hex(),
		strings.NewReader(`{"link":"/our-services"}`))
	rec := httptest.NewRecorder()
	h.UpdateMenu(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	got := st.find(services.ID)
	assert.Equal(t, "/our-services", got.Link)
	assert.Equal(t, services.Name, got.Name)
	assert.Equal(t, "services", got.Slug)
	assert.Equal(t, 2, got.Order)
	assert.True(t, got.IsActive)
	assert.True(t, got.UpdatedAt.After(base))

	var resp struct {
		Success bool           `json:"success"`
		Data    model.MenuItem `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "/our-services", resp.Data.Link)
}

func TestUpdateMenuRejectsSlugOfAnotherItem(t *testing.T) {
	base := time.Now().Add(-time.Hour)

	services := newItem("services", 0, nil, true, base)
	contact := newItem("contact", 1, nil, true, base)

	st := &memStore{items: []model.MenuItem{services, contact}}
	h := &Handler{store: st}

	req := httptest.NewRequest(http.MethodPut, "/update/menu?id="+contact.ID.Hex(),
		strings.NewReader(`{"slug":"services"}`))
	rec := httptest.NewRecorder()
	h.UpdateMenu(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "contact", st.find(contact.ID).Slug)

	// Re-sending an item's own slug is not a conflict.
	req = httptest.NewRequest(http.MethodPut, "/update/menu?id="+contact.ID.Hex(),
		strings.NewReader(`{"slug":"contact"}`))
	rec = httptest.NewRecorder()
	h.UpdateMenu(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
