package menu

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sitecms_be/model"

	"github.com/stretchr/testify/assert"
)

// Validation runs before any store access, so these paths are exercised with
// an unconnected handler.

func postMenu(t *testing.T, body string) (*httptest.ResponseRecorder, model.Response) {
	t.Helper()

	h := NewHandler(nil)
	req := httptest.NewRequest(http.MethodPost, "/create/menu", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateMenu(rec, req)

	var resp model.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestCreateMenuRejectsMalformedBody(t *testing.T) {
	rec, resp := postMenu(t, "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateMenuRequiresBilingualName(t *testing.T) {
	rec, resp := postMenu(t, `{"name":{"en":"Services"},"slug":"services"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Message, "name.vi")
}

func TestCreateMenuRejectsInvalidSlug(t *testing.T) {
	rec, resp := postMenu(t, `{"name":{"en":"Services","vi":"Dịch vụ"},"slug":"Invalid Slug!"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "Slug")
}

func TestCreateMenuRejectsNegativeOrder(t *testing.T) {
	rec, _ := postMenu(t, `{"name":{"en":"Services","vi":"Dịch vụ"},"slug":"services","order":-1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateMenuRejectsMalformedParentID(t *testing.T) {
	rec, resp := postMenu(t, `{"name":{"en":"Services","vi":"Dịch vụ"},"slug":"services","parentId":"xyz"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Message, "parentId")
}

func TestMoveMenuRequiresOrder(t *testing.T) {
	h := NewHandler(nil)

	req := httptest.NewRequest(http.MethodPut, "/move/menu?id=656e1c0a9d5b3a2f1c0a9d5b", strings.NewReader(`{"parentId":"null"}`))
	rec := httptest.NewRecorder()
	h.MoveMenu(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMoveMenuRejectsBadID(t *testing.T) {
	h := NewHandler(nil)

	req := httptest.NewRequest(http.MethodPut, "/move/menu?id=banana", strings.NewReader(`{"order":0}`))
	rec := httptest.NewRecorder()
	h.MoveMenu(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMenuByIDRequiresID(t *testing.T) {
	h := NewHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/menu/by-id", nil)
	rec := httptest.NewRecorder()
	h.GetMenuByID(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
