package menu

import (
	"testing"
	"time"

	"sitecms_be/model"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newItem(name string, order int, parent *primitive.ObjectID, active bool, created time.Time) model.MenuItem {
	return model.MenuItem{
		ID:        primitive.NewObjectID(),
		Name:      model.LocalizedText{EN: name, VI: name},
		Link:      "/",
		Slug:      name,
		Order:     order,
		ParentID:  parent,
		IsActive:  active,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestBuildTreeNestsAndOrders(t *testing.T) {
	base := time.Now()

	home := newItem("home", 0, nil, true, base)
	services := newItem("services", 1, nil, true, base)
	about := newItem("about", 2, nil, true, base)
	legal := newItem("legal", 1, &services.ID, true, base)
	tax := newItem("tax", 0, &services.ID, true, base)
	audits := newItem("audits", 0, &tax.ID, true, base)

	tree := BuildTree([]model.MenuItem{about, legal, services, audits, home, tax}, true)

	assert.Len(t, tree, 3)
	assert.Equal(t, "home", tree[0].Slug)
	assert.Equal(t, "services", tree[1].Slug)
	assert.Equal(t, "about", tree[2].Slug)

	assert.Len(t, tree[1].Children, 2)
	assert.Equal(t, "tax", tree[1].Children[0].Slug)
	assert.Equal(t, "legal", tree[1].Children[1].Slug)

	assert.Len(t, tree[1].Children[0].Children, 1)
	assert.Equal(t, "audits", tree[1].Children[0].Children[0].Slug)

	// Leaves carry an empty slice, not nil, so the JSON shows [].
	assert.NotNil(t, tree[0].Children)
	assert.Empty(t, tree[0].Children)
}

func TestBuildTreeDuplicateOrderTieBreaksByCreatedAt(t *testing.T) {
	base := time.Now()

	older := newItem("older", 3, nil, true, base)
	newer := newItem("newer", 3, nil, true, base.Add(time.Minute))

	tree := BuildTree([]model.MenuItem{newer, older}, true)

	assert.Len(t, tree, 2)
	assert.Equal(t, "older", tree[0].Slug)
	assert.Equal(t, "newer", tree[1].Slug)
}

func TestBuildTreeActiveOnlyHidesInactiveSubtrees(t *testing.T) {
	base := time.Now()

	visible := newItem("visible", 0, nil, true, base)
	hidden := newItem("hidden", 1, nil, false, base)
	orphaned := newItem("orphaned", 0, &hidden.ID, true, base)
	inactiveChild := newItem("inactive-child", 0, &visible.ID, false, base)

	tree := BuildTree([]model.MenuItem{visible, hidden, orphaned, inactiveChild}, true)

	// The inactive root disappears together with its active child; the
	// active root keeps no inactive children.
	assert.Len(t, tree, 1)
	assert.Equal(t, "visible", tree[0].Slug)
	assert.Empty(t, tree[0].Children)
}

func TestBuildTreeWithoutFilterKeepsInactiveItems(t *testing.T) {
	base := time.Now()

	hidden := newItem("hidden", 0, nil, false, base)
	child := newItem("child", 0, &hidden.ID, true, base)

	tree := BuildTree([]model.MenuItem{hidden, child}, false)

	assert.Len(t, tree, 1)
	assert.Equal(t, "hidden", tree[0].Slug)
	assert.Len(t, tree[0].Children, 1)
}

func TestRootsWithChildrenStopsAtOneLevel(t *testing.T) {
	base := time.Now()

	root := newItem("root", 0, nil, true, base)
	child := newItem("child", 0, &root.ID, true, base)
	grandchild := newItem("grandchild", 0, &child.ID, true, base)

	roots := RootsWithChildren([]model.MenuItem{grandchild, child, root}, true)

	assert.Len(t, roots, 1)
	assert.Len(t, roots[0].Children, 1)
	assert.Equal(t, "child", roots[0].Children[0].Slug)
	assert.Empty(t, roots[0].Children[0].Children)
}

func TestRootsWithChildrenFiltersInactive(t *testing.T) {
	base := time.Now()

	root := newItem("root", 0, nil, true, base)
	activeChild := newItem("active-child", 1, &root.ID, true, base)
	inactiveChild := newItem("inactive-child", 0, &root.ID, false, base)

	roots := RootsWithChildren([]model.MenuItem{root, activeChild, inactiveChild}, true)

	assert.Len(t, roots, 1)
	assert.Len(t, roots[0].Children, 1)
	assert.Equal(t, "active-child", roots[0].Children[0].Slug)
}
