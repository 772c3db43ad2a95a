package menu

import (
	"testing"
	"time"

	"sitecms_be/model"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestWouldCreateCycle(t *testing.T) {
	base := time.Now()

	root := newItem("root", 0, nil, true, base)
	mid := newItem("mid", 0, &root.ID, true, base)
	leaf := newItem("leaf", 0, &mid.ID, true, base)
	other := newItem("other", 1, nil, true, base)

	byID := indexByID([]model.MenuItem{root, mid, leaf, other})

	// Moving root under its own grandchild closes a cycle.
	assert.True(t, wouldCreateCycle(byID, root.ID, &leaf.ID))
	assert.True(t, wouldCreateCycle(byID, mid.ID, &leaf.ID))

	// An item can never become its own parent.
	assert.True(t, wouldCreateCycle(byID, mid.ID, &mid.ID))

	// Moving sideways or down-to-unrelated is fine.
	assert.False(t, wouldCreateCycle(byID, leaf.ID, &root.ID))
	assert.False(t, wouldCreateCycle(byID, mid.ID, &other.ID))
	assert.False(t, wouldCreateCycle(byID, mid.ID, nil))
}

func TestWouldCreateCycleTerminatesOnBrokenChain(t *testing.T) {
	base := time.Now()

	dangling := primitive.NewObjectID()
	item := newItem("item", 0, &dangling, true, base)
	byID := indexByID([]model.MenuItem{item})

	// The referenced ancestor is gone from the collection; the walk must
	// stop instead of looping.
	assert.False(t, wouldCreateCycle(byID, primitive.NewObjectID(), &item.ID))
}

func TestSameParent(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	assert.True(t, sameParent(nil, nil))
	assert.True(t, sameParent(&a, &a))
	assert.False(t, sameParent(&a, &b))
	assert.False(t, sameParent(nil, &a))
	assert.False(t, sameParent(&a, nil))
}

func TestParseParentRef(t *testing.T) {
	oid := primitive.NewObjectID()
	hex := oid.Hex()
	null := "null"
	empty := ""
	garbage := "not-an-object-id"

	parent, err := parseParentRef(&hex)
	assert.NoError(t, err)
	assert.NotNil(t, parent)
	assert.Equal(t, oid, *parent)

	parent, err = parseParentRef(&null)
	assert.NoError(t, err)
	assert.Nil(t, parent)

	parent, err = parseParentRef(&empty)
	assert.NoError(t, err)
	assert.Nil(t, parent)

	parent, err = parseParentRef(nil)
	assert.NoError(t, err)
	assert.Nil(t, parent)

	_, err = parseParentRef(&garbage)
	assert.Error(t, err)
}

func TestValidateName(t *testing.T) {
	assert.True(t, validateName(&model.LocalizedText{EN: "Services", VI: "Dịch vụ"}))
	assert.False(t, validateName(&model.LocalizedText{EN: "Services"}))
	assert.False(t, validateName(&model.LocalizedText{VI: "Dịch vụ"}))
	assert.False(t, validateName(&model.LocalizedText{}))
	assert.False(t, validateName(nil))
}
