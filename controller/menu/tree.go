package menu

import (
	"sort"

	"sitecms_be/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// sortSiblings orders a sibling group by rank. Duplicate ranks can exist
// transiently between the two reposition writes; createdAt breaks the tie so
// the display order stays deterministic.
func sortSiblings(items []model.MenuItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}

// groupByParent indexes a flat item list into sibling groups keyed by
// parentId. Root items are keyed by the nil ObjectID.
func groupByParent(items []model.MenuItem) map[primitive.ObjectID][]model.MenuItem {
	groups := make(map[primitive.ObjectID][]model.MenuItem)
	for _, item := range items {
		key := primitive.NilObjectID
		if item.ParentID != nil {
			key = *item.ParentID
		}
		groups[key] = append(groups[key], item)
	}
	for _, group := range groups {
		sortSiblings(group)
	}
	return groups
}

// BuildTree assembles the fully nested menu tree from a flat item list. The
// children lists are derived here from parentId back-references; nothing is
// ever read from a stored children field.
//
// With activeOnly set, inactive items are dropped together with their whole
// subtree: a child cannot be reached on the site without its parent.
func BuildTree(items []model.MenuItem, activeOnly bool) []model.MenuItem {
	groups := groupByParent(items)
	return expand(groups, primitive.NilObjectID, activeOnly)
}

func expand(groups map[primitive.ObjectID][]model.MenuItem, parent primitive.ObjectID, activeOnly bool) []model.MenuItem {
	nodes := []model.MenuItem{}
	for _, item := range groups[parent] {
		if activeOnly && !item.IsActive {
			continue
		}
		item.Children = expand(groups, item.ID, activeOnly)
		nodes = append(nodes, item)
	}
	return nodes
}

// RootsWithChildren is the lightweight view behind parentId=null: the root
// sibling group with direct children attached, not expanded any deeper.
func RootsWithChildren(items []model.MenuItem, activeOnly bool) []model.MenuItem {
	groups := groupByParent(items)

	roots := []model.MenuItem{}
	for _, item := range groups[primitive.NilObjectID] {
		if activeOnly && !item.IsActive {
			continue
		}
		children := []model.MenuItem{}
		for _, child := range groups[item.ID] {
			if activeOnly && !child.IsActive {
				continue
			}
			child.Children = []model.MenuItem{}
			children = append(children, child)
		}
		item.Children = children
		roots = append(roots, item)
	}
	return roots
}
