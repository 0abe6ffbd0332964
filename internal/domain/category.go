package domain

import (
	"sort"
	"strings"
	"time"
)

const (
	PreferenceSpecialites = "personnel.specialites"
	categoryPathSeparator = " > "
)

// DefaultSpecialites seeds the technicien specialties list.
var DefaultSpecialites = []string{
	"Son", "Éclairage", "Vidéo", "Régie", "Machinerie",
	"Structure", "Électricité", "Sécurité", "Transport", "Maintenance",
}

// Category is a node of the equipment category tree.
type Category struct {
	ID          uint      `json:"id"`
	Nom         string    `json:"nom"`
	Description string    `json:"description,omitempty"`
	ParentID    *uint     `json:"parent_id,omitempty"`
	Couleur     string    `json:"couleur,omitempty"`
	Icone       string    `json:"icone,omitempty"`
	Ordre       int       `json:"ordre"`
	Actif       bool      `json:"actif"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c Category) IsRoot() bool {
	return c.ParentID == nil
}

// CategoryNode is the portable form of a category subtree, used by the JSON
// configuration files.
type CategoryNode struct {
	Nom            string         `json:"nom"`
	Description    string         `json:"description,omitempty"`
	Couleur        string         `json:"couleur,omitempty"`
	Icone          string         `json:"icone,omitempty"`
	Ordre          int            `json:"ordre"`
	Actif          *bool          `json:"actif,omitempty"`
	SousCategories []CategoryNode `json:"sous_categories,omitempty"`
}

type CategoryStats struct {
	SousCategories int    `json:"sous_categories"`
	Descendants    int    `json:"descendants"`
	HasChildren    bool   `json:"has_children"`
	Level          int    `json:"level"`
	Path           string `json:"path"`
}

type CategoryWithCount struct {
	Category       Category `json:"category"`
	SousCategories int      `json:"sous_categories"`
}

// CategoryTree indexes a flat category list by id and by parent.
type CategoryTree struct {
	byID     map[uint]Category
	children map[uint][]Category
	roots    []Category
}

func NewCategoryTree(categories []Category) *CategoryTree {
	t := &CategoryTree{
		byID:     make(map[uint]Category, len(categories)),
		children: map[uint][]Category{},
	}
	for _, c := range categories {
		t.byID[c.ID] = c
	}
	for _, c := range categories {
		if c.ParentID == nil {
			t.roots = append(t.roots, c)
			continue
		}
		if _, ok := t.byID[*c.ParentID]; !ok {
			t.roots = append(t.roots, c)
			continue
		}
		t.children[*c.ParentID] = append(t.children[*c.ParentID], c)
	}

	SortCategories(t.roots)
	for id := range t.children {
		SortCategories(t.children[id])
	}

	return t
}

func (t *CategoryTree) Get(id uint) (Category, bool) {
	c, ok := t.byID[id]
	return c, ok
}

func (t *CategoryTree) Roots() []Category {
	return append([]Category{}, t.roots...)
}

func (t *CategoryTree) Children(id uint) []Category {
	return append([]Category{}, t.children[id]...)
}

// Ancestors lists the chain from the root down to the parent of id.
func (t *CategoryTree) Ancestors(id uint) []Category {
	var chain []Category
	seen := map[uint]bool{id: true}

	c, ok := t.byID[id]
	for ok && c.ParentID != nil && !seen[*c.ParentID] {
		seen[*c.ParentID] = true
		c, ok = t.byID[*c.ParentID]
		if ok {
			chain = append([]Category{c}, chain...)
		}
	}

	return chain
}

// Path joins the names from the root down to id, "Son > Micros > HF".
func (t *CategoryTree) Path(id uint) string {
	c, ok := t.byID[id]
	if !ok {
		return ""
	}

	names := make([]string, 0, 4)
	for _, a := range t.Ancestors(id) {
		names = append(names, a.Nom)
	}
	names = append(names, c.Nom)

	return strings.Join(names, categoryPathSeparator)
}

// IsDescendant reports whether candidate sits below ancestor.
func (t *CategoryTree) IsDescendant(candidate, ancestor uint) bool {
	for _, a := range t.Ancestors(candidate) {
		if a.ID == ancestor {
			return true
		}
	}

	return false
}

func (t *CategoryTree) CountDescendants(id uint) int {
	n := 0
	for _, c := range t.children[id] {
		n += 1 + t.CountDescendants(c.ID)
	}

	return n
}

func (t *CategoryTree) Stats(id uint) CategoryStats {
	return CategoryStats{
		SousCategories: len(t.children[id]),
		Descendants:    t.CountDescendants(id),
		HasChildren:    len(t.children[id]) > 0,
		Level:          len(t.Ancestors(id)),
		Path:           t.Path(id),
	}
}

// Nodes renders the whole tree in its portable form.
func (t *CategoryTree) Nodes() []CategoryNode {
	return t.nodes(t.roots)
}

func (t *CategoryTree) nodes(categories []Category) []CategoryNode {
	out := make([]CategoryNode, 0, len(categories))
	for _, c := range categories {
		actif := c.Actif
		out = append(out, CategoryNode{
			Nom:            c.Nom,
			Description:    c.Description,
			Couleur:        c.Couleur,
			Icone:          c.Icone,
			Ordre:          c.Ordre,
			Actif:          &actif,
			SousCategories: t.nodes(t.children[c.ID]),
		})
	}

	return out
}

// SortCategories orders by display order, then name.
func SortCategories(categories []Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].Ordre != categories[j].Ordre {
			return categories[i].Ordre < categories[j].Ordre
		}
		return strings.ToLower(categories[i].Nom) < strings.ToLower(categories[j].Nom)
	})
}
