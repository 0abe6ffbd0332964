package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *CategoryTree {
	return NewCategoryTree([]Category{
		{ID: 1, Nom: "Son", Ordre: 2, Actif: true},
		{ID: 2, Nom: "micros", ParentID: ptr[uint](1), Actif: true},
		{ID: 3, Nom: "HF", ParentID: ptr[uint](2)},
		{ID: 4, Nom: "Enceintes", ParentID: ptr[uint](1), Actif: true},
		{ID: 5, Nom: "Lumière", Ordre: 1, Actif: true},
		{ID: 6, Nom: "Perdue", ParentID: ptr[uint](42)},
	})
}

func TestCategoryTree_Navigation(t *testing.T) {
	tree := sampleTree()

	roots := tree.Roots()
	require.Len(t, roots, 3)
	assert.Equal(t, []string{"Perdue", "Lumière", "Son"}, []string{roots[0].Nom, roots[1].Nom, roots[2].Nom})

	children := tree.Children(1)
	require.Len(t, children, 2)
	assert.Equal(t, "Enceintes", children[0].Nom)
	assert.Equal(t, "micros", children[1].Nom)

	assert.Equal(t, "Son > micros > HF", tree.Path(3))
	assert.Empty(t, tree.Path(99))
	assert.True(t, tree.IsDescendant(3, 1))
	assert.False(t, tree.IsDescendant(1, 3))
	assert.Equal(t, CategoryStats{SousCategories: 1, Descendants: 1, HasChildren: true, Level: 1, Path: "Son > micros"}, tree.Stats(2))
}

func TestCategoryTree_AncestorsStopOnCycle(t *testing.T) {
	tree := NewCategoryTree([]Category{
		{ID: 1, Nom: "A", ParentID: ptr[uint](2)},
		{ID: 2, Nom: "B", ParentID: ptr[uint](1)},
	})

	assert.Empty(t, tree.Roots())
	assert.Equal(t, "B > A", tree.Path(1))
}

func TestCategoryTree_Nodes(t *testing.T) {
	nodes := sampleTree().Nodes()

	require.Len(t, nodes, 3)
	son := nodes[2]
	assert.Equal(t, "Son", son.Nom)
	require.NotNil(t, son.Actif)
	assert.True(t, *son.Actif)
	require.Len(t, son.SousCategories, 2)
	assert.Equal(t, "HF", son.SousCategories[1].SousCategories[0].Nom)
	assert.False(t, *son.SousCategories[1].SousCategories[0].Actif)
}
