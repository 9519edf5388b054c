package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTreeShape(t *testing.T) {
	src := "SELECT a, b FROM ks.t WHERE id = 1;"
	tree := ParseTree(src)
	require.Empty(t, tree.Errors)

	root := tree.Root
	assert.Equal(t, KindSourceFile, root.Kind())
	require.Equal(t, 1, root.ChildCount())

	stmt := root.Child(0)
	assert.Equal(t, KindSelect, stmt.Kind())
	assert.False(t, stmt.HasError())
	assert.Equal(t, "SELECT a, b FROM ks.t WHERE id = 1", stmt.Content(src))

	var kinds []string
	for i := 0; i < stmt.ChildCount(); i++ {
		kinds = append(kinds, stmt.Child(i).Kind())
	}
	assert.Equal(t, []string{
		KindSelectElement, KindSelectElement, KindTableName, KindWhereSpec,
	}, kinds)

	table := stmt.Child(2)
	assert.Equal(t, "ks.t", table.Content(src))

	where := stmt.Child(3)
	require.Equal(t, 1, where.ChildCount())
	rel := where.Child(0)
	assert.Equal(t, KindRelationElement, rel.Kind())
	assert.Equal(t, "id = 1", rel.Content(src))
}

func TestParseTreeMultipleStatements(t *testing.T) {
	src := "USE ks; SELECT * FROM t;"
	tree := ParseTree(src)
	require.Empty(t, tree.Errors)
	require.Equal(t, 2, tree.Root.ChildCount())
	assert.Equal(t, KindUse, tree.Root.Child(0).Kind())
	assert.Equal(t, KindSelect, tree.Root.Child(1).Kind())
}

func TestParseTreeErrorRecovery(t *testing.T) {
	src := "SELECT * FROM t; NOT CQL AT ALL; USE ks;"
	tree := ParseTree(src)
	require.Len(t, tree.Errors, 1)
	require.Equal(t, 3, tree.Root.ChildCount())

	bad := tree.Root.Child(1)
	assert.Equal(t, KindErrorNode, bad.Kind())
	assert.True(t, bad.HasError())
	assert.Equal(t, "NOT CQL AT ALL", bad.Content(src))

	assert.False(t, tree.Root.Child(0).HasError())
	assert.False(t, tree.Root.Child(2).HasError())
	assert.True(t, tree.Root.HasError())
}

func TestParseErrorPosition(t *testing.T) {
	tree := ParseTree("SELECT *\nFORM t;")
	require.NotEmpty(t, tree.Errors)
	err := tree.Errors[0]
	assert.Equal(t, 2, err.Line)
	assert.NotEmpty(t, err.Message)
}

func TestCursorNavigation(t *testing.T) {
	src := "SELECT a FROM t;"
	tree := ParseTree(src)
	require.Empty(t, tree.Errors)

	cursor := tree.Root.Walk()
	assert.Equal(t, KindSourceFile, cursor.Node().Kind())

	require.True(t, cursor.GotoFirstChild())
	assert.Equal(t, KindSelect, cursor.Node().Kind())

	require.True(t, cursor.GotoFirstChild())
	assert.Equal(t, KindSelectElement, cursor.Node().Kind())

	require.True(t, cursor.GotoNextSibling())
	assert.Equal(t, KindTableName, cursor.Node().Kind())
	assert.False(t, cursor.GotoNextSibling())

	require.True(t, cursor.GotoParent())
	assert.Equal(t, KindSelect, cursor.Node().Kind())
	require.True(t, cursor.GotoParent())
	assert.Equal(t, KindSourceFile, cursor.Node().Kind())

	// The cursor never moves above its creation node.
	assert.False(t, cursor.GotoParent())
}

func TestWalkVisitsAllNodes(t *testing.T) {
	src := "SELECT a FROM t;"
	tree := ParseTree(src)

	var visited []string
	var visit func(n *Node)
	visit = func(n *Node) {
		visited = append(visited, n.Kind())
		for i := 0; i < n.ChildCount(); i++ {
			visit(n.Child(i))
		}
	}
	visit(tree.Root)
	assert.Contains(t, visited, KindSourceFile)
	assert.Contains(t, visited, KindSelect)
	assert.Contains(t, visited, KindTableName)
}

func TestMarkerNodes(t *testing.T) {
	src := "CREATE TABLE IF NOT EXISTS t (a int PRIMARY KEY);"
	tree := ParseTree(src)
	require.Empty(t, tree.Errors)

	stmt := tree.Root.Child(0)
	require.Equal(t, KindCreateTable, stmt.Kind())
	assert.Equal(t, KindIfNotExists, stmt.Child(0).Kind())
	assert.Equal(t, 0, stmt.Child(0).ChildCount())
}

func TestEmptyInput(t *testing.T) {
	for _, src := range []string{"", "   ", ";", "; ;", "-- just a comment"} {
		tree := ParseTree(src)
		assert.Empty(t, tree.Errors, src)
		assert.Equal(t, 0, tree.Root.ChildCount(), src)
	}
}
