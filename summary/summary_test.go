// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package summary

import (
	"testing"

	"github.com/gogpu/polydraw/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// session places pts, then connects each pair of vertex indices in links.
func session(t *testing.T, pts []editor.Point, links [][2]int) *editor.State {
	t.Helper()
	s := editor.New(len(pts), len(links)+1)
	editor.Reduce(s, editor.SelectVertexTool{})
	for _, p := range pts {
		editor.Reduce(s, editor.PointerClick{X: p.X, Y: p.Y})
	}
	editor.Reduce(s, editor.SelectEdgeTool{})
	for _, l := range links {
		a, b := pts[l[0]], pts[l[1]]
		editor.Reduce(s, editor.PointerClick{X: a.X, Y: a.Y})
		editor.Reduce(s, editor.PointerClick{X: b.X, Y: b.Y})
	}
	require.Equal(t, len(links), s.EdgeCount(), "all links should become edges")
	return s
}

func TestBuildTriangle(t *testing.T) {
	pts := []editor.Point{editor.Pt(10, 10), editor.Pt(100, 10), editor.Pt(50, 90)}
	s := session(t, pts, [][2]int{{0, 1}, {1, 2}, {2, 0}})

	sum, err := Build(s)
	require.NoError(t, err)
	assert.Equal(t, &Summary{Vertices: 3, Edges: 3, Components: 1, Polygon: true}, sum)
	assert.Equal(t, "3 vertices, 3 edges, 1 components, 0 isolated, closed polygon", sum.String())
}

func TestBuildDisconnected(t *testing.T) {
	pts := []editor.Point{
		editor.Pt(10, 10), editor.Pt(100, 10),
		editor.Pt(10, 200), editor.Pt(100, 200),
		editor.Pt(300, 300),
	}
	s := session(t, pts, [][2]int{{0, 1}, {2, 3}})

	sum, err := Build(s)
	require.NoError(t, err)
	assert.Equal(t, 5, sum.Vertices)
	assert.Equal(t, 2, sum.Edges)
	assert.Equal(t, 3, sum.Components)
	assert.Equal(t, 1, sum.Isolated)
	assert.False(t, sum.Polygon)
}

func TestBuildPathIsNotPolygon(t *testing.T) {
	pts := []editor.Point{editor.Pt(10, 10), editor.Pt(100, 10), editor.Pt(200, 10)}
	s := session(t, pts, [][2]int{{0, 1}, {1, 2}})

	sum, err := Build(s)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Components)
	assert.False(t, sum.Polygon)
}

func TestGraphCollapsesCoincidentVertices(t *testing.T) {
	s := editor.New(3, 1)
	editor.Reduce(s, editor.SelectVertexTool{})
	for _, p := range []editor.Point{editor.Pt(10, 10), editor.Pt(80, 80), editor.Pt(10, 10)} {
		editor.Reduce(s, editor.PointerClick{X: p.X, Y: p.Y})
	}

	g, err := NewGraph(s)
	require.NoError(t, err)
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, []string{VertexID(0), VertexID(1)}, g.Vertices())
	assert.True(t, g.HasVertex(VertexID(0)))
	assert.False(t, g.HasVertex(VertexID(2)))
}

func TestGraphReach(t *testing.T) {
	pts := []editor.Point{
		editor.Pt(10, 10), editor.Pt(100, 10), editor.Pt(200, 10),
		editor.Pt(10, 200),
	}
	s := session(t, pts, [][2]int{{0, 1}, {1, 2}})

	g, err := NewGraph(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2"}, g.Reach("v0"))
	assert.Equal(t, []string{"v3"}, g.Reach("v3"))
	assert.Nil(t, g.Reach("v9"))
	assert.Equal(t, 2, g.Degree("v1"))
	assert.Equal(t, 0, g.Degree("v3"))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestBuildEmptyAndNil(t *testing.T) {
	sum, err := Build(editor.New(0, 0))
	require.NoError(t, err)
	assert.Equal(t, &Summary{}, sum)

	_, err = Build(nil)
	assert.ErrorIs(t, err, ErrNilState)
}
