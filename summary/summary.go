// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package summary describes the graph drawn in an editing session.
//
// The editor's vertices and edges are copied into an undirected adjacency
// graph. Vertices placed at the same coordinate are one graph vertex, named
// after the earliest of them, mirroring how hit-testing resolves them.
package summary

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/gogpu/polydraw/editor"
)

// ErrNilState is returned by Build when no editor state is given.
var ErrNilState = errors.New("summary: nil state")

// Summary is the shape of a drawn graph.
type Summary struct {
	Vertices   int  // distinct vertex positions
	Edges      int  // completed edges
	Components int  // connected components
	Isolated   int  // vertices with no edge
	Polygon    bool // one component in which every vertex has degree two
}

// VertexID names the graph vertex for the editor vertex at index i.
func VertexID(i int) string {
	return "v" + strconv.Itoa(i)
}

// Graph is an undirected graph keyed by vertex ID.
// Vertices keep their insertion order.
type Graph struct {
	order []string
	adj   *hashmap.Map // vertex ID -> *hashset.Set of neighbor IDs
	edges int
}

func newGraph() *Graph {
	return &Graph{adj: hashmap.New()}
}

func (g *Graph) addVertex(id string) {
	if g.HasVertex(id) {
		return
	}
	g.order = append(g.order, id)
	g.adj.Put(id, hashset.New())
}

func (g *Graph) addEdge(from, to string) {
	g.neighbors(from).Add(to)
	g.neighbors(to).Add(from)
	g.edges++
}

func (g *Graph) neighbors(id string) *hashset.Set {
	v, ok := g.adj.Get(id)
	if !ok {
		return hashset.New()
	}
	return v.(*hashset.Set)
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj.Get(id)
	return ok
}

// Vertices returns the vertex IDs in insertion order.
func (g *Graph) Vertices() []string {
	return append([]string(nil), g.order...)
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Degree returns the number of neighbors of id.
func (g *Graph) Degree(id string) int {
	return g.neighbors(id).Size()
}

// Reach returns the IDs reachable from start in breadth-first order,
// start included.
func (g *Graph) Reach(start string) []string {
	if !g.HasVertex(start) {
		return nil
	}
	seen := hashset.New(start)
	queue := linkedlistqueue.New()
	queue.Enqueue(start)

	var out []string
	for !queue.Empty() {
		v, _ := queue.Dequeue()
		id := v.(string)
		out = append(out, id)
		for _, n := range g.neighbors(id).Values() {
			if !seen.Contains(n) {
				seen.Add(n)
				queue.Enqueue(n)
			}
		}
	}
	return out
}

// NewGraph copies the vertices and edges of s into an undirected Graph.
func NewGraph(s *editor.State) (*Graph, error) {
	if s == nil {
		return nil, ErrNilState
	}
	g := newGraph()
	ids := make(map[editor.Point]string)
	for i, v := range s.Vertices() {
		if _, ok := ids[v]; ok {
			continue
		}
		id := VertexID(i)
		g.addVertex(id)
		ids[v] = id
	}
	for _, e := range s.Edges() {
		from, okFrom := ids[e.A]
		to, okTo := ids[e.B]
		if !okFrom || !okTo {
			return nil, fmt.Errorf("summary: edge %v-%v ends outside the vertex set", e.A, e.B)
		}
		g.addEdge(from, to)
	}
	return g, nil
}

// Build summarizes the graph drawn in s.
func Build(s *editor.State) (*Summary, error) {
	g, err := NewGraph(s)
	if err != nil {
		return nil, err
	}

	sum := &Summary{Vertices: g.VertexCount(), Edges: g.EdgeCount()}
	seen := hashset.New()
	allTwo := true
	for _, id := range g.Vertices() {
		switch g.Degree(id) {
		case 0:
			sum.Isolated++
			allTwo = false
		case 2:
		default:
			allTwo = false
		}
		if seen.Contains(id) {
			continue
		}
		for _, v := range g.Reach(id) {
			seen.Add(v)
		}
		sum.Components++
	}
	sum.Polygon = allTwo && sum.Components == 1 && sum.Vertices >= 3
	return sum, nil
}

// String returns a one-line description.
func (s *Summary) String() string {
	out := fmt.Sprintf("%d vertices, %d edges, %d components, %d isolated",
		s.Vertices, s.Edges, s.Components, s.Isolated)
	if s.Polygon {
		out += ", closed polygon"
	}
	return out
}
