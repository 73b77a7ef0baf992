package transform

// unionFind is a disjoint-set forest over string ids with path compression
// and union by size. Unseen ids are implicit singletons.
type unionFind struct {
	parent map[string]string
	size   map[string]int
}

func newUnionFind() *unionFind {
	return &unionFind{
		parent: make(map[string]string),
		size:   make(map[string]int),
	}
}

// Add registers id as a singleton set if it is not already known.
func (uf *unionFind) Add(id string) {
	if _, ok := uf.parent[id]; !ok {
		uf.parent[id] = id
		uf.size[id] = 1
	}
}

// Find returns the representative of id's set.
func (uf *unionFind) Find(id string) string {
	uf.Add(id)
	root := id
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// Path compression.
	for uf.parent[id] != root {
		id, uf.parent[id] = uf.parent[id], root
	}
	return root
}

// Union merges the sets containing a and b.
func (uf *unionFind) Union(a, b string) {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
}
