package nav

import (
	"container/heap"
)

// frontierEntry is one queued (priority, node) pair in the A* search
type frontierEntry struct {
	node Node
	g    float64 // Cost from start when this entry was pushed
	f    float64 // g + heuristic
}

// PriorityQueue implements heap.Interface for the A* frontier
type PriorityQueue []frontierEntry

func (pq PriorityQueue) Len() int { return len(pq) }

func (pq PriorityQueue) Less(i, j int) bool {
	return pq[i].f < pq[j].f
}

func (pq PriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(frontierEntry))
}

func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	entry := old[n-1]
	*pq = old[0 : n-1]
	return entry
}

// FindPath computes the cheapest path from one node to another with A*.
//
// A nil passable treats every node as traversable. Neighbors are filtered
// through passable before they are relaxed; the start node itself is never
// checked, so an agent standing on a freshly blocked node can still leave it.
// The returned Path excludes from, includes to and is ordered goal-first.
// An empty Path means from == to or the goal cannot be reached.
func FindPath(graph Graph, passable Traversable, from, to Node) Path {
	if from == to || graph == nil {
		return nil
	}

	openSet := &PriorityQueue{}
	heap.Init(openSet)
	heap.Push(openSet, frontierEntry{
		node: from,
		g:    0,
		f:    graph.Heuristic(from, to),
	})

	cameFrom := make(map[Node]Node)
	costSoFar := map[Node]float64{from: 0}

	found := false
	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(frontierEntry)

		// Entries superseded by a cheaper push are stale
		if current.g > costSoFar[current.node] {
			continue
		}

		if current.node == to {
			found = true
			break
		}

		for _, neighbor := range graph.Neighbors(current.node) {
			if passable != nil && !passable(neighbor) {
				continue
			}

			tentativeG := current.g + graph.Cost(current.node, neighbor)
			if best, seen := costSoFar[neighbor]; seen && tentativeG >= best {
				continue
			}

			costSoFar[neighbor] = tentativeG
			cameFrom[neighbor] = current.node
			heap.Push(openSet, frontierEntry{
				node: neighbor,
				g:    tentativeG,
				f:    tentativeG + graph.Heuristic(neighbor, to),
			})
		}
	}

	if !found {
		return nil
	}

	path := Path{}
	for node := to; node != from; node = cameFrom[node] {
		path = append(path, node)
	}
	return path
}
