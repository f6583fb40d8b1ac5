// SPDX-License-Identifier: MIT

package dijkstra

// nodeItem is a heap entry: a vertex handle and the distance it was pushed with.
type nodeItem struct {
	handle int
	dist   int64
}

// nodePQ is a min-heap of nodeItem ordered by dist, then by handle.
//
// Ordering equal distances by handle makes the heap pick the same vertex the
// linear scan would: the first one in insertion order. Outdated entries stay
// in the heap and are skipped when popped (lazy decrease-key).
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].handle < pq[j].handle
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
