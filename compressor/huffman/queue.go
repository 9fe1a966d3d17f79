package huffman

import "container/heap"

// huffmanHeap orders trees by frequency, breaking ties by id. Ids are handed
// out in creation order and every tree is queued right after it is created,
// so on equal frequency the earlier-inserted tree comes out first.
type huffmanHeap []huffmanTree

func (hub *huffmanHeap) Push(item any) {
	*hub = append(*hub, item.(huffmanTree))
}

func (hub *huffmanHeap) Pop() any {
	popped := (*hub)[len(*hub)-1]
	(*hub)[len(*hub)-1] = nil
	(*hub) = (*hub)[:len(*hub)-1]
	return popped
}

func (hub huffmanHeap) Len() int {
	return len(hub)
}

func (hub huffmanHeap) Less(i, j int) bool {
	if hub[i].getFrequency() != hub[j].getFrequency() {
		return hub[i].getFrequency() < hub[j].getFrequency()
	}
	return hub[i].getId() < hub[j].getId()
}

func (hub huffmanHeap) Swap(i, j int) {
	hub[i], hub[j] = hub[j], hub[i]
}

// priorityQueue is a bounded min-priority queue of trees.
type priorityQueue struct {
	hub      huffmanHeap
	capacity int
}

func newPriorityQueue(capacity int) *priorityQueue {
	return &priorityQueue{
		hub:      make(huffmanHeap, 0, capacity),
		capacity: capacity,
	}
}

func (pq *priorityQueue) insert(tree huffmanTree) error {
	if pq.hub.Len() >= pq.capacity {
		return ErrCapacityExceeded
	}
	heap.Push(&pq.hub, tree)
	return nil
}

func (pq *priorityQueue) extractMin() (huffmanTree, error) {
	if pq.hub.Len() == 0 {
		return nil, ErrQueueEmpty
	}
	return heap.Pop(&pq.hub).(huffmanTree), nil
}

func (pq *priorityQueue) size() int {
	return pq.hub.Len()
}

func (pq *priorityQueue) limit() int {
	return pq.capacity
}
