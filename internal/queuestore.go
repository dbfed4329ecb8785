package internal

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/jateen67/skewq/utils"
)

/*
Red-Black tree as the topic registry -- topics come back in sorted order
and each one owns its own skew heap
*/

type QueueStore struct {
	topics *rbt.Tree
}

func NewQueueStore() *QueueStore {
	return &QueueStore{
		rbt.NewWithStringComparator(),
	}
}

// NewTopicQueue builds the queue every topic runs on: entries ranked by
// priority, maximum on top
func NewTopicQueue() *SkewHeap[Entry] {
	return NewSkewHeap(entryLess)
}

// Topic returns the queue for a topic, creating it on first use
func (qs *QueueStore) Topic(name string) *SkewHeap[Entry] {
	if q, found := qs.topics.Get(name); found {
		return q.(*SkewHeap[Entry])
	}
	q := NewTopicQueue()
	qs.topics.Put(name, q)
	return q
}

func (qs *QueueStore) lookup(name string) (*SkewHeap[Entry], error) {
	q, found := qs.topics.Get(name)
	if !found {
		return nil, utils.ErrTopicNotFound
	}
	return q.(*SkewHeap[Entry]), nil
}

func (qs *QueueStore) Push(topic string, e Entry) {
	qs.Topic(topic).Push(e)
}

func (qs *QueueStore) Pop(topic string) (Entry, error) {
	q, err := qs.lookup(topic)
	if err != nil {
		return Entry{}, err
	}
	return q.Pop()
}

func (qs *QueueStore) Top(topic string) (Entry, error) {
	q, err := qs.lookup(topic)
	if err != nil {
		return Entry{}, err
	}
	return q.Top()
}

// MergeTopics drains topic src into topic dst and drops src from the registry
func (qs *QueueStore) MergeTopics(dst, src string) error {
	if dst == src {
		return nil
	}
	from, err := qs.lookup(src)
	if err != nil {
		return err
	}
	qs.Topic(dst).Merge(from)
	qs.topics.Remove(src)
	return nil
}

// DrainTopic empties a topic's queue, removes it from the registry and
// returns its entries highest priority first
func (qs *QueueStore) DrainTopic(topic string) ([]Entry, error) {
	q, err := qs.lookup(topic)
	if err != nil {
		return nil, err
	}
	entries := q.Drain()
	qs.topics.Remove(topic)
	return entries, nil
}

func (qs *QueueStore) Len(topic string) int {
	q, err := qs.lookup(topic)
	if err != nil {
		return 0
	}
	return q.Size()
}

func (qs *QueueStore) TotalLen() int {
	total := 0
	for _, k := range qs.topics.Keys() {
		q, _ := qs.topics.Get(k)
		total += q.(*SkewHeap[Entry]).Size()
	}
	return total
}

func (qs *QueueStore) Topics() []string {
	names := make([]string, 0, qs.topics.Size())
	for _, k := range qs.topics.Keys() {
		names = append(names, k.(string))
	}
	return names
}

func (qs *QueueStore) Drop(topic string) {
	if q, err := qs.lookup(topic); err == nil {
		q.Clear()
		qs.topics.Remove(topic)
	}
}
