package internal

// Queue is the surface shared by a single-node QueueStore and a Cluster:
// topic-addressed priority queue operations
type Queue interface {
	Push(topic string, e Entry)
	Pop(topic string) (Entry, error)
	Top(topic string) (Entry, error)
	Len(topic string) int
}
