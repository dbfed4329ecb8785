package internal

import (
	"fmt"
	"sort"

	"github.com/serialx/hashring"
	"github.com/sirupsen/logrus"

	"github.com/jateen67/skewq/utils"
)

type Node struct {
	ID    string
	Store *QueueStore
}

type Cluster struct {
	hashRing *hashring.HashRing
	Nodes    map[string]*Node
}

var nodeCount = 1

func InitCluster(numOfNodes int) *Cluster {
	c := &Cluster{Nodes: make(map[string]*Node)}
	var nodeAddrs []string

	for i := 0; i < numOfNodes; i++ {
		node := Node{
			ID:    fmt.Sprintf("node-%d", nodeCount),
			Store: NewQueueStore(),
		}
		c.Nodes[node.ID] = &node
		nodeCount++
		nodeAddrs = append(nodeAddrs, node.ID)
	}

	c.hashRing = hashring.New(nodeAddrs)
	return c
}

func (c *Cluster) nodeFor(topic string) (*Node, bool) {
	nodeAddr, _ := c.hashRing.GetNode(topic) // get which node this topic should live on
	node, ok := c.Nodes[nodeAddr]
	return node, ok
}

func (c *Cluster) Push(topic string, e Entry) {
	if node, ok := c.nodeFor(topic); ok {
		node.Store.Push(topic, e)
	}
}

func (c *Cluster) Pop(topic string) (Entry, error) {
	if node, ok := c.nodeFor(topic); ok {
		return node.Store.Pop(topic)
	}
	return Entry{}, utils.ErrTopicNotFound
}

func (c *Cluster) Top(topic string) (Entry, error) {
	if node, ok := c.nodeFor(topic); ok {
		return node.Store.Top(topic)
	}
	return Entry{}, utils.ErrTopicNotFound
}

func (c *Cluster) Len(topic string) int {
	if node, ok := c.nodeFor(topic); ok {
		return node.Store.Len(topic)
	}
	return 0
}

// MergeTopics drains topic src into topic dst, across nodes if their homes
// differ
func (c *Cluster) MergeTopics(dst, src string) error {
	if dst == src {
		return nil
	}
	srcNode, ok := c.nodeFor(src)
	if !ok {
		return utils.ErrNodeNotFound
	}
	dstNode, ok := c.nodeFor(dst)
	if !ok {
		return utils.ErrNodeNotFound
	}

	if srcNode == dstNode {
		return srcNode.Store.MergeTopics(dst, src)
	}

	entries, err := srcNode.Store.DrainTopic(src)
	if err != nil {
		return err
	}
	for _, e := range entries {
		dstNode.Store.Push(dst, e)
	}
	return nil
}

// AddNode extends the ring and reports which topics no longer live on their
// current node, keyed by the node still holding them. The caller migrates
// them with MigrateTopic.
func (c *Cluster) AddNode() (*Node, map[string][]string) {
	node := &Node{
		ID:    fmt.Sprintf("node-%d", nodeCount),
		Store: NewQueueStore(),
	}
	nodeCount++
	c.Nodes[node.ID] = node
	c.hashRing = c.hashRing.AddNode(node.ID)

	displaced := make(map[string][]string)
	for id, n := range c.Nodes {
		if id == node.ID {
			continue
		}
		for _, topic := range n.Store.Topics() {
			if home, _ := c.hashRing.GetNode(topic); home != id {
				displaced[id] = append(displaced[id], topic)
			}
		}
	}
	return node, displaced
}

// Topics lists every topic in the cluster in sorted order
func (c *Cluster) Topics() []string {
	var names []string
	for _, n := range c.Nodes {
		names = append(names, n.Store.Topics()...)
	}
	sort.Strings(names)
	return names
}

func (c *Cluster) PrintDiagnostics() {
	for id, n := range c.Nodes {
		logrus.WithFields(logrus.Fields{
			"node":    id,
			"topics":  len(n.Store.Topics()),
			"entries": n.Store.TotalLen(),
		}).Info("cluster node")
	}
}
