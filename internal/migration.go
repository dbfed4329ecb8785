package internal

import (
	"context"
	"fmt"
	"net"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"github.com/jateen67/skewq/proto"
	"github.com/jateen67/skewq/utils"
)

// MigrationServer receives drained queues from other nodes and merges them
// into its own store
type MigrationServer struct {
	proto.UnimplementedQueueMigrationServiceServer
	store Queue
}

func NewMigrationServer(store Queue) *MigrationServer {
	return &MigrationServer{store: store}
}

func (s *MigrationServer) MigrateQueue(ctx context.Context, req *proto.MigrateQueueRequest) (*proto.MigrateQueueResponse, error) {
	for _, pe := range req.Entries {
		s.store.Push(req.Topic, Entry{Priority: pe.Priority, Payload: pe.Payload})
	}
	logrus.WithFields(logrus.Fields{
		"topic":   req.Topic,
		"entries": len(req.Entries),
	}).Info("queue migrated in")

	return &proto.MigrateQueueResponse{
		Topic:      req.Topic,
		MergedSize: uint64(s.store.Len(req.Topic)),
	}, nil
}

func StartMigrationServer(addr string, store Queue) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	server := grpc.NewServer()
	proto.RegisterQueueMigrationServiceServer(server, NewMigrationServer(store))
	go server.Serve(lis)
	logrus.Info("migration server started on ", addr)
	return server, nil
}

// MigrateTopic drains a topic from the named node and ships it to client.
// If the call fails the entries go back into the donor, so a failed
// migration leaves the cluster as it was.
func (c *Cluster) MigrateTopic(ctx context.Context, nodeID, topic string, client proto.QueueMigrationServiceClient) error {
	node, ok := c.Nodes[nodeID]
	if !ok {
		return utils.ErrNodeNotFound
	}

	entries, err := node.Store.DrainTopic(topic)
	if err != nil {
		return err
	}

	req := &proto.MigrateQueueRequest{Topic: topic}
	for _, e := range entries {
		req.Entries = append(req.Entries, &proto.QueueEntry{Priority: e.Priority, Payload: e.Payload})
	}

	if _, err := client.MigrateQueue(ctx, req); err != nil {
		for _, e := range entries {
			node.Store.Push(topic, e)
		}
		return fmt.Errorf("failed to migrate topic %s: %w", topic, err)
	}
	return nil
}
