package internal

import (
	"fmt"
	"log"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/jateen67/skewq/proto"
)

func StartGRPCClient(destNodeAddr string) (proto.QueueMigrationServiceClient, *grpc.ClientConn) {
	conn, err := grpc.NewClient(destNodeAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("grpc client started on port ", destNodeAddr)
	client := proto.NewQueueMigrationServiceClient(conn)
	return client, conn
}
