package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jateen67/skewq/internal"
)

func main() {
	numNodes := flag.Int("nodes", 3, "number of queue nodes in the cluster")
	listenAddr := flag.String("listen", "", "address for the queue migration grpc server (off when empty)")
	flag.Parse()

	commands := "Commands:\n" +
		"\t- push   <topic> <priority> <payload> : enqueue a payload\n" +
		"\t- pop    <topic>                      : dequeue the highest priority payload\n" +
		"\t- top    <topic>                      : peek at the highest priority payload\n" +
		"\t- merge  <dst> <src>                  : drain topic src into topic dst\n" +
		"\t- migrate <node> <topic> <addr>       : ship a topic's queue to another node\n" +
		"\t- size   <topic>                      : number of entries in a topic\n" +
		"\t- topics                              : list every topic\n" +
		"\t- nodes                               : per-node diagnostics\n" +
		"\t- ctrl+c                              : exit\n" +
		"\t- help                                : show this message"

	cluster := internal.InitCluster(*numNodes)

	if *listenAddr != "" {
		if _, err := internal.StartMigrationServer(*listenAddr, cluster); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println(commands)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println("\nEnter command: ")
		if !scanner.Scan() {
			return
		}
		args := strings.Split(scanner.Text(), " ")

		switch args[0] {
		case "push":
			if len(args) != 4 {
				fmt.Println("err: usage: push <topic> <priority> <payload>")
			} else if priority, err := strconv.ParseInt(args[2], 10, 64); err != nil {
				fmt.Println("err: priority must be an integer")
			} else {
				cluster.Push(args[1], internal.Entry{Priority: priority, Payload: args[3]})
			}
		case "pop":
			if len(args) != 2 {
				fmt.Println("err: usage: pop <topic>")
			} else {
				res, err := cluster.Pop(args[1])
				if err != nil {
					fmt.Println("err: could not pop:", err)
				} else {
					fmt.Println(res.Payload)
				}
			}
		case "top":
			if len(args) != 2 {
				fmt.Println("err: usage: top <topic>")
			} else {
				res, err := cluster.Top(args[1])
				if err != nil {
					fmt.Println("err: could not peek:", err)
				} else {
					fmt.Println(res.Payload)
				}
			}
		case "merge":
			if len(args) != 3 {
				fmt.Println("err: usage: merge <dst> <src>")
			} else if err := cluster.MergeTopics(args[1], args[2]); err != nil {
				fmt.Println("err: could not merge:", err)
			} else {
				fmt.Println("merge: success")
			}
		case "migrate":
			if len(args) != 4 {
				fmt.Println("err: usage: migrate <node> <topic> <addr>")
			} else {
				client, conn := internal.StartGRPCClient(args[3])
				if err := cluster.MigrateTopic(context.Background(), args[1], args[2], client); err != nil {
					fmt.Println("err: could not migrate:", err)
				} else {
					fmt.Println("migration: success")
				}
				conn.Close()
			}
		case "size":
			if len(args) != 2 {
				fmt.Println("err: usage: size <topic>")
			} else {
				fmt.Println(cluster.Len(args[1]))
			}
		case "topics":
			for _, topic := range cluster.Topics() {
				fmt.Println(topic)
			}
		case "nodes":
			cluster.PrintDiagnostics()
		case "help":
			fmt.Println("\n" + commands)
		}
	}
}
