package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/groovestream/users/internal/client/cli"
)

func main() {

	addr := flag.String("a", "http://localhost:5000", "user service base URL")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		fmt.Fprintln(os.Stderr, "usage: cli [-a url] register|login|whoami")
		os.Exit(2)
	}

	app := cli.NewApp(*addr)
	if err := app.Run(context.Background(), command); err != nil {
		log.Fatalf("%v", err)
	}
}
