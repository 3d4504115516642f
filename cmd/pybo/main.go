package main

import (
	"errors"
	"log"
	"os"

	"github.com/viant/pybo/api"
	"github.com/viant/pybo/cli"
	_ "github.com/viant/scy/kms/blowfish"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		if errors.Is(err, api.ErrHandled) {
			os.Exit(1)
		}
		log.Fatal(err)
	}
}
