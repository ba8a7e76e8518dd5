package main

import (
	"log"

	"github.com/glossalab/glossa/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
