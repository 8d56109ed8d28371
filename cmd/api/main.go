package main

import (
	"log"

	"goflare.io/storefront/config"
)

func main() {

	server, err := InitializeStorefront()
	if err != nil {
		log.Fatal(err)
		return
	}

	if err = server.Run(config.ServerStartPort); err != nil {
		log.Fatal(err.Error())
	}

}
