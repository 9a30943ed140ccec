package main

import (
	"log"

	cfg "storeadmin/src/configuration"
	server "storeadmin/src/server"
)

func main() {
	config := cfg.ReadProperties()
	if err := server.RunServer(config); err != nil {
		log.Fatalf("[server] %v", err)
	}
}
