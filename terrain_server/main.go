package main

import (
	"flag"
	"log"

	"lowpoly_terrain/terrain_server/api"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	r := api.NewEngine()
	log.Printf("terrain server listening on %s", *addr)
	if err := r.Run(*addr); err != nil {
		log.Fatal(err)
	}
}
