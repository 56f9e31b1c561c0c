package main

import (
	"log"
	"os"

	"centauri/internal/app/repl"
)

func main() {
	log.Println("Starting application...")

	r := repl.New(os.Stdin, os.Stdout)
	if err := r.Run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}
