package main

import (
	"context"
	"log"

	"github.com/sqltutorial/sqltutorial/internal/exercises"
)

func main() {
	if err := exercises.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
