package main

import (
	"context"
	"log"

	"github.com/sqltutorial/sqltutorial/internal/tutorial"
)

func main() {
	if err := tutorial.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
