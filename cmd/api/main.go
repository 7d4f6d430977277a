package main

import (
	"log"
	"os"
	"strconv"

	"portfoliowatch/cmd"
)

func main() {
	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}

	port := 3009
	if p, err := strconv.Atoi(os.Getenv("PORTFOLIOWATCH_PORT")); err == nil {
		port = p
	}

	err = apiHandler.StartApi(port)
	if err != nil {
		log.Fatal(err)
	}
}
