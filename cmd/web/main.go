package main

import "github.com/Mithil2603/machinery-backend/internal/app"

func main() {
	app.Run()
}
