package main

import "github.com/parsewell/excel-gateway/internal/bootstrap"

func main() {
	bootstrap.Run()
}
