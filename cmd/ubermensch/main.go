package main

import "github.com/aebalz/ubermensch-tracker/cmd/ubermensch/root"

func main() {
	root.Execute()
}
