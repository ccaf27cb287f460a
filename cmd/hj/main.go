package main

import "habitjournal/cmd/hj/root"

func main() {
	root.Execute()
}
