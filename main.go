package main

import "github.com/jsphweid/keysound/cmd"

func main() {
	cmd.Execute()
}
