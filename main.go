package main

import "github.com/alessandrocasali86-boop/lumen-nidi-tda/cmd"

func main() {
	cmd.Execute()
}
