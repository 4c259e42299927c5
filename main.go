package main

import "github.com/jmorande/carscope/cmd"

func main() {
	cmd.Execute()
}
