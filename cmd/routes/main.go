package main

import "github.com/arielf-camacho/route-stream/cmd/routes/cmd"

func main() {
	cmd.Execute()
}
