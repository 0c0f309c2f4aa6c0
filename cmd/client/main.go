package main

import "medtracker/cmd/client/cmd"

func main() {
	cmd.Execute()
}
