package main

import "nursery-monitor/cmd"

func main() {
	cmd.Execute()
}
