package main

import "github.com/inovacc/fitbook/cmd"

func main() {
	cmd.Execute()
}
