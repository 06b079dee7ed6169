package main

import "github.com/danakita/expense-tracker/cmd"

func main() {
	cmd.Execute()
}
