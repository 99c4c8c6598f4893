package main

import "github.com/vojtechpavlu/Sudoku/cmd"

func main() {
	cmd.Execute()
}
