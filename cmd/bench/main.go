package main

import "github.com/yungbote/orderbench/internal/cmd"

func main() {
	cmd.Execute()
}
