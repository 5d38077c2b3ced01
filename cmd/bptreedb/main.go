/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ssargent/bptreedb/cmd/bptreedb/cmd"

func main() {
	cmd.Execute()
}
