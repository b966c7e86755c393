/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ssargent/hatdecoder/cmd/hat/cmd"

func main() {
	cmd.Execute()
}
