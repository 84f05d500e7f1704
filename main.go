package main

import "trade-ledger/cmd"

func main() {
	cmd.Execute()
}
