package main

import "github.com/SscSPs/supplier_ledger/internal/cli"

func main() {
	cli.Execute()
}
