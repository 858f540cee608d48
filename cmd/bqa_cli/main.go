package main

import "github.com/SscSPs/budget_query_app/internal/cli"

func main() {
	cli.Execute()
}
