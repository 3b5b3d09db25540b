package main

import "github.com/abdulbasith5/SSODL-MBA-PROJECT/cmd/finops/cmd"

func main() {
	cmd.Execute()
}
