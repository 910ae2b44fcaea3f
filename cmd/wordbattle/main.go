package main

import (
	"github.com/jabibo/wordbattle-backend-sub001/internal/cli"
)

func main() {
	cli.Execute()
}
