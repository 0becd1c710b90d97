package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/example/symlink-toggle/internal/cli"
)

var exitFunc = os.Exit

func main() {
	exitFunc(run(os.Args[1:]))
}

func run(args []string) int {
	// Optional .env file supplies the documented environment fallbacks.
	_ = godotenv.Load()
	return cli.Execute(args, afero.NewOsFs(), cli.NewPromptUI(), os.LookupEnv, os.Stdout, os.Stderr)
}
