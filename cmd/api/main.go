package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "service-auto",
		Short:         "Car service appointments and service history API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var port string
	root.PersistentFlags().StringVarP(&port, "port", "p", "", "listen port (overrides SERVER_PORT)")

	serve := newServeCmd(&port)
	root.AddCommand(serve)

	// no subcommand means serve
	root.RunE = serve.RunE

	return root
}
