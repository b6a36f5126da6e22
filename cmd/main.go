package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/breeew/datas-api/cmd/service"
)

func main() {
	root := &cobra.Command{
		Use:          "datas-api",
		Short:        "datas record service",
		SilenceUsage: true,
	}

	root.AddCommand(service.NewCommand(), service.NewMigrateCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
