package cmd

import (
	"fmt"

	"cinematrix-cli/booking"
	"cinematrix-cli/store"
	"github.com/spf13/cobra"
)

func newCatalogCmd(opts *options) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the movie catalog file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the built-in catalog to a file for editing",
		Long:  `Write the built-in catalog as JSON. Without a path the file goes to the location that is read on startup.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.catalogPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				defaultPath, err := store.DefaultCatalogPath()
				if err != nil {
					return err
				}
				path = defaultPath
			}

			if _, found, err := store.LoadCatalog(path); err != nil || found {
				if !force {
					return fmt.Errorf("catalog file %s already exists, use --force to overwrite", path)
				}
			}
			if err := store.SaveCatalog(path, booking.DefaultCatalog()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Catalog written to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	catalogCmd.AddCommand(initCmd)
	return catalogCmd
}
