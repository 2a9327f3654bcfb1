package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"planreport/internal/store"
)

var seedDemo bool

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the planning database",
}

var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database schema",
	Args:  cobra.NoArgs,
	RunE:  runDBInit,
}

func runDBInit(cmd *cobra.Command, args []string) error {
	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	if seedDemo {
		if err := st.SeedDemo(cmd.Context()); err != nil {
			return err
		}
	}

	logger.Info("database ready", zap.String("path", st.Path()), zap.Bool("demo", seedDemo))
	fmt.Fprintln(cmd.OutOrStdout(), st.Path())
	return nil
}

func init() {
	dbInitCmd.Flags().BoolVar(&seedDemo, "seed-demo", false, "insert a sample plan and program")
	dbCmd.AddCommand(dbInitCmd)
}
