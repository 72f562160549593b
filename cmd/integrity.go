package cmd

import (
	"context"
	"fmt"

	"monument-catalog/core/storage"
	"monument-catalog/core/utils"
	"monument-catalog/feature/integrity"
	"monument-catalog/feature/monument"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd runs the structure and schema checks.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on media storage and the catalog schema",
	Long:  `Checks that the storage bucket has the media folders and that the database matches the catalog models.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withIntegrity(func(svc *integrity.Service, l *zap.Logger) error {
			if err := runStructureCheck(cmd.Context(), svc, l); err != nil {
				l.Error("Structure check failed", zap.Error(err))
			}
			return runSchemaCheck(svc, l)
		})
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the media folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withIntegrity(func(svc *integrity.Service, l *zap.Logger) error {
			return runStructureCheck(cmd.Context(), svc, l)
		})
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the catalog database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withIntegrity(func(svc *integrity.Service, l *zap.Logger) error {
			return runSchemaCheck(svc, l)
		})
	},
}

// mediaCmd represents the integrity media command
var mediaCmd = &cobra.Command{
	Use:   "media <monumentID>",
	Short: "Check that a monument's images exist in storage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := utils.ParseID(args[0])
		if err != nil {
			return err
		}
		return withIntegrity(func(svc *integrity.Service, l *zap.Logger) error {
			report, err := svc.CheckMonumentMedia(cmd.Context(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Checked: %d\n", report.Checked)
			for _, u := range report.Missing {
				fmt.Fprintf(out, "Missing: %s\n", u)
			}
			for _, u := range report.External {
				fmt.Fprintf(out, "External: %s\n", u)
			}
			if report.Status != "ok" {
				l.Warn("Missing media detected", zap.Uint("monument_id", id), zap.Int("missing", len(report.Missing)))
			}
			return nil
		})
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, schemaCmd, mediaCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
}

// withIntegrity builds the integrity service and runs fn with it.
func withIntegrity(fn func(svc *integrity.Service, l *zap.Logger) error) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	store, err := storage.NewClient(rt.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}
	db, err := rt.openDatabase()
	if err != nil {
		return err
	}

	svc := integrity.NewService(store, rt.cfg.Storage, rt.logger, db, monument.NewRepository(db))
	return fn(svc, rt.logger)
}

func runStructureCheck(ctx context.Context, svc *integrity.Service, l *zap.Logger) error {
	l.Info("Checking media folder structure...")
	missing, err := svc.CheckStructure(ctx)
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		l.Info("Media folder structure is valid.")
		return nil
	}

	l.Warn("Missing folders detected", zap.Strings("missing", missing))
	if !fixFlag {
		l.Info("Run with --fix to create missing folders.")
		return nil
	}
	if err := svc.FixStructure(ctx, missing); err != nil {
		return fmt.Errorf("failed to fix structure: %w", err)
	}
	l.Info("Structure fixed successfully.")
	return nil
}

func runSchemaCheck(svc *integrity.Service, l *zap.Logger) error {
	l.Info("Checking catalog schema integrity...")
	report, err := svc.CheckSchema()
	if err != nil {
		return err
	}
	if report.Matched {
		l.Info("Catalog schema matches the models.")
		return nil
	}

	l.Warn("Catalog schema mismatches found")
	for table, tbl := range report.Tables {
		if tbl.Status == "ok" {
			continue
		}
		if len(tbl.MissingColumns) > 0 {
			l.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
		}
		if len(tbl.TypeMismatches) > 0 {
			l.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
		}
	}
	for _, e := range report.Errors {
		l.Error("Inspection Error", zap.String("error", e))
	}
	return nil
}
