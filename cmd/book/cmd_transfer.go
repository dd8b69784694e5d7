package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"addressbook/internal/logging"
	"addressbook/internal/store"
)

// exportCmd copies the book out to another file
var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Write the book to a YAML, JSON or SQLite file",
	Long: `Copies every contact into path. The format follows the extension:
.yaml/.yml and .json write a snapshot file, .db/.sqlite/.sqlite3 a SQLite
database. The target is replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

// importCmd replaces the book with the contents of a file
var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Replace the book with a YAML, JSON or SQLite file",
	Long: `Loads every contact from path and saves it as the current book.
The file must exist. The current contents are replaced, not merged.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runExport(cmd *cobra.Command, args []string) error {
	return transfer(cmd, "export", args[0], func(current, other store.Store) (store.Store, store.Store) {
		return other, current
	})
}

func runImport(cmd *cobra.Command, args []string) error {
	// A missing source would load as an empty book and wipe the current one.
	if _, err := os.Stat(args[0]); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	return transfer(cmd, "import", args[0], func(current, other store.Store) (store.Store, store.Store) {
		return current, other
	})
}

// transfer opens the configured store and the one at path, and copies
// between them in the direction chosen by pick (which returns dst, src).
func transfer(cmd *cobra.Command, verb, path string, pick func(current, other store.Store) (store.Store, store.Store)) error {
	ctx := context.Background()

	current, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer current.Close()

	other, err := store.Open(ctx, cfg.Storage.ForPath(path), logging.For(logger, logging.CategoryStore))
	if err != nil {
		return err
	}
	defer other.Close()

	dst, src := pick(current, other)
	n, err := store.Copy(ctx, dst, src)
	if err != nil {
		return fmt.Errorf("%s failed: %w", verb, err)
	}
	logging.For(logger, logging.CategoryStore).Info(verb+" complete", zap.String("path", path), zap.Int("contacts", n))
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d contacts (%s)\n", verb, n, path)
	return nil
}
