package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/catalog"
	"github.com/jonathan/job-matcher/internal/schemas"
)

var validateCatalogCmd = &cobra.Command{
	Use:   "validate-catalog",
	Short: "Validate a job catalog file against the catalog schema",
	Long:  "Checks a catalog JSON file against the catalog JSON Schema and confirms it parses into the in-memory form the matcher consumes.",
	RunE:  runValidateCatalog,
}

var validateCatalogPath string

func init() {
	validateCatalogCmd.Flags().StringVarP(&validateCatalogPath, "catalog", "c", "", "Path to jobs catalog JSON file (required)")

	if err := validateCatalogCmd.MarkFlagRequired("catalog"); err != nil {
		panic(fmt.Sprintf("failed to mark catalog flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCatalogCmd)
}

func runValidateCatalog(_ *cobra.Command, _ []string) error {
	schemaPath := schemas.ResolveSchemaPath(schemas.CatalogSchema)
	if schemaPath == "" {
		return fmt.Errorf("catalog schema %s not found; run from the repository root", schemas.CatalogSchema)
	}

	if err := schemas.ValidateFile(schemaPath, validateCatalogPath); err != nil {
		return fmt.Errorf("catalog file %s is invalid: %w", validateCatalogPath, err)
	}

	cat, err := catalog.Load(validateCatalogPath)
	if err != nil {
		return fmt.Errorf("catalog file %s did not load: %w", validateCatalogPath, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Catalog %s is valid: %d records, version %s\n",
		validateCatalogPath, cat.Len(), cat.Version)

	return nil
}
