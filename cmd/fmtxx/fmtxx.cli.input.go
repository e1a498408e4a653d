package main

import (
	"io"
	"os"
	"strings"

	fmtxx "github.com/itsatony/go-fmtxx"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// openCatalog picks the catalog driver from the location: postgres DSNs go to
// the postgres driver, anything else is a YAML file.
func openCatalog(location string) (fmtxx.Catalog, error) {
	driver := fmtxx.CatalogDriverFile
	if strings.HasPrefix(location, CatalogPrefixPostgres) || strings.HasPrefix(location, CatalogPrefixPostgresQL) {
		driver = fmtxx.CatalogDriverPostgres
	}
	return fmtxx.OpenCatalog(driver, location, nil)
}
