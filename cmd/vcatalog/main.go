// Command vcatalog inspects the Vertica v_catalog declarations and checks
// them against a live server.
//
// Commands:
//   - catalog tables: list catalog tables and their server-version gates
//   - catalog describe: show the columns of one catalog table
//   - catalog dump: export every declaration as YAML or JSON
//   - doctor: run connectivity, version, and catalog coverage checks
//   - config show: print the effective configuration
//   - version: print build information
//
// Usage:
//
//	vcatalog [flags] <command>
//
// Commands that need a server take --db or read database.* from
// vcatalog.yaml. Catalog listing works offline; pass --server-version to
// filter columns for a release.
package main

func main() {
	Execute()
}
