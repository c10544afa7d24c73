package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/pthm/vertica/cmd/vcatalog/internal/cli"
	"github.com/pthm/vertica/pkg/catalog"
	"github.com/pthm/vertica/pkg/schema"
)

var (
	catalogDB            string
	catalogServerVersion string
	catalogDumpFormat    string
)

var (
	headerFmt = color.New(color.FgBlue, color.Bold).SprintfFunc()
	gatedFmt  = color.New(color.FgYellow).SprintFunc()
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect v_catalog table declarations",
}

var catalogTablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List catalog tables",
	Example: `  # List every declared table
  vcatalog catalog tables

  # Show availability on a given release
  vcatalog catalog tables --server-version 9.6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, known, err := resolveVersion(cmd.Context(), catalogServerVersion, catalogDB)
		if err != nil {
			return err
		}
		printTables(os.Stdout, catalog.Tables(), v, known)
		return nil
	},
}

var catalogDescribeCmd = &cobra.Command{
	Use:   "describe <table>",
	Short: "Show the columns of a catalog table",
	Example: `  vcatalog catalog describe v_index
  vcatalog catalog describe v_catalog.v_class --server-version 9.2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, ok := catalog.Lookup(args[0])
		if !ok {
			return cli.CatalogError(fmt.Sprintf("unknown catalog table %q", args[0]), nil)
		}
		v, known, err := resolveVersion(cmd.Context(), catalogServerVersion, catalogDB)
		if err != nil {
			return err
		}
		printColumns(os.Stdout, t, v, known)
		return nil
	},
}

var catalogDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Export catalog declarations",
	Long:  `Export every catalog table and column with its type and server-version gate.`,
	Example: `  vcatalog catalog dump
  vcatalog catalog dump --format json --server-version 12.0`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, known, err := resolveVersion(cmd.Context(), catalogServerVersion, catalogDB)
		if err != nil {
			return err
		}
		out, err := marshalDump(buildDump(v, known), catalogDumpFormat)
		if err != nil {
			return cli.GeneralError("encoding dump", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

func init() {
	for _, c := range []*cobra.Command{catalogTablesCmd, catalogDescribeCmd, catalogDumpCmd} {
		c.Flags().StringVar(&catalogDB, "db", "", "database URL used to detect the server version")
		c.Flags().StringVar(&catalogServerVersion, "server-version", "", "filter for this server release (e.g. 12.0)")
		catalogCmd.AddCommand(c)
	}
	catalogDumpCmd.Flags().StringVar(&catalogDumpFormat, "format", "yaml", "output format: yaml or json")
}

func printTables(w io.Writer, tables []*schema.Table, v catalog.Version, known bool) {
	if known {
		_, _ = fmt.Fprintln(w, headerFmt("v_catalog on server %s", v))
	}

	tw := newListWriter(w)
	tw.AppendHeader(table.Row{"TABLE", "COLUMNS", "SINCE", "STATUS"})
	for _, t := range tables {
		since := "-"
		if gate, ok := catalog.TableMinServerVersion(t); ok {
			since = gate.String()
		}
		cols := fmt.Sprintf("%d", t.C().Len())
		status := ""
		if known {
			cols = fmt.Sprintf("%d/%d", len(catalog.AvailableColumns(t, v)), t.C().Len())
			status = "available"
			if !catalog.TableAvailable(t, v) {
				status = "unavailable"
			}
		}
		tw.AppendRow(table.Row{t.FullName(), cols, since, status})
	}
	tw.Render()
}

func printColumns(w io.Writer, t *schema.Table, v catalog.Version, known bool) {
	_, _ = fmt.Fprintln(w, headerFmt("%s", t.FullName()))
	if known && !catalog.TableAvailable(t, v) {
		gate, _ := catalog.TableMinServerVersion(t)
		_, _ = fmt.Fprintln(w, gatedFmt(fmt.Sprintf("not available on %s (requires %s)", v, gate)))
	}

	tw := newListWriter(w)
	tw.AppendHeader(table.Row{"COLUMN", "TYPE", "SINCE", "STATUS"})
	for _, c := range t.Columns() {
		since := "-"
		status := ""
		if known {
			status = "available"
		}
		if gate, ok := catalog.MinServerVersion(c); ok {
			since = gate.String()
			if known && !v.AtLeast(gate) {
				status = "unavailable"
			}
		}
		tw.AppendRow(table.Row{c.Name, fmt.Sprint(c.Type), since, status})
	}
	tw.Render()
}

// newListWriter returns a borderless table that mirrors its output to w.
func newListWriter(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	style := table.StyleDefault
	style.Box.PaddingLeft = ""
	style.Box.PaddingRight = "  "
	style.Options = table.Options{}
	tw.SetStyle(style)
	return tw
}

type columnDump struct {
	Name             string `json:"name"`
	Type             string `json:"type"`
	Storage          string `json:"storage"`
	MinServerVersion string `json:"min_server_version,omitempty"`
}

type tableDump struct {
	Name             string       `json:"name"`
	Schema           string       `json:"schema"`
	MinServerVersion string       `json:"min_server_version,omitempty"`
	Columns          []columnDump `json:"columns"`
}

type catalogDump struct {
	ServerVersion string      `json:"server_version,omitempty"`
	Tables        []tableDump `json:"tables"`
}

// buildDump describes every table. With a known version, gated tables and
// columns are left out.
func buildDump(v catalog.Version, known bool) catalogDump {
	var d catalogDump
	if known {
		d.ServerVersion = v.String()
	}
	for _, t := range catalog.Tables() {
		if known && !catalog.TableAvailable(t, v) {
			continue
		}
		td := tableDump{Name: t.Name, Schema: t.Schema}
		if gate, ok := catalog.TableMinServerVersion(t); ok {
			td.MinServerVersion = gate.String()
		}
		cols := t.Columns()
		if known {
			cols = catalog.AvailableColumns(t, v)
		}
		for _, c := range cols {
			cd := columnDump{Name: c.Name, Type: c.Type.String(), Storage: c.Type.DDL()}
			if gate, ok := catalog.MinServerVersion(c); ok {
				cd.MinServerVersion = gate.String()
			}
			td.Columns = append(td.Columns, cd)
		}
		d.Tables = append(d.Tables, td)
	}
	return d
}

func marshalDump(d catalogDump, format string) ([]byte, error) {
	switch format {
	case "yaml", "":
		return yaml.Marshal(d)
	case "json":
		out, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (want yaml or json)", format)
	}
}
