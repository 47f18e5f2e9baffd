package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/lojadigital/produtos/src/internal/config"
	"github.com/lojadigital/produtos/src/internal/log"
	"github.com/lojadigital/produtos/src/internal/products"
	"github.com/lojadigital/produtos/src/internal/store"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTOML  = "toml"
)

// exportDocument mirrors the data file layout in every format.
type exportDocument struct {
	Products products.Collection `json:"produtos" yaml:"produtos" toml:"produtos"`
}

// ExportCommand prints the stored products.
type ExportCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	format string
}

// CreateExportCommand creates a new export command.
func CreateExportCommand() *ExportCommand {
	c := &ExportCommand{
		fs: flag.NewFlagSet("export", flag.ExitOnError),
	}

	c.fs.StringVar(&c.format, "format", FormatTable, "Output format: table, json, yaml or toml")

	return c
}

func (c *ExportCommand) Name() string {
	return c.fs.Name()
}

func (c *ExportCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	log.SetForceStdErr(true)

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	switch c.format {
	case FormatTable, FormatJSON, FormatYAML, FormatTOML:
	default:
		return fmt.Errorf("unknown format %q (expected table, json, yaml or toml)", c.format)
	}

	cfg, err := loadConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	return nil
}

func (c *ExportCommand) Run() error {
	collection, err := store.New(c.cfg.Storage.DBFile).Load()
	if err != nil {
		return err
	}

	return writeCollection(c.ctx.stdout(), collection, c.format)
}

func writeCollection(w io.Writer, c products.Collection, format string) error {
	if c == nil {
		c = products.Collection{}
	}
	doc := exportDocument{Products: c}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		return enc.Encode(doc)
	default:
		return writeTable(w, c)
	}
}

func writeTable(w io.Writer, c products.Collection) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNOME\tPRECO")
	for _, p := range c {
		price := "-"
		if p.Price.IsFinite() {
			price = strconv.FormatFloat(float64(p.Price), 'f', 2, 64)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", p.ID, p.NameOrEmpty(), price)
	}
	return tw.Flush()
}
