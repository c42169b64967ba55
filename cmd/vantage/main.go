package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	client "github.com/mutablelogic/go-client"
	catalog "github.com/perimeterlabs/vantage/pkg/catalog"
	engine "github.com/perimeterlabs/vantage/pkg/engine"
	openapi "github.com/perimeterlabs/vantage/pkg/openapi"
	vantageapi "github.com/perimeterlabs/vantage/pkg/vantageapi"
	version "github.com/perimeterlabs/vantage/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Controller
	Endpoint string `env:"VANTAGE_URL" help:"Vantage controller endpoint"`
	Key      string `env:"VANTAGE_API_KEY" help:"Vantage API key"`

	// Context
	ctx    context.Context
	config *Config
}

type CLI struct {
	Globals

	// Operations
	Ops      OpsCmd      `cmd:"" help:"List the callable operations"`
	Describe DescribeCmd `cmd:"" help:"Describe an operation and its input shape"`
	Call     CallCmd     `cmd:"" help:"Call an operation"`

	// Shortcuts
	Sites   SitesCmd   `cmd:"" help:"List sites"`
	Devices DevicesCmd `cmd:"" help:"List the devices for a site"`

	// Server
	MCP MCPCmd `cmd:"" name:"mcp" help:"Start an MCP server on stdin/stdout"`

	// Other
	Version VersionCmd `cmd:"" help:"Print version information"`
}

type VersionCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Vantage device-management command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Load persisted configuration
	config, err := NewConfig(execName())
	if err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
	cli.Globals.config = config
	defer config.Close()

	// Run the command
	cmd.FatalIfErrorf(cmd.Run(&cli.Globals))
}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (*VersionCmd) Run(ctx *Globals) error {
	fmt.Println(string(version.JSON(execName())))
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// HELPERS

// Engine creates the execution engine from the command line and persisted
// configuration.
func (g *Globals) Engine() (*engine.Engine, error) {
	endpoint := g.Endpoint
	if endpoint == "" {
		endpoint = g.config.Endpoint
	}
	key := g.Key
	if key == "" {
		key = g.config.Key
	}

	// Client options
	opts := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}

	transport, err := vantageapi.New(endpoint, key, opts...)
	if err != nil {
		return nil, err
	}
	doc, err := vantageapi.Document()
	if err != nil {
		return nil, err
	}
	index, err := catalog.NewIndex(catalog.Operations)
	if err != nil {
		return nil, err
	}
	return engine.New(index, openapi.NewResolver(doc), transport), nil
}

// Index returns the catalog index without a transport, for offline commands.
func (g *Globals) Index() (*catalog.Index, error) {
	return catalog.NewIndex(catalog.Operations)
}

// Resolver returns the schema resolver over the embedded document.
func (g *Globals) Resolver() (*openapi.Resolver, error) {
	doc, err := vantageapi.Document()
	if err != nil {
		return nil, err
	}
	return openapi.NewResolver(doc), nil
}

func execName() string {
	exe, err := os.Executable()
	if err != nil {
		return "vantage"
	}
	return filepath.Base(exe)
}
