// Command wmoinspect serves and verifies world model and terrain files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"code.cloudfoundry.org/bytefmt"
	"github.com/alecthomas/kong"

	"github.com/ptolstoi/warcraftassets/catalog"
	"github.com/ptolstoi/warcraftassets/dbc"
	"github.com/ptolstoi/warcraftassets/internal/conf"
	"github.com/ptolstoi/warcraftassets/internal/inspectserver"
	"github.com/ptolstoi/warcraftassets/internal/loader"
	"github.com/ptolstoi/warcraftassets/internal/logger"
	"github.com/ptolstoi/warcraftassets/warcraft"
)

var (
	_version   = "UNSET"
	_buildTime = "UNSET"
)

type globals struct {
	conf   *conf.Conf
	logger *logger.Logger
}

func (g *globals) newLoader() *loader.Loader {
	return &loader.Loader{
		Dir:         g.conf.DataDir,
		Version:     warcraft.Version(g.conf.Version),
		MaxFileSize: uint64(g.conf.MaxFileSize),
		Parent:      g.logger,
	}
}

type serveCmd struct{}

func (c *serveCmd) Run(g *globals) error {
	cat, err := catalog.Open(g.conf.CatalogPath)
	if err != nil {
		return err
	}
	defer cat.Close()

	s := &inspectserver.Server{
		Address:  g.conf.Address,
		Loader:   g.newLoader(),
		Registry: cat,
		Cache:    cat,
		Parent:   g.logger,
	}
	if err := s.Initialize(); err != nil {
		return err
	}
	defer s.Close()

	stopChannel := make(chan os.Signal, 1)
	signal.Notify(stopChannel, os.Interrupt)

	<-stopChannel

	return nil
}

type verifyCmd struct {
	Files []string `arg:"" help:"files to check, relative to the data directory"`
}

func (c *verifyCmd) Run(g *globals) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	results := g.newLoader().Verify(ctx, c.Files)

	failed := 0
	var total uint64
	for _, res := range results {
		total += uint64(res.Size)
		if res.Err != nil {
			failed++
		}
	}

	g.logger.Log(logger.Info, "%d files checked, %s, %d failed", len(results), bytefmt.ByteSize(total), failed)

	if failed != 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

type importCmd struct {
	Table string `required:"" enum:"TerrainType,WMOAreaTable,AnimationData" help:"table the records belong to"`
	File  string `arg:"" type:"existingfile" help:"CSV file with an ID column"`
}

func (c *importCmd) Run(g *globals) error {
	cat, err := catalog.Open(g.conf.CatalogPath)
	if err != nil {
		return err
	}
	defer cat.Close()

	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := cat.ImportCSV(dbc.DatabaseName(c.Table), f)
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}

	g.logger.Log(logger.Info, "%d %s records imported into %s", n, c.Table, g.conf.CatalogPath)
	return nil
}

var cli struct {
	Version  kong.VersionFlag `help:"print version"`
	Confpath string           `default:"" help:"path to a config file"`

	Serve  serveCmd  `cmd:"" help:"serve decoded assets over HTTP"`
	Verify verifyCmd `cmd:"" help:"check that files re-encode to identical bytes"`
	Import importCmd `cmd:"" help:"import database records into the catalog"`
}

func main() {
	parser, err := kong.New(&cli,
		kong.Name("wmoinspect"),
		kong.Description("wmoinspect "+_version),
		kong.UsageOnError(),
		kong.Vars{"version": _version + " (built " + _buildTime + ")"})
	if err != nil {
		panic(err)
	}

	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	cnf, confPath, err := conf.Load(cli.Confpath)
	if err != nil {
		fmt.Printf("ERR: %s\n", err)
		os.Exit(1)
	}

	g := &globals{
		conf:   cnf,
		logger: logger.New(logger.Level(cnf.LogLevel)),
	}

	if confPath != "" {
		g.logger.Log(logger.Debug, "configuration loaded from %s", confPath)
	}

	if err := kctx.Run(g); err != nil {
		g.logger.Log(logger.Error, "%s", err)
		os.Exit(1)
	}
}
