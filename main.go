package main

import (
	"log/slog"
	"os"

	"bmpblit/blit"
	"bmpblit/inspect"
	"bmpblit/mangle"
	"bmpblit/parallel"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Workers  int    `help:"Number of files processed at once, 0 uses every CPU" default:"0"`
	LogLevel string `help:"Log level" enum:"debug,info,warn,error" default:"info"`

	Blit    blit.CLICmd    `cmd:"" help:"Blit bitmaps into a larger canvas with every coordinate mode"`
	Mangle  mangle.CLICmd  `cmd:"" help:"Convert images to bitmaps, optionally resizing them"`
	Inspect inspect.CLICmd `cmd:"" help:"Print bitmap headers and previews"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("bmpblit"),
		kong.Description("Bitmap blitting and conversion tools"),
		kong.UsageOnError(),
	)

	var level slog.Level
	if err := level.UnmarshalText([]byte(cli.LogLevel)); err != nil {
		kctx.FatalIfErrorf(err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if cli.Workers < 0 {
		kctx.Fatalf("invalid number of workers: %d", cli.Workers)
	}
	pool := parallel.Start(cli.Workers)
	err := kctx.Run(pool.Do, pool.Wait)
	kctx.FatalIfErrorf(err)
}
