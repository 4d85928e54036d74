package main

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/spectrebit/tapemaker"
	"github.com/spectrebit/tapemaker/project"
	"github.com/spectrebit/tapemaker/quant"
	"github.com/spectrebit/tapemaker/scr"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

func outputPath(c *cli.Context, in, ext string) string {
	if out := c.String("output"); out != "" {
		return out
	}
	return strings.TrimSuffix(in, ".yaml") + ext
}

func main() {
	app := cli.NewApp()

	app.Name = "tapemaker"
	app.Usage = "export game projects to cassette-tape images"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "export",
			Usage:     "Export a project file to a bootable tape image",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "tape image path",
				},
				&cli.StringFlag{
					Name:  "listing",
					Usage: "also write the engine assembly listing here",
				},
				&cli.StringFlag{
					Name:  "banks",
					Usage: "also write the raw concatenated banks here",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				logger, err := newLogger(c.Bool("verbose"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer logger.Sync()

				p, err := project.LoadFile(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				exp := tapemaker.New(logger)

				tape, err := exp.ExportTape(p)
				if err != nil {
					return cli.Exit(err, 1)
				}
				if err := os.WriteFile(outputPath(c, c.Args().First(), ".tap"), tape, 0o644); err != nil {
					return cli.Exit(err, 1)
				}

				if path := c.String("listing"); path != "" {
					listing, err := exp.Listing(p)
					if err != nil {
						return cli.Exit(err, 1)
					}
					if err := os.WriteFile(path, []byte(strings.Join(listing, "\n")+"\n"), 0o644); err != nil {
						return cli.Exit(err, 1)
					}
				}

				if path := c.String("banks"); path != "" {
					if err := os.WriteFile(path, exp.ExportBanks(p), 0o644); err != nil {
						return cli.Exit(err, 1)
					}
				}

				return nil
			},
		},
		{
			Name:      "scr",
			Usage:     "Convert an image file to the native screen format",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "screen file path",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				f, err := os.Open(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer f.Close()

				m, _, err := image.Decode(f)
				if err != nil {
					return cli.Exit(err, 1)
				}

				var out bytes.Buffer
				if err := scr.Encode(&out, quant.Import(m)); err != nil {
					return cli.Exit(err, 1)
				}

				path := c.String("output")
				if path == "" {
					path = c.Args().First() + ".scr"
				}
				if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
