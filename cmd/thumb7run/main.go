package main

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/urfave/cli.v2"
)

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to a key=value settings file",
		},
		&cli.IntFlag{
			Name:    "cycles",
			Aliases: []string{"n"},
			Usage:   "maximum cycles to execute",
		},
		&cli.StringFlag{
			Name:  "sp",
			Usage: "initial stack pointer (hex or decimal)",
		},
		&cli.StringFlag{
			Name:  "pc",
			Usage: "initial program counter (hex or decimal)",
		},
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"d"},
			Usage:   "emit per-instruction disassembly to stderr",
		},
	}
}

func buildConfig(c *cli.Context) (config, error) {
	cfg := defaultConfig()
	if path := c.String("config"); path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if c.IsSet("cycles") {
		cfg.cycleBudget = uint32(c.Int("cycles"))
	}
	if c.IsSet("sp") {
		if err := applySetting(&cfg, "initial_sp", c.String("sp")); err != nil {
			return cfg, err
		}
	}
	if c.IsSet("pc") {
		if err := applySetting(&cfg, "initial_pc", c.String("pc")); err != nil {
			return cfg, err
		}
	}
	if c.IsSet("debug") {
		cfg.debug = c.Bool("debug")
	}
	return cfg, nil
}

func main() {
	app := &cli.App{
		Name:    "thumb7run",
		Usage:   "run a raw Thumb-1 binary image against the thumb7 interpreter",
		Version: "v0.1.0",
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "load and run an image once",
				ArgsUsage: "<image>",
				Flags:     commonFlags(),
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return cli.Exit("expected exactly one image argument", 1)
					}
					cfg, err := buildConfig(c)
					if err != nil {
						return err
					}
					cfg.imagePath = c.Args().First()

					image, err := loadImage(cfg.imagePath)
					if err != nil {
						return err
					}
					trap, core, err := runImage(cfg, image)
					if err != nil {
						return err
					}
					reportRun(trap, core)
					return nil
				},
			},
			{
				Name:      "watch",
				Usage:     "rerun the image every time it changes on disk",
				ArgsUsage: "<image>",
				Flags:     commonFlags(),
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return cli.Exit("expected exactly one image argument", 1)
					}
					cfg, err := buildConfig(c)
					if err != nil {
						return err
					}
					cfg.imagePath = c.Args().First()
					return watchAndRun(cfg, nil)
				},
			},
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "thumb7run: %v\n", err)
		os.Exit(1)
	}
}
