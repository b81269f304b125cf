// Package config defines the CLI structure and configuration for bookpictures.
package config

import (
	"github.com/alecthomas/kong"

	"github.com/Alia5/bookpictures/internal/cmd"
)

type Log struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"BOOKPICTURES_LOG_LEVEL"`
	File  string `help:"Log file path (default: none; logs only to console)" env:"BOOKPICTURES_LOG_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log `embed:"" prefix:"log."`

	Version kong.VersionFlag `help:"Print the version and exit"`

	// Config is read before parsing, see cmd/bookpictures; declared so kong accepts the flag.
	Config string `help:"Configuration file (JSON, YAML or TOML)" type:"path" env:"BOOKPICTURES_CONFIG"`

	ToBlackAndWhite   cmd.ToBlackAndWhite   `cmd:"" aliases:"to_black_and_white" help:"Generate a black and white picture based on the source picture"`
	ToGridImage       cmd.ToGridImage       `cmd:"" aliases:"to_grid_image" help:"Generate a grid picture of black and white cells based on an image"`
	FindDistribution  cmd.FindDistribution  `cmd:"" aliases:"find_distribution" help:"Find the gamma that makes an image hold exactly enough ink cells for a text"`
	CreateCustomImage cmd.CreateCustomImage `cmd:"" aliases:"create_custom_image" help:"Render an image as a picture made of the characters of a text"`
	ProcessText       cmd.ProcessText       `cmd:"" help:"Pre-process a text file"`
	Tutorial          cmd.Tutorial          `cmd:"" help:"Print the lines of a file that contain a query"`
}
