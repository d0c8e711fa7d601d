package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	"github.com/iancoleman/strcase"
	"github.com/umpc/go-sortedmap"
	"github.com/urfave/cli/v2"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/pdok/zcurve/direction"
	"github.com/pdok/zcurve/domain"
	"github.com/pdok/zcurve/geomhelp"
	"github.com/pdok/zcurve/zcurve"
)

const X string = `x`
const Y string = `y`
const LAT string = `lat`
const LON string = `lon`
const ZPOS string = `z`
const DEPTH string = `depth`
const HALFSPLIT string = `halfsplit`
const LEVELS string = `levels`
const DOMAIN string = `domain`
const MAXLEN string = `maxlen`

//nolint:funlen
func main() {
	app := cli.NewApp()
	app.Name = "zcurve"
	app.Usage = "Z-order curve cell toolbox"
	app.Version = versioninfo.Short()

	depthFlag := &cli.UintFlag{
		Name:     DEPTH,
		Aliases:  []string{"d"},
		Usage:    "Recursion depth of the curve",
		Required: true,
		EnvVars:  []string{strcase.ToScreamingSnake(DEPTH)},
	}
	levelsFlag := &cli.UintFlag{
		Name:    LEVELS,
		Aliases: []string{"l"},
		Usage:   "How many depth levels to go up or down",
		Value:   1,
		EnvVars: []string{strcase.ToScreamingSnake(LEVELS)},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "encode",
			Usage:     "Encode a position into a curve cell",
			UsageText: "zcurve encode --depth DEPTH [--x X --y Y | --lat LAT --lon LON | --z Z]",
			Flags: []cli.Flag{
				depthFlag,
				&cli.Uint64Flag{
					Name:    X,
					Usage:   "Column index on the grid of 2^depth by 2^depth cells",
					EnvVars: []string{strcase.ToScreamingSnake(X)},
				},
				&cli.Uint64Flag{
					Name:    Y,
					Usage:   "Row index on the grid of 2^depth by 2^depth cells",
					EnvVars: []string{strcase.ToScreamingSnake(Y)},
				},
				&cli.Float64Flag{
					Name:    LAT,
					Usage:   "Latitude in degrees",
					EnvVars: []string{strcase.ToScreamingSnake(LAT)},
				},
				&cli.Float64Flag{
					Name:    LON,
					Usage:   "Longitude in degrees",
					EnvVars: []string{strcase.ToScreamingSnake(LON)},
				},
				&cli.Uint64Flag{
					Name:    ZPOS,
					Usage:   "Position on the curve",
					EnvVars: []string{strcase.ToScreamingSnake(ZPOS)},
				},
				&cli.BoolFlag{
					Name:    HALFSPLIT,
					Usage:   "Mark the cell as covering double the width on the X axis",
					EnvVars: []string{strcase.ToScreamingSnake(HALFSPLIT)},
				},
			},
			Action: func(c *cli.Context) error {
				cell, err := cellFromFlags(c)
				if err != nil {
					return err
				}
				printCell(cell)
				return nil
			},
		},
		{
			Name:      "decode",
			Usage:     "Decode a curve cell bitstring",
			UsageText: "zcurve decode BITSTRING",
			Action: func(c *cli.Context) error {
				cell, err := zcurve.FromBitstring(c.Args().First())
				if err != nil {
					return err
				}
				printCell(cell)
				return nil
			},
		},
		{
			Name:      "parent",
			Usage:     "The containing cell some levels up",
			UsageText: "zcurve parent [--levels N] BITSTRING",
			Flags:     []cli.Flag{levelsFlag},
			Action: func(c *cli.Context) error {
				cell, err := zcurve.FromBitstring(c.Args().First())
				if err != nil {
					return err
				}
				printCell(cell.Parent(c.Uint(LEVELS)))
				return nil
			},
		},
		{
			Name:      "children",
			Usage:     "The subdividing cells some levels down",
			UsageText: "zcurve children [--levels N] BITSTRING",
			Flags:     []cli.Flag{levelsFlag},
			Action: func(c *cli.Context) error {
				cell, err := zcurve.FromBitstring(c.Args().First())
				if err != nil {
					return err
				}
				for _, child := range cell.Children(c.Uint(LEVELS)) {
					printCell(child)
				}
				return nil
			},
		},
		{
			Name:      "neighbours",
			Usage:     "The bordering cells in all four compass directions",
			UsageText: "zcurve neighbours BITSTRING",
			Action: func(c *cli.Context) error {
				cell, err := zcurve.FromBitstring(c.Args().First())
				if err != nil {
					return err
				}
				neighbours := cell.Neighbours()
				// fixed compass order for the output
				ordered := orderedmap.New[string, zcurve.Cell]()
				for _, d := range direction.All() {
					ordered.Set(d.String(), neighbours[d])
				}
				for pair := ordered.Oldest(); pair != nil; pair = pair.Next() {
					fmt.Printf("%-5s ", pair.Key+":")
					printCell(pair.Value)
				}
				return nil
			},
		},
		{
			Name:      "region",
			Usage:     "The covered bounding box, scaled into a named domain",
			UsageText: "zcurve region [--domain ID] [--maxlen N] BITSTRING",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    DOMAIN,
					Usage:   "ID of a built-in domain. One of: " + strings.Join(domain.ListEmbeddedDomainIDs(), ", "),
					Value:   "WGS84",
					EnvVars: []string{strcase.ToScreamingSnake(DOMAIN)},
				},
				&cli.UintFlag{
					Name:    MAXLEN,
					Usage:   "Truncate the WKT output to this many characters, 0 for no limit",
					EnvVars: []string{strcase.ToScreamingSnake(MAXLEN)},
				},
			},
			Action: func(c *cli.Context) error {
				cell, err := zcurve.FromBitstring(c.Args().First())
				if err != nil {
					return err
				}
				dom, err := domain.LoadEmbeddedDomain(c.String(DOMAIN))
				if err != nil {
					return err
				}
				if cell.Depth() > dom.MaxDepth {
					return fmt.Errorf("depth level %d is deeper than domain %q supports (%d)", cell.Depth(), dom.ID, dom.MaxDepth)
				}
				extent := dom.GeomExtent()
				region := cell.Region(&extent)
				maxLen := c.Uint(MAXLEN)
				fmt.Printf("region:   %s\n", geomhelp.WktMustEncode(region, maxLen))
				fmt.Printf("centroid: %s\n", geomhelp.WktMustEncode(geomhelp.ExtentCentroid(region), maxLen))
				return nil
			},
		},
		{
			Name:      "sort",
			Usage:     "Sort cells by the area they cover, largest first",
			UsageText: "zcurve sort BITSTRING...",
			Action: func(c *cli.Context) error {
				byArea := sortedmap.New(c.Args().Len(), func(i, j interface{}) bool {
					return i.(zcurve.Cell).GreaterThan(j.(zcurve.Cell))
				})
				for _, arg := range c.Args().Slice() {
					cell, err := zcurve.FromBitstring(arg)
					if err != nil {
						return err
					}
					byArea.Insert(arg, cell)
				}
				for _, key := range byArea.Keys() {
					cell, _ := byArea.Get(key)
					printCell(cell.(zcurve.Cell))
				}
				return nil
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func cellFromFlags(c *cli.Context) (zcurve.Cell, error) {
	depth := c.Uint(DEPTH)
	switch {
	case c.IsSet(LAT) || c.IsSet(LON):
		if c.Bool(HALFSPLIT) {
			return zcurve.FromLatLonHalfSplit(c.Float64(LAT), c.Float64(LON), depth)
		}
		return zcurve.FromLatLon(c.Float64(LAT), c.Float64(LON), depth)
	case c.IsSet(X) || c.IsSet(Y):
		return zcurve.FromXY(uint(c.Uint64(X)), uint(c.Uint64(Y)), depth)
	case c.Bool(HALFSPLIT):
		return zcurve.NewHalfSplit(zcurve.Z(c.Uint64(ZPOS)), depth)
	default:
		return zcurve.New(zcurve.Z(c.Uint64(ZPOS)), depth)
	}
}

func printCell(cell zcurve.Cell) {
	x, y := cell.XY()
	fmt.Printf("%s z=%d depth=%d x=%d y=%d halfsplit=%v\n",
		cell, cell.Z(), cell.Depth(), x, y, cell.HalfSplit())
}
