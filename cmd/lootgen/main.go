// Command lootgen generates a loot chest offline from compendium packs on
// disk and prints the result as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/osse101/LootForge_Go/internal/bootstrap"
	"github.com/osse101/LootForge_Go/internal/config"
	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/host"
	"github.com/osse101/LootForge_Go/internal/logger"
	"github.com/osse101/LootForge_Go/internal/loot"
)

const defaultScene = "scene-1"

// Output is what lootgen prints
type Output struct {
	Generation    *domain.Generation    `json:"generation,omitempty"`
	Preview       *domain.LootResult    `json:"preview,omitempty"`
	Notifications []domain.Notification `json:"notifications"`
}

type options struct {
	maxValue  float64
	maxItems  int
	rarities  string
	level     int
	partySize int
	packs     string
	system    string
	seed      uint64
	scene     string
	name      string
	x, y      int
	preview   bool
	logLevel  string
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "lootgen:", err)
		}
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, map[string]bool, error) {
	fs := flag.NewFlagSet("lootgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	o := &options{}
	fs.Float64Var(&o.maxValue, "max-value", loot.DefaultMaxValueGP, "maximum total value in gp")
	fs.IntVar(&o.maxItems, "max-items", loot.DefaultMaxItems, "maximum number of items")
	fs.StringVar(&o.rarities, "rarities", "common,uncommon,rare,unique", "comma separated rarities to include")
	fs.IntVar(&o.level, "level", 0, "party level; derives max-value when max-value is not given")
	fs.IntVar(&o.partySize, "party-size", loot.DefaultPartySize, "number of characters")
	fs.StringVar(&o.packs, "packs", config.ConfigPathCompendiumDir, "compendium pack directory")
	fs.StringVar(&o.system, "system", config.DefaultGameSystem, "game system id")
	fs.Uint64Var(&o.seed, "seed", 0, "random seed (0 picks one)")
	fs.StringVar(&o.scene, "scene", defaultScene, "scene to place the token on; empty for none")
	fs.StringVar(&o.name, "name", "", "container name")
	fs.IntVar(&o.x, "x", domain.DefaultPosition.X, "token x position")
	fs.IntVar(&o.y, "y", domain.DefaultPosition.Y, "token y position")
	fs.BoolVar(&o.preview, "preview", false, "select only, create nothing")
	fs.StringVar(&o.logLevel, "log-level", "warn", "log level for stderr")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return o, set, nil
}

func (o *options) request(set map[string]bool) loot.GenerateRequest {
	req := loot.GenerateRequest{
		MaxItems:      &o.maxItems,
		Level:         o.level,
		PartySize:     o.partySize,
		ContainerName: o.name,
		Rarities:      []string{},
	}
	// an explicit value wins; otherwise a level derives the budget
	if set["max-value"] || o.level == 0 {
		req.MaxValue = &o.maxValue
	}
	for _, r := range strings.Split(o.rarities, ",") {
		if r = strings.TrimSpace(r); r != "" {
			req.Rarities = append(req.Rarities, r)
		}
	}
	return req
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, set, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger.InitLoggerWithWriter(logger.NewConfig(o.logLevel, "text", "lootgen", "", "", false), stderr)

	registry, err := bootstrap.LoadCompendiumRegistry(o.packs, o.system)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if o.seed != 0 {
		rng = rand.New(rand.NewPCG(o.seed, o.seed)) //nolint:gosec // reproducible loot, not security
	}

	var world *host.World
	if o.scene != "" {
		world = host.NewWorld(o.scene)
	} else {
		world = host.NewWorld()
	}
	svc := loot.NewService(registry, registry, world, world, rng)

	notes := host.NewRecordingNotifier(host.LogNotifier{})
	out := Output{}
	req := o.request(set)

	if o.preview {
		out.Preview, err = svc.Preview(ctx, req)
	} else {
		pos := domain.Position{X: o.x, Y: o.y}
		out.Generation, err = svc.Generate(ctx, domain.HostContext{
			ActiveScene:      o.scene,
			SelectedPosition: &pos,
			Notifier:         notes,
		}, req)
	}
	out.Notifications = notes.Messages()
	if err != nil {
		_ = writeJSON(stdout, out)
		return err
	}

	return writeJSON(stdout, out)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
