// satcheck runs the oriented-box overlap test over the objects of a scene file.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-sat/internal/config"
	"github.com/Faultbox/midgard-sat/internal/logger"
	"github.com/Faultbox/midgard-sat/internal/scene"
	"github.com/Faultbox/midgard-sat/pkg/collision"
)

var flagVerbose = flag.Bool("v", false, "Print candidate axes for check")

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "pairs":
		err = cmdPairs(cfg, args)
	case "check":
		err = cmdCheck(cfg, args)
	case "stages":
		err = cmdStages(cfg, args)
	case "modes":
		cmdModes()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`satcheck - oriented box overlap test

Usage:
  satcheck [flags] <command> [args]

Commands:
  pairs  [scene.yaml]                List overlapping object pairs on a stage
  check  [scene.yaml] <objA> <objB>  Test one pair and explain the result
  stages [scene.yaml]                List stages with their view modes
  modes                              List view modes

Flags:
  -config <file>   Config file (default ./satcheck.yaml)
  -stage <name>    Stage to test (default: the scene's current stage)
  -mode <mode>     Override the stage view mode
  -exact-sqrt      Use an exact square root
  -planar          Ignore the excluded axis entirely in 2D modes
  -v               Print candidate axes for check
  -debug           Debug logging

Examples:
  satcheck pairs arena.yaml
  satcheck -mode sidescroll check arena.yaml hero ledge
  satcheck -v -exact-sqrt check arena.yaml crate barrel`)
}

// loadScene loads the scene named by the first argument, or by the config
// when only the remaining arguments are given.
func loadScene(cfg *config.Config, args []string, rest int) (*scene.Manager, []string, error) {
	path := cfg.Scene.Path
	if len(args) > rest {
		path = args[0]
		args = args[1:]
	}
	if path == "" {
		return nil, nil, fmt.Errorf("no scene file given")
	}
	if len(args) != rest {
		return nil, nil, fmt.Errorf("expected %d arguments after the scene file, got %d", rest, len(args))
	}

	checker, err := cfg.Collision.Checker()
	if err != nil {
		return nil, nil, err
	}
	m, err := scene.Load(path, checker)
	if err != nil {
		return nil, nil, err
	}
	return m, args, nil
}

// selectStage picks the configured or current stage and applies the view
// mode override.
func selectStage(cfg *config.Config, m *scene.Manager) (*scene.Stage, error) {
	var st *scene.Stage
	var ok bool
	if cfg.Scene.Stage != "" {
		st, ok = m.StageByName(cfg.Scene.Stage)
	} else {
		st, ok = m.Current()
	}
	if !ok {
		return nil, fmt.Errorf("stage %q: %w", cfg.Scene.Stage, scene.ErrUnknownStage)
	}

	mode, override, err := cfg.Collision.Mode()
	if err != nil {
		return nil, err
	}
	if override {
		logger.Debug("view mode override", zap.String("stage", st.Name),
			zap.Stringer("from", st.ViewMode), zap.Stringer("to", mode))
		st.ViewMode = mode
	}
	return st, nil
}

func cmdPairs(cfg *config.Config, args []string) error {
	m, _, err := loadScene(cfg, args, 0)
	if err != nil {
		return err
	}
	st, err := selectStage(cfg, m)
	if err != nil {
		return err
	}

	pairs, err := m.Overlapping(st.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Stage:    %s (%s)\n", st.Name, st.ViewMode)
	fmt.Printf("Objects:  %d\n", len(st.Objects))
	fmt.Printf("Overlaps: %d\n", len(pairs))
	for _, p := range pairs {
		a, _ := m.Object(p.A)
		b, _ := m.Object(p.B)
		fmt.Printf("  %-16s %-16s %s\n", a.Name, b.Name, p.Result.Reason)
	}
	return nil
}

func cmdCheck(cfg *config.Config, args []string) error {
	m, args, err := loadScene(cfg, args, 2)
	if err != nil {
		return err
	}
	st, err := selectStage(cfg, m)
	if err != nil {
		return err
	}

	a, ok := m.ObjectByName(st.ID, args[0])
	if !ok {
		return fmt.Errorf("object %q: %w", args[0], scene.ErrUnknownObject)
	}
	b, ok := m.ObjectByName(st.ID, args[1])
	if !ok {
		return fmt.Errorf("object %q: %w", args[1], scene.ErrUnknownObject)
	}

	res, err := m.Check(st.ID, a.ID, b.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s / %s on %s (%s): overlap=%v (%s)\n", a.Name, b.Name, st.Name, st.ViewMode, res.Overlap, res.Reason)
	if res.Reason == collision.ReasonSeparated {
		fmt.Printf("Separating axis: #%d after %d tests\n", res.Axis, res.Tested)
	}

	if *flagVerbose {
		for i, axis := range m.Checker().Axes(a.Collider, b.Collider, st.ViewMode) {
			marker := " "
			if i == res.Axis {
				marker = "*"
			}
			fmt.Printf(" %s %2d  (% .4f, % .4f, % .4f)\n", marker, i, axis.X, axis.Y, axis.Z)
		}
	}
	return nil
}

func cmdStages(cfg *config.Config, args []string) error {
	m, _, err := loadScene(cfg, args, 0)
	if err != nil {
		return err
	}
	cur, _ := m.Current()
	for _, st := range m.Stages() {
		marker := " "
		if cur != nil && st.ID == cur.ID {
			marker = "*"
		}
		fmt.Printf("%s %-20s %-12s %d objects\n", marker, st.Name, st.ViewMode, len(st.Objects))
	}
	return nil
}

func cmdModes() {
	for _, mode := range collision.ViewModes() {
		fmt.Println(mode)
	}
}
