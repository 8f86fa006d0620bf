package main

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/northfield-labs/thumb7/internal/coreerr"
)

// config is the merged set of knobs thumb7run runs an image with. Values
// set from the command line always win over a loaded config file, which in
// turn wins over the package defaults below.
type config struct {
	imagePath   string
	cycleBudget uint32
	initialSP   uint32
	initialPC   uint32 // address of the first instruction, not the raw R15 value
	debug       bool
}

func defaultConfig() config {
	return config{
		cycleBudget: 1_000_000,
		initialSP:   0x20001000,
		initialPC:   0x00000000,
	}
}

// loadConfigFile reads a flat "key=value" settings file, one setting per
// line, '#' starting a comment. There is no third-party structured format
// in play here — see DESIGN.md.
func loadConfigFile(path string, c *config) error {
	f, err := os.Open(path)
	if err != nil {
		return coreerr.Errorf("config", "open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return coreerr.Errorf("config", "malformed line %q in %s", line, path)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if err := applySetting(c, key, value); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return coreerr.Errorf("config", "reading %s: %w", path, err)
	}
	return nil
}

func applySetting(c *config, key, value string) error {
	switch key {
	case "image":
		c.imagePath = value
	case "cycle_budget":
		n, err := strconv.ParseUint(value, 0, 32)
		if err != nil {
			return coreerr.Errorf("config", "cycle_budget: %w", err)
		}
		c.cycleBudget = uint32(n)
	case "initial_sp":
		n, err := strconv.ParseUint(value, 0, 32)
		if err != nil {
			return coreerr.Errorf("config", "initial_sp: %w", err)
		}
		c.initialSP = uint32(n)
	case "initial_pc":
		n, err := strconv.ParseUint(value, 0, 32)
		if err != nil {
			return coreerr.Errorf("config", "initial_pc: %w", err)
		}
		c.initialPC = uint32(n)
	case "debug":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return coreerr.Errorf("config", "debug: %w", err)
		}
		c.debug = b
	default:
		return coreerr.Errorf("config", "unknown setting %q", key)
	}
	return nil
}
