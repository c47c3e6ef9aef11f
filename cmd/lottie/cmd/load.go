package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/drift-lottie/pkg/lottie"
)

// loadConfig reads a Lottie JSON file or a YAML manifest. Path sources in a
// manifest are resolved relative to the manifest and replaced by the loaded
// data, so callers always get a DataSource back.
func loadConfig(file string) (lottie.Config, *lottie.Animation, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		anim, err := lottie.LoadFile(file)
		if err != nil {
			return lottie.Config{}, nil, err
		}
		return lottie.Config{Source: lottie.FromData(anim), Name: anim.Name}, anim, nil
	case ".yaml", ".yml":
	default:
		return lottie.Config{}, nil, fmt.Errorf("unsupported file %q (want .json, .yaml or .yml)", file)
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return lottie.Config{}, nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	cfg, err := lottie.ParseManifest(raw)
	if err != nil {
		return lottie.Config{}, nil, err
	}

	var anim *lottie.Animation
	switch src := cfg.Source.(type) {
	case lottie.DataSource:
		anim = src.Data
	case lottie.PathSource:
		anim, err = lottie.FileLoader{Root: filepath.Dir(file)}.Load(src.Path)
		if err != nil {
			return lottie.Config{}, nil, err
		}
		cfg.Source = lottie.FromData(anim)
	default:
		return lottie.Config{}, nil, fmt.Errorf("manifest %s has neither path nor data", file)
	}
	return cfg, anim, nil
}
