package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/vitals/internal/errors"
)

// Marshal renders cfg as commented YAML. Durations are written in their
// human form ("1s") rather than as nanoseconds.
func Marshal(cfg *Config) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	addScalar(doc, "version", strconv.Itoa(cfg.Version), "")
	doc.Content[0].HeadComment = "vitals configuration"

	layout := addMapping(doc, "layout", "Panel arrangement")
	addScalar(layout, "mode", cfg.Layout.Mode, "adaptive reflows on orientation changes, fixed never does")
	addScalar(layout, "cpu_group_size", strconv.Itoa(cfg.Layout.CPUGroupSize), "core readings per CPU panel row")

	refresh := addMapping(doc, "refresh", "Collection cadence")
	addScalar(refresh, "interval", cfg.Refresh.Interval.String(), "")

	output := addMapping(doc, "output", "")
	addScalar(output, "color", cfg.Output.Color, "auto, always or never")

	return yaml.Marshal(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{doc}})
}

// Write validates cfg and writes it to path, creating parent directories.
func Write(path string, cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Failed to encode config", "")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to create config directory",
			"Check permissions on "+filepath.Dir(path))
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file",
			"Check file permissions on "+path)
	}
	return nil
}

func addScalar(m *yaml.Node, key, value, comment string) {
	v := scalar(value)
	v.LineComment = comment
	m.Content = append(m.Content, scalar(key), v)
}

func addMapping(m *yaml.Node, key, comment string) *yaml.Node {
	k := scalar(key)
	k.HeadComment = comment
	child := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	m.Content = append(m.Content, k, child)
	return child
}
