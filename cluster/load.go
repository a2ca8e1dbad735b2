package cluster

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

var fs = afs.New()

// Load reads a descriptor from location. Any URL supported by afs is accepted
// (local path, file://, mem://, gs://, s3:// ...). Locations ending with
// .yaml or .yml are decoded as YAML, everything else as JSON.
func Load(ctx context.Context, location string) (*Descriptor, error) {
	if location == "" {
		return nil, fmt.Errorf("cluster descriptor location was empty")
	}
	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read cluster descriptor %v: %w", location, err)
	}
	ret, err := Decode(data, isYAML(location))
	if err != nil {
		return nil, fmt.Errorf("failed to decode cluster descriptor %v: %w", location, err)
	}
	return ret, nil
}

// Decode decodes descriptor data, as YAML when asYAML is set, otherwise as JSON.
func Decode(data []byte, asYAML bool) (*Descriptor, error) {
	ret := &Descriptor{}
	var err error
	if asYAML {
		err = yaml.Unmarshal(data, ret)
	} else {
		err = json.Unmarshal(data, ret)
	}
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func isYAML(location string) bool {
	switch strings.ToLower(path.Ext(location)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
