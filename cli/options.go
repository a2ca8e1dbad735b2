package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/viant/mcptarget"
)

const (
	DefaultURL        = "http://localhost:8085/mcp"
	DefaultDescriptor = "test-cluster.json"
	DefaultTool       = "pods_list_in_namespace"
	DefaultMode       = "token"
)

// Options defines mcptool command line and config file options.
type Options struct {
	mcptarget.ClientOptions `yaml:",inline"`

	Config      string   `yaml:"-" short:"c" long:"config" description:"yaml config file with options"`
	Descriptor  string   `yaml:"descriptor,omitempty" short:"d" long:"descriptor" description:"target cluster descriptor location (json or yaml)"`
	Kubeconfig  string   `yaml:"kubeconfig,omitempty" long:"kubeconfig" description:"kubeconfig file used instead of descriptor"`
	KubeContext string   `yaml:"context,omitempty" long:"context" description:"kubeconfig context, current context when empty"`
	Mode        string   `yaml:"mode,omitempty" short:"m" long:"mode" description:"target cluster auth mode" choice:"token" choice:"cert" choice:"certificate"`
	Tool        string   `yaml:"tool,omitempty" short:"t" long:"tool" description:"tool name"`
	Args        []string `yaml:"args,omitempty" short:"a" long:"arg" description:"tool argument key=value, repeatable"`
	Verbose     bool     `yaml:"verbose,omitempty" short:"v" long:"verbose" description:"debug logging"`
}

// Init applies defaults.
func (o *Options) Init() {
	o.ClientOptions.Init()
	if o.URL == "" {
		o.URL = DefaultURL
	}
	if o.Encoding == "" {
		o.Encoding = "json"
	}
	if o.Descriptor == "" && o.Kubeconfig == "" {
		o.Descriptor = DefaultDescriptor
	}
	if o.Mode == "" {
		o.Mode = DefaultMode
	}
	if o.Tool == "" {
		o.Tool = DefaultTool
		if len(o.Args) == 0 {
			o.Args = []string{"namespace=kyma-system"}
		}
	}
}

// merge fills options not set on the command line from config file options.
func (o *Options) merge(file *Options) {
	setString := func(target *string, value string) {
		if *target == "" {
			*target = value
		}
	}
	setString(&o.Name, file.Name)
	setString(&o.Version, file.Version)
	setString(&o.ProtocolVersion, file.ProtocolVersion)
	setString(&o.URL, file.URL)
	setString(&o.Transport, file.Transport)
	setString(&o.Encoding, file.Encoding)
	setString(&o.Descriptor, file.Descriptor)
	setString(&o.Kubeconfig, file.Kubeconfig)
	setString(&o.KubeContext, file.KubeContext)
	setString(&o.Mode, file.Mode)
	setString(&o.Tool, file.Tool)
	if o.Timeout == 0 {
		o.Timeout = file.Timeout
	}
	if len(o.Args) == 0 {
		o.Args = file.Args
	}
	o.Verbose = o.Verbose || file.Verbose
}

func loadOptions(ctx context.Context, location string) (*Options, error) {
	data, err := afs.New().DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %v: %w", location, err)
	}
	ret := &Options{}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", location, err)
	}
	return ret, nil
}

// toolArguments converts key=value pairs; values that are valid YAML scalars
// (numbers, booleans) keep their type, everything else stays a string.
func toolArguments(pairs []string) (map[string]any, error) {
	ret := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q, expected key=value", pair)
		}
		ret[key] = scalar(value)
	}
	return ret, nil
}

func scalar(value string) any {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(value), &node); err != nil || len(node.Content) != 1 {
		return value
	}
	item := node.Content[0]
	if item.Kind != yaml.ScalarNode {
		return value
	}
	switch item.Tag {
	case "!!str":
		return item.Value
	case "!!int":
		var i int64
		if item.Decode(&i) == nil {
			return i
		}
	case "!!float":
		var f float64
		if item.Decode(&f) == nil {
			return f
		}
	case "!!bool":
		var b bool
		if item.Decode(&b) == nil {
			return b
		}
	}
	return value
}
