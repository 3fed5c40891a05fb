package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/stagecheck/pkg/errors"
	"github.com/arthur-debert/stagecheck/pkg/logging"
	"github.com/arthur-debert/stagecheck/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read as configuration
const EnvPrefix = "STAGECHECK_"

// Options controls where Load looks for configuration
type Options struct {
	// File is an explicit config file; it must exist
	File string

	// Search lists candidate config files; the first that exists is loaded.
	// Ignored when File is set.
	Search []string

	// Overrides are dotted keys applied last, e.g. "build.verbose"
	Overrides map[string]interface{}
}

// Load builds the effective configuration from defaults, one config
// file, the environment and overrides
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Config file
	source, err := pickFile(opts)
	if err != nil {
		return nil, err
	}
	if source != "" {
		if err := k.Load(file.Provider(source), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", source).
				WithDetail("path", source)
		}
		logger.Debug().Str("path", source).Msg("Loaded config file")
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Source = source

	// 6. Post-process
	postProcess(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("triple", cfg.Build.Triple).
		Str("source", cfg.Source).
		Bool("verbose", cfg.Build.Verbose).
		Msg("Configuration loaded")
	return &cfg, nil
}

func pickFile(opts Options) (string, error) {
	if opts.File != "" {
		path := paths.ExpandHome(opts.File)
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", path).
				WithDetail("path", path)
		}
		return path, nil
	}
	for _, candidate := range opts.Search {
		if candidate == "" {
			continue
		}
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

// envKey turns STAGECHECK_SECTION_SOME_KEY into section.some_key
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

func postProcess(cfg *Config) {
	if cfg.Build.Triple == "" {
		cfg.Build.Triple = string(DefaultTriple())
	}
	for _, p := range []*string{&cfg.Build.Src, &cfg.Build.Out, &cfg.Build.Cargo, &cfg.Build.LLVMRoot} {
		if *p != "" {
			*p = paths.ExpandHome(*p)
		}
	}
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	cfg.Output.Color = strings.ToLower(strings.TrimSpace(cfg.Output.Color))
}
