// Copyright 2025 The Spicekit Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package viperutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ViperConfig bundles the values that control config-file loading
// behavior for a command.
type ViperConfig struct {
	configPaths                Value[[]string]
	configType                 Value[string]
	configName                 Value[string]
	configFile                 Value[string]
	configFileNotFoundHandling Value[ConfigFileNotFoundHandling]
}

// NewViperConfig registers the config-loading values on the given
// registry. The default search path is the current working directory.
func NewViperConfig(reg *Registry) *ViperConfig {
	return &ViperConfig{
		configPaths: *Configure(
			reg,
			"config.paths",
			Options[[]string]{
				Default:  []string{"."},
				EnvVars:  []string{"SPICENUM_CONFIG_PATH"},
				FlagName: "config-path",
			},
		),
		configType: *Configure(
			reg,
			"config.type",
			Options[string]{
				EnvVars:  []string{"SPICENUM_CONFIG_TYPE"},
				FlagName: "config-type",
			},
		),
		configName: *Configure(
			reg,
			"config.name",
			Options[string]{
				Default:  "spicenum",
				EnvVars:  []string{"SPICENUM_CONFIG_NAME"},
				FlagName: "config-name",
			},
		),
		configFile: *Configure(
			reg,
			"config.file",
			Options[string]{
				EnvVars:  []string{"SPICENUM_CONFIG_FILE"},
				FlagName: "config-file",
			},
		),
		configFileNotFoundHandling: *Configure(
			reg,
			"config.notfound.handling",
			Options[ConfigFileNotFoundHandling]{
				Default:  IgnoreConfigFileNotFound,
				GetFunc:  getHandlingValue,
				FlagName: "config-file-not-found-handling",
			},
		),
	}
}

// RegisterFlags installs the flags that control viper config-loading
// behavior. It must be called before the command parses its flags.
func (vc *ViperConfig) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringSlice("config-path", vc.configPaths.Default(), "Paths to search for config files in.")
	fs.String("config-type", vc.configType.Default(), "Config file type (omit to infer config type from file extension).")
	fs.String("config-name", vc.configName.Default(), "Name of the config file (without extension) to search for.")
	fs.String("config-file", vc.configFile.Default(), "Full path of the config file (with extension) to use. If set, --config-path, --config-type, and --config-name are ignored.")

	h := vc.configFileNotFoundHandling.Default()
	fs.Var(&h, "config-file-not-found-handling", fmt.Sprintf("Behavior when a config file is not found. (Options: %s)", strings.Join(handlingNames, ", ")))

	BindFlags(fs, &vc.configPaths, &vc.configType, &vc.configName, &vc.configFile, &vc.configFileNotFoundHandling)
}

// LoadConfig attempts to find, and then load, a config file for
// registry-backed values to use.
//
// Config searching follows the behavior used by viper [1], namely:
//   - --config-file (full path, including extension) if set will be used
//     to the exclusion of all other flags.
//   - --config-type is required if the config file does not have one of
//     viper's supported extensions (.yaml, .yml, .json, and so on)
//
// The --config-file-not-found-handling flag controls how to treat the
// situation where viper cannot find any config file in the provided
// paths; by default the command proceeds on defaults, env vars, and
// flags alone.
//
// [1]: https://github.com/spf13/viper#reading-config-files.
func (vc *ViperConfig) LoadConfig(reg *Registry) error {
	var err error
	switch file := vc.configFile.Get(); file {
	case "":
		if name := vc.configName.Get(); name != "" {
			reg.v.SetConfigName(name)

			for _, path := range vc.configPaths.Get() {
				reg.v.AddConfigPath(path)
			}

			if cfgType := vc.configType.Get(); cfgType != "" {
				reg.v.SetConfigType(cfgType)
			}

			err = reg.v.ReadInConfig()
		}
	default:
		reg.v.SetConfigFile(file)
		err = reg.v.ReadInConfig()
	}

	if err != nil && isConfigFileNotFoundError(err) {
		msg := fmt.Sprintf("failed to read in config %s: %s", reg.v.ConfigFileUsed(), err)
		switch vc.configFileNotFoundHandling.Get() {
		case IgnoreConfigFileNotFound:
			return nil
		case WarnOnConfigFileNotFound:
			slog.Warn(msg)
			return nil
		case ErrorOnConfigFileNotFound:
			slog.Error(msg)
		case ExitOnConfigFileNotFound:
			slog.Error(msg)
			os.Exit(1)
		}
	}

	return err
}

// isConfigFileNotFoundError checks if the error is caused because the file wasn't found.
func isConfigFileNotFoundError(err error) bool {
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return true
	}
	return errors.Is(err, os.ErrNotExist)
}

// ConfigFileNotFoundHandling is an enum to control how LoadConfig treats
// errors of type viper.ConfigFileNotFoundError when loading a config.
type ConfigFileNotFoundHandling int

const (
	// IgnoreConfigFileNotFound causes LoadConfig to completely ignore a
	// ConfigFileNotFoundError (i.e. not even logging it).
	IgnoreConfigFileNotFound ConfigFileNotFoundHandling = iota
	// WarnOnConfigFileNotFound causes LoadConfig to log a warning with
	// details about the failed config load, but otherwise proceeds with
	// the given process, which will get config values entirely from
	// defaults, environment variables, and flags.
	WarnOnConfigFileNotFound
	// ErrorOnConfigFileNotFound causes LoadConfig to return the
	// ConfigFileNotFoundError after logging it.
	ErrorOnConfigFileNotFound
	// ExitOnConfigFileNotFound causes LoadConfig to exit the process on a
	// ConfigFileNotFoundError.
	ExitOnConfigFileNotFound
)

var (
	handlingNames         []string
	handlingNamesToValues = map[string]int{
		"ignore": int(IgnoreConfigFileNotFound),
		"warn":   int(WarnOnConfigFileNotFound),
		"error":  int(ErrorOnConfigFileNotFound),
		"exit":   int(ExitOnConfigFileNotFound),
	}
	handlingValuesToNames map[int]string
)

func getHandlingValue(v *viper.Viper) func(key string) ConfigFileNotFoundHandling {
	return func(key string) (h ConfigFileNotFoundHandling) {
		if err := v.UnmarshalKey(key, &h, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(decodeHandlingValue))); err != nil {
			h = IgnoreConfigFileNotFound
			slog.Warn(fmt.Sprintf("failed to unmarshal %s: %s; defaulting to %s", key, err.Error(), h.String()))
		}

		return h
	}
}

func decodeHandlingValue(from, to reflect.Type, data any) (any, error) {
	var h ConfigFileNotFoundHandling
	if to != reflect.TypeOf(h) {
		return data, nil
	}

	switch {
	case from == reflect.TypeOf(h):
		return data.(ConfigFileNotFoundHandling), nil
	case from.Kind() == reflect.Int:
		return ConfigFileNotFoundHandling(data.(int)), nil
	case from.Kind() == reflect.String:
		if err := h.Set(data.(string)); err != nil {
			return h, err
		}

		return h, nil
	}

	return data, fmt.Errorf("invalid value for ConfigFileNotFoundHandling: %v", data)
}

func init() {
	handlingNames = make([]string, 0, len(handlingNamesToValues))
	handlingValuesToNames = make(map[int]string, len(handlingNamesToValues))

	for name, val := range handlingNamesToValues {
		handlingValuesToNames[val] = name
		handlingNames = append(handlingNames, name)
	}

	sort.Strings(handlingNames)
}

// Set implements pflag.Value.
func (h *ConfigFileNotFoundHandling) Set(arg string) error {
	larg := strings.ToLower(arg)
	if v, ok := handlingNamesToValues[larg]; ok {
		*h = ConfigFileNotFoundHandling(v)
		return nil
	}

	return fmt.Errorf("unknown handling name %s", arg)
}

// String implements pflag.Value.
func (h *ConfigFileNotFoundHandling) String() string {
	if name, ok := handlingValuesToNames[int(*h)]; ok {
		return name
	}

	return "<UNKNOWN>"
}

// Type implements pflag.Value.
func (h *ConfigFileNotFoundHandling) Type() string { return "ConfigFileNotFoundHandling" }
