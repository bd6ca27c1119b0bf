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
	"fmt"
	"log/slog"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Options configures a registry Value. The zero value of every field is
// valid: no flag, no env vars, zero default, default decoding.
type Options[T any] struct {
	// Default is the value returned when nothing was set by flag, env
	// var, or config file.
	Default T

	// FlagName, if set, names the pflag the value binds to in BindFlags.
	FlagName string

	// EnvVars lists environment variables bound to this value, in
	// priority order.
	EnvVars []string

	// GetFunc overrides the default mapstructure-based decode of the
	// backing value. Used for enum-style values with their own parsing.
	GetFunc func(v *viper.Viper) func(key string) T
}

// Value is a single configuration value registered against a Registry.
type Value[T any] struct {
	key  string
	reg  *Registry
	opts Options[T]
}

// Configure registers a new value under key and installs its default and
// env-var bindings.
func Configure[T any](reg *Registry, key string, opts Options[T]) *Value[T] {
	reg.v.SetDefault(key, opts.Default)
	if len(opts.EnvVars) > 0 {
		if err := reg.v.BindEnv(append([]string{key}, opts.EnvVars...)...); err != nil {
			panic(fmt.Sprintf("viperutil: failed to bind env vars for %s: %s", key, err))
		}
	}

	return &Value[T]{key: key, reg: reg, opts: opts}
}

// Key returns the registry key the value was configured under.
func (val *Value[T]) Key() string { return val.key }

// Default returns the configured default.
func (val *Value[T]) Default() T { return val.opts.Default }

// Get returns the current value, decoding whatever source won (flag, env
// var, config file, or default). Decode failures log a warning and fall
// back to the default rather than aborting the command.
func (val *Value[T]) Get() T {
	if val.opts.GetFunc != nil {
		return val.opts.GetFunc(val.reg.v)(val.key)
	}

	out := val.opts.Default
	err := val.reg.v.UnmarshalKey(val.key, &out, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		slog.Warn("failed to decode config value; using default", "key", val.key, "err", err)
		return val.opts.Default
	}

	return out
}

// Binder is the subset of Value behavior BindFlags needs, letting values
// of different types be bound in one call.
type Binder interface {
	Key() string
	bind(fs *pflag.FlagSet)
}

func (val *Value[T]) bind(fs *pflag.FlagSet) {
	if val.opts.FlagName == "" {
		return
	}

	flag := fs.Lookup(val.opts.FlagName)
	if flag == nil {
		panic(fmt.Sprintf("viperutil: flag %s for key %s is not defined on the flag set", val.opts.FlagName, val.key))
	}
	if err := val.reg.v.BindPFlag(val.key, flag); err != nil {
		panic(fmt.Sprintf("viperutil: failed to bind flag %s: %s", val.opts.FlagName, err))
	}
}

// BindFlags binds each value's flag (if any) on the given flag set. The
// flags must already be defined; a missing flag is a programming error
// and panics.
func BindFlags(fs *pflag.FlagSet, values ...Binder) {
	for _, val := range values {
		val.bind(fs)
	}
}
