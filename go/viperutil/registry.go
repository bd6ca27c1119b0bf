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

// Package viperutil provides an isolated, flag-aware configuration
// registry backed by viper. Each command creates its own Registry, so
// nothing leaks through viper's global instance.
package viperutil

import (
	"github.com/spf13/viper"
)

// Registry holds an isolated viper instance for configuration. Values
// registered through Configure never touch viper's package-level state,
// which keeps commands and tests independent of each other.
//
// Registry values are static: they are fixed once LoadConfig has run and
// keep their values for the lifetime of the process.
type Registry struct {
	v *viper.Viper
}

// NewRegistry creates a new isolated configuration registry.
//
// Example usage:
//
//	reg := viperutil.NewRegistry()
//	format := viperutil.Configure(reg, "output.format", viperutil.Options[string]{
//	    Default:  "text",
//	    FlagName: "format",
//	})
func NewRegistry() *Registry {
	return &Registry{v: viper.New()}
}

// Viper returns the backing viper instance. Intended for debug handlers
// and tests that need to inspect or seed raw settings.
func (reg *Registry) Viper() *viper.Viper {
	return reg.v
}
