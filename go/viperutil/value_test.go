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
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureDefaults(t *testing.T) {
	reg := NewRegistry()

	format := Configure(reg, "output.format", Options[string]{Default: "text"})
	debounce := Configure(reg, "watch.debounce", Options[time.Duration]{Default: 250 * time.Millisecond})
	paths := Configure(reg, "paths", Options[[]string]{Default: []string{"."}})

	assert.Equal(t, "text", format.Get())
	assert.Equal(t, 250*time.Millisecond, debounce.Get())
	assert.Equal(t, []string{"."}, paths.Get())
}

func TestValueDecoding(t *testing.T) {
	reg := NewRegistry()

	debounce := Configure(reg, "watch.debounce", Options[time.Duration]{Default: time.Second})
	paths := Configure(reg, "paths", Options[[]string]{})

	// Strings decode through the compose hook into richer types.
	reg.v.Set("watch.debounce", "1500ms")
	reg.v.Set("paths", "a,b,c")

	assert.Equal(t, 1500*time.Millisecond, debounce.Get())
	assert.Equal(t, []string{"a", "b", "c"}, paths.Get())
}

func TestBindFlags(t *testing.T) {
	reg := NewRegistry()
	format := Configure(reg, "output.format", Options[string]{
		Default:  "text",
		FlagName: "format",
	})

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("format", format.Default(), "Output format.")
	BindFlags(fs, format)

	require.NoError(t, fs.Parse([]string{"--format", "yaml"}))
	assert.Equal(t, "yaml", format.Get())
}

func TestBindFlagsMissingFlagPanics(t *testing.T) {
	reg := NewRegistry()
	format := Configure(reg, "output.format", Options[string]{
		Default:  "text",
		FlagName: "format",
	})

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	assert.Panics(t, func() { BindFlags(fs, format) })
}
