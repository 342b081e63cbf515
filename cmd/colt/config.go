// Copyright 2026 Dolthub, Inc.
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

package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

const defaultChunkSize = 1000

type config struct {
	ChunkSize uint32 `yaml:"chunk_size"`
	LogLevel  string `yaml:"log_level"`
}

var activeConfig = config{ChunkSize: defaultChunkSize}

func loadConfig(path string) (config, error) {
	cfg := config{ChunkSize: defaultChunkSize}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	if cfg.ChunkSize == 0 {
		cfg.ChunkSize = defaultChunkSize
	}
	return cfg, nil
}

// resolveConfig layers the config file under the command line flags.
func resolveConfig(cmd *cobra.Command) (config, error) {
	cfg := config{ChunkSize: defaultChunkSize}

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		cfg, err = loadConfig(path)
		if err != nil {
			return cfg, err
		}
	}
	if chunkSize, _ := cmd.Flags().GetUint32("chunk-size"); chunkSize != 0 {
		cfg.ChunkSize = chunkSize
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else if cfg.LogLevel != "" {
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return cfg, errors.Wrapf(err, "invalid log_level %q", cfg.LogLevel)
		}
		logrus.SetLevel(level)
	}
	return cfg, nil
}
