// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildConfigDefaults(t *testing.T) {
	require := require.New(t)
	fs := BuildFlagSet()
	v, err := BuildViper(fs, nil)
	require.NoError(err)

	cfg, err := BuildConfig(v)
	require.NoError(err)
	require.False(cfg.AllowFFI)
	require.Nil(cfg.OverrideCaller)
	require.Equal("empty", cfg.BaseState)
	require.Equal(100_000, cfg.MaxIterations)
}

func TestBuildConfigParsesFlags(t *testing.T) {
	require := require.New(t)
	fs := BuildFlagSet()
	v, err := BuildViper(fs, []string{
		"--" + AllowFFIKey,
		"--" + OverrideCallerKey, "0x0000000000000000000000000000000000000001",
		"--" + MaxIterationsKey, "5",
	})
	require.NoError(err)

	cfg, err := BuildConfig(v)
	require.NoError(err)
	require.True(cfg.AllowFFI)
	require.NotNil(cfg.OverrideCaller)
	require.Equal(5, cfg.MaxIterations)
}

func TestBuildConfigRejectsMalformedOverrideCaller(t *testing.T) {
	require := require.New(t)
	fs := BuildFlagSet()
	v, err := BuildViper(fs, []string{"--" + OverrideCallerKey, "0xzz"})
	require.NoError(err)

	_, err = BuildConfig(v)
	require.Error(err)
}
