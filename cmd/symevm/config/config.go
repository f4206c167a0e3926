// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config builds a core/state.RuntimeConfig from flags and
// environment variables, using a flagset-then-viper-then-struct pipeline:
// BuildFlagSet declares the flags, BuildViper binds them (plus a matching
// env var per flag), and BuildConfig reads the bound values into the typed
// config the rest of the program consumes.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/luxfi/symevm/common"
	"github.com/luxfi/symevm/core/state"
)

const (
	AllowFFIKey       = "allow-ffi"
	OverrideCallerKey = "override-caller"
	ResetCallerKey    = "reset-caller"
	BaseStateKey      = "base-state"
	MaxIterationsKey  = "max-iterations"

	envPrefix = "SYMEVM"
)

// BuildFlagSet declares the flags cmd/symevm accepts.
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("symevm", pflag.ContinueOnError)
	fs.Bool(AllowFFIKey, false, "allow PleaseDoFFI cheat-code execution")
	fs.String(OverrideCallerKey, "", "force every CALL's caller to this address (hex)")
	fs.Bool(ResetCallerKey, false, "reset the caller override between top-level calls")
	fs.String(BaseStateKey, "empty", "base state a fetch falls back to for an unseen contract")
	fs.Int(MaxIterationsKey, 100_000, "loop-iteration bound before reporting MaxIterationsReached")
	return fs
}

// BuildViper binds fs, parses args against it, and layers environment
// variables with the SYMEVM_ prefix over the flag defaults.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("config: binding flags: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v, nil
}

// BuildConfig reads v into a state.RuntimeConfig.
func BuildConfig(v *viper.Viper) (state.RuntimeConfig, error) {
	cfg := state.RuntimeConfig{
		AllowFFI:      v.GetBool(AllowFFIKey),
		ResetCaller:   v.GetBool(ResetCallerKey),
		BaseState:     v.GetString(BaseStateKey),
		MaxIterations: cast.ToInt(v.Get(MaxIterationsKey)),
	}

	if raw := v.GetString(OverrideCallerKey); raw != "" {
		bs, err := common.ParseHex(raw)
		if err != nil {
			return cfg, fmt.Errorf("config: parsing %s: %w", OverrideCallerKey, err)
		}
		addr := common.AddrFromBytes(bs)
		cfg.OverrideCaller = &addr
	}

	return cfg, nil
}
