// kaidoku.go - a Sudoku constraint-satisfaction solver and service.
// Copyright (C) 2024-2025 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

// Web server for the kaidoku solve service.
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ancientHacker/kaidoku.go/service"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kaidoku",
		Short: "Serve the Sudoku solver over HTTP",
		Long: `kaidoku serves the Sudoku constraint solver over HTTP.

Every setting can also come from the environment with a KAIDOKU_
prefix (flag dashes become underscores, so --default-budget is
KAIDOKU_DEFAULT_BUDGET), or from an optional config file.`,
		RunE:          runServer,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.Flags()
	flags.String("listen", service.DefaultListen, "address to listen on")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.Duration("default-budget", service.DefaultBudget, "solve budget when the client names none")
	flags.Duration("max-budget", service.MaxBudget, "hard cap on client solve budgets")
	flags.String("config", "", "config file to read settings from")
	return cmd
}

func runServer(cmd *cobra.Command, args []string) error {
	v := viper.New()
	v.SetEnvPrefix("KAIDOKU")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}

	logger := logrus.New()
	level, err := logrus.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	srv := service.New(service.Config{
		Listen:        v.GetString("listen"),
		DefaultBudget: v.GetDuration("default-budget"),
		MaxBudget:     v.GetDuration("max-budget"),
	}, logger)
	if err := srv.Start(); err != nil {
		logger.WithError(err).Error("startup failed")
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
