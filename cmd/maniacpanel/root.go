package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/internal/config"
	"github.com/gogpu/overlay/internal/logging"
	"github.com/gogpu/overlay/window"
)

type rootOptions struct {
	v          *viper.Viper
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "maniacpanel",
		Short: "maniac control panel",
		Long: `maniacpanel shows the maniac control panel. Settings edited in the panel
are loaded from and saved to maniac-config.json.`,
		Version:           overlay.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: o.load,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newApp(o.cfg).run(cmd.Context())
		},
	}
	cmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "config file (default: maniacpanel.{toml,yaml,json} in the user config dir or .)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("settings", "", "panel settings file")
	pf.Float64("font-size", 0, "UI font size in pixels")
	mustBind(o.v, "logging.level", pf.Lookup("log-level"))
	mustBind(o.v, "settings.path", pf.Lookup("settings"))
	mustBind(o.v, "font.size", pf.Lookup("font-size"))

	f := cmd.Flags()
	f.String("backend", "", "window backend: auto, win32, headless")
	f.Int("max-reset-polls", 0, "idle frames a lost device may stay unresettable while the window is visible (0 = unbounded)")
	f.Int("frames", 0, "headless backend: quit after this many frames")
	f.String("capture-dir", "", "headless backend: write every frame as PNG into this directory")
	mustBind(o.v, "window.backend", f.Lookup("backend"))
	mustBind(o.v, "device.max_reset_polls", f.Lookup("max-reset-polls"))
	mustBind(o.v, "headless.frames", f.Lookup("frames"))
	mustBind(o.v, "headless.capture_dir", f.Lookup("capture-dir"))

	cmd.AddCommand(newSnapshotCmd(o))
	cmd.AddCommand(newBackendsCmd())
	return cmd
}

// load reads the configuration and installs the logger. Flags override the
// file and environment only when set explicitly.
func (o *rootOptions) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(o.v, o.configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(os.Stderr, cfg.Logging.Level)
	if err != nil {
		return err
	}
	overlay.SetLogger(logger)
	o.cfg = cfg
	return nil
}

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List window backends in selection order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			available := make(map[string]bool)
			for _, name := range window.Available() {
				available[name] = true
			}
			for _, name := range window.List() {
				state := "unavailable"
				if available[name] {
					state = "available"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", name, state)
			}
			return nil
		},
	}
}

func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", key, err))
	}
}
