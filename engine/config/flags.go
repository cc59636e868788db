package config

import "flag"

// Flags holds command-line overrides. Only flags set explicitly on the command line are applied.
type Flags struct {
	fs *flag.FlagSet

	config   string
	debug    bool
	width    int
	height   int
	light    string
	present  string
	msaa     int
	spin     float64
	software bool
	logFile  string
}

// NewFlags registers the renderer flags on fs. Call fs.Parse before using the result.
//
// Parameters:
//   - fs: the flag set to register on, usually flag.CommandLine
//
// Returns:
//   - *Flags: the registered overrides
func NewFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.config, "config", "", "Path to a YAML or TOML config file")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	fs.IntVar(&f.width, "width", 0, "Window width")
	fs.IntVar(&f.height, "height", 0, "Window height")
	fs.StringVar(&f.light, "light", "", "Light type: point, directional or spot")
	fs.StringVar(&f.present, "present", "", "Present mode: vsync or uncapped")
	fs.IntVar(&f.msaa, "msaa", 0, "MSAA sample count: 1, 4, 8 or 16")
	fs.Float64Var(&f.spin, "spin", 0, "Instance spin rate in degrees per second")
	fs.BoolVar(&f.software, "software", false, "Force the software fallback adapter")
	fs.StringVar(&f.logFile, "log-file", "", "Write logs to this file as well")
	return f
}

// ConfigPath returns the explicit config path given with -config.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return f.config
}

// apply copies explicitly set flags into cfg.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "debug":
			if f.debug {
				cfg.Logging.Level = "debug"
			}
		case "width":
			cfg.Window.Width = f.width
		case "height":
			cfg.Window.Height = f.height
		case "light":
			cfg.Light.Type = f.light
		case "present":
			cfg.Renderer.PresentMode = f.present
		case "msaa":
			cfg.Renderer.MSAA = f.msaa
		case "spin":
			cfg.Instances.SpinRate = float32(f.spin)
		case "software":
			cfg.Renderer.ForceSoftware = f.software
		case "log-file":
			cfg.Logging.File = f.logFile
		}
	})
}
