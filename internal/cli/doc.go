// Package cli implements the vitals command-line interface.
//
// The root command runs the live dashboard. Subcommands cover headless
// rendering and config management:
//
//	vitals                  - Live dashboard (q or ctrl+c to quit)
//	vitals snapshot         - Render one frame to stdout
//	vitals config show      - Print the effective config
//	vitals config init      - Create a config file
//	vitals config set k v   - Change one config key
//	vitals version          - Print version information
//
// # Flag Handling
//
// Global flags (--config, --mode, --interval, --no-color) are defined on the
// root command. They override values from the config file, which in turn
// override the VITALS_* environment and the built-in defaults.
package cli
