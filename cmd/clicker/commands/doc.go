// Package commands defines the clicker CLI.
//
// Commands
//
//   - (root)   Open the interactive page
//   - render   Print the page after N clicks and exit
//
// # Implementation
//
// The root command applies the theme from --theme before any subcommand runs,
// so the interactive page and the render output pick up the same styles.
package commands
