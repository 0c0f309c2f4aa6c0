// Package types holds the context keys shared by the CLI command packages.
package types

type contextKey string

// ClientAppKey is the context key under which the initialized *client.App
// travels from the root command to its subcommands.
const ClientAppKey contextKey = "clientApp"
