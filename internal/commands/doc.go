// Package commands runs blogkit operations as go-command handlers with
// validation, logging, error codes and telemetry.
//
// The CLI executes handlers directly. Hosts that run blogkit as a service are
// expected to call RegisterHandlers themselves to subscribe handlers to a
// go-command dispatcher and to schedule the sync handler's cron.
package commands
