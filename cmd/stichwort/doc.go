// Package main hosts the stichwort CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the tag registry to the terminal:
// normalizing raw tags against a module's registry, inspecting and curating
// registered entries, building prompt snippets, and migrating historical task
// records. It centralizes configuration resolution, store setup, and
// structured logging so subcommands can focus on user experience instead of
// wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
