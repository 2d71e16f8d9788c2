// Package utility implements a utility-scoring bot for the diamonds game.
//
// Every tick the bot enumerates candidate objectives (its base, each diamond,
// the diamond button and tackleable rivals), scores the direct route and,
// where it pays off, a teleporter-assisted route to each, commits to the
// best-scoring one and takes a single greedy step toward it.
package utility
