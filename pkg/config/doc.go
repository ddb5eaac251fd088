/*
Package config loads election definitions from YAML or JSON files.

A definition names the options and lists the ballots, either as zero-based indices into the
option list or as rankings of option names:

	name: power-sources
	options: [Battery, Solar, USB]
	ballots:
	  - [1, 0, 2]
	  - [0, 1, 2]
	rankings:
	  - [USB, Battery, Solar]
	limits:
	  max_options: 9
	  max_ballots: 100
	tally_workers: 2

Index ballots come first, followed by the resolved rankings.
*/
package config
