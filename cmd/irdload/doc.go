// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for irdload.
//
// This package implements the Cobra command hierarchy for the irdload CLI:
// the root command, module import and name resolution, description file
// validation, interface stub generation, search path listing, and
// configuration management.
package cmd
