// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config builds the resolution context ([Bootstrap]) that every
// other component receives explicitly. It is the only place that reads
// ambient process state: the command line, the environment and the working
// directory.
//
// The context is assembled from three layers, later layers overriding
// non-zero fields of earlier ones:
//  1. Compiled defaults
//  2. Environment variables
//  3. Command-line flags
//
// The main entry point is [Load].
package config
