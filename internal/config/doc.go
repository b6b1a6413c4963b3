// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the finance tracker client.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets it wins, in this order:
//  1. Command-line flags
//  2. Environment variables (a .env file is loaded first, never overriding
//     variables already present)
//  3. JSON config file
//  4. Built-in defaults (see [Defaults])
//
// The main entry point is [GetClientConfig].
package config
