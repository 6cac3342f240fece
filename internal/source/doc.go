// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package source turns raw key/value pairs from every configuration layer
// (CLI flags, environment variables, the environment file and secret
// payloads) into the canonical nested [models.Map] and merges those layers.
//
// The rules are the same for every layer:
//   - keys are lower-cased and classified by [Normalize];
//   - values are best-effort typed by [Coerce];
//   - grouped keys ("osseus_<group>_<rest>") nest one level deep, while
//     flat-override ("cfg_<name>") and plain keys live at the top level.
//
// [Merge] folds layers left to right; later layers win.
package source
