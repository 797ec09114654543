// Copyright 2021 César Eduardo Petersen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package version

// These variables can be overridden at build time using -ldflags, e.g.
// go build -ldflags "-X github.com/cesarep/goframe/internal/version.Version=1.1.0"
var (
	// Version is the semantic version of the application
	Version = "1.0.0"

	// GitCommit is the git commit hash (set via ldflags)
	GitCommit = "unknown"
)
