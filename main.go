// Copyright 2021 César Eduardo Petersen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/cesarep/goframe/cmd"

func main() {
	cmd.Execute()
}
