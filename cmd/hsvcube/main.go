// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hsvcube lays out the HSV color space as a 3D point cloud
// and exports it for rendering.
package main

import "cogentcore.org/hsvcube/cmd"

func main() {
	cmd.Execute()
}
