// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipol

import "math"

func logOf(v float64) float64 { return math.Log(v) }
