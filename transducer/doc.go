/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package transducer provides composable, source-independent transformations.
//
// A transducer turns a downstream reducer into an upstream one. Transducers are composed with Compose and
// applied to an indexed, keyed or pull-based Source using Transduce, Into or Seq. Every stage can stop the
// reduction early by returning a reduced Step, in which case the source is not consumed any further.
//
//	xf := transducer.Compose(transducer.Filter(isEven), transducer.Take[int](2))
//	result, err := transducer.Into([]int{}, xf, transducer.FromSlice([]int{1, 2, 3, 4, 5, 6}))
//	// result == []int{2, 4}
//
// Stage instances hold state which is private to a single reduction. Transducer values themselves can be
// reused and shared freely.
package transducer
