// Copyright (C) 2026  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

// Package reproducible deals with pinning the timestamps that end up
// inside build artifacts, via the SOURCE_DATE_EPOCH convention
// (https://reproducible-builds.org/docs/source-date-epoch/).
package reproducible

import (
	"os"
	"strconv"
	"sync"
	"time"
)

var (
	nowOnce sync.Once
	now     time.Time
)

// Now returns SOURCE_DATE_EPOCH if it is set, and the wall-clock time of
// the first call otherwise.  Either way, repeated calls return the same
// instant, so every artifact of one disttool run gets the same timestamp.
func Now() time.Time {
	nowOnce.Do(func() {
		secs, err := strconv.ParseInt(os.Getenv("SOURCE_DATE_EPOCH"), 10, 64)
		if err == nil {
			now = time.Unix(secs, 0)
		} else {
			now = time.Now()
		}
	})
	return now
}
