// Package util contains internal helpers (cache-line padding).
//revive:disable:var-naming  // allow 'util' as an internal helpers package name
package util

// CacheLineSize is a reasonable default for most modern CPUs.
// std has runtime/internal/sys.CacheLineSize but it's unexported.
// 64 works well in practice.
const CacheLineSize = 64

// CacheLinePad is a dummy field used to keep hot fields on their own cache
// line and reduce false sharing. The cell embeds one on each side of its
// mutex+value pair so a heavily polled cell does not share a line with
// neighboring heap objects.
type CacheLinePad struct{ _ [CacheLineSize]byte }
