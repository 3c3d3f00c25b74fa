// Package scan enumerates convertible media files under an input root.
//
// It walks the tree once, classifies each file by extension as an image or
// a video, and silently ignores everything else. The output root is pruned
// when it sits inside the input root so repeated runs never rediscover
// their own outputs. Results are sorted for deterministic processing order.
package scan
