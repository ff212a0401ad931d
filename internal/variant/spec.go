// Package variant defines the responsive rendition table shared by the
// offline pipeline and the runtime selector.
package variant

// Canonical variant names, in the order they are generated and the order
// "first available" fallbacks are resolved in.
const (
	Mobile  = "mobile"
	Tablet  = "tablet"
	Desktop = "desktop"
	Full    = "full"
)

// Names lists every configured variant, narrowest first.
var Names = []string{Mobile, Tablet, Desktop, Full}

// maxWidths binds each variant to its maximum pixel width. These are
// ceilings: a source narrower than the target is never upscaled.
var maxWidths = map[string]int{
	Mobile:  640,
	Tablet:  1080,
	Desktop: 1920,
	Full:    3840,
}

// Viewport breakpoints for the runtime selector. Widths at or below Tablet
// request the tablet variant; the mobile rendition exists for bandwidth-
// constrained consumers but is deliberately skipped by the selector because
// it reads soft on high-density phone screens.
const (
	BreakpointTablet  = 1024
	BreakpointDesktop = 1920
)

// MaxWidth returns the configured ceiling for a variant name, or 0 for an
// unknown name.
func MaxWidth(name string) int {
	return maxWidths[name]
}

// TargetWidth returns the width a variant should be generated at for a
// source of the given native width. Never exceeds the native width.
func TargetWidth(name string, nativeWidth int) int {
	max := maxWidths[name]
	if max == 0 || nativeWidth <= 0 {
		return 0
	}
	if nativeWidth < max {
		return nativeWidth
	}
	return max
}
