package tilemap

// Over composites src over dst with the Porter-Duff "over" operator on
// straight-alpha colors: every channel, including alpha, is
// interpolated toward src by src's alpha. A fully transparent src
// leaves dst untouched; a fully opaque src replaces it.
func Over(dst, src RGBA) RGBA {
	return dst.Lerp(src, src.A)
}

// CompositeOver folds an ordered sequence of colors over a base color,
// left-associatively. The fold is order-sensitive: later colors render
// on top of earlier ones, which is what the overhang policies rely on.
func CompositeOver(base RGBA, colors ...RGBA) RGBA {
	c := base
	for _, src := range colors {
		c = Over(c, src)
	}
	return c
}
