// Package colour provides colour extraction and palette generation functionality.
package colour

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"slices"
)

var (
	// ErrNoPixels is returned when palette generation is asked to run over
	// an empty pixel collection.
	ErrNoPixels = errors.New("no pixels to quantise")

	// ErrUnsplittable is returned when a split is attempted on a bucket
	// with fewer than two members.
	ErrUnsplittable = errors.New("bucket cannot be split")
)

// MaxIterations bounds the iteration parameter so that the bucket target
// (1 << iterations) stays within int range.
const MaxIterations = 30

// channel identifies one colour component used for partitioning decisions.
// Alpha is deliberately absent: it never takes part in range or median
// calculations.
type channel int

const (
	channelR channel = iota
	channelG
	channelB
)

// value returns the pixel's component for the given channel.
func (c RGBA) value(ch channel) uint8 {
	switch ch {
	case channelR:
		return c.R
	case channelG:
		return c.G
	default:
		return c.B
	}
}

// bucket is a window [lo, hi) into the shared pixel index slice, with cached
// per-channel minima and maxima over its members. The cached ranges are
// recomputed whenever a bucket is created, so they are always consistent
// with the membership.
type bucket struct {
	lo, hi int
	minC   [3]uint8
	maxC   [3]uint8
}

func (b bucket) size() int {
	return b.hi - b.lo
}

// widest returns the channel with the greatest max-min span and that span.
// Ties resolve to R, then G, then B.
func (b bucket) widest() (channel, int) {
	best := channelR
	span := int(b.maxC[channelR]) - int(b.minC[channelR])
	for _, ch := range [...]channel{channelG, channelB} {
		if s := int(b.maxC[ch]) - int(b.minC[ch]); s > span {
			best, span = ch, s
		}
	}
	return best, span
}

// cut holds the working state of one palette generation: the immutable
// pixel slice, a reorderable index slice, and the live buckets. Buckets
// never overlap, so the union of their windows is always the whole index
// slice and no pixel is lost or duplicated.
type cut struct {
	pixels  []RGBA
	idx     []int
	buckets []bucket
}

func newCut(pixels []RGBA) *cut {
	idx := make([]int, len(pixels))
	for i := range idx {
		idx[i] = i
	}
	c := &cut{pixels: pixels, idx: idx}
	c.buckets = []bucket{c.makeBucket(0, len(idx))}
	return c
}

// makeBucket builds a bucket over [lo, hi) and scans its members once to
// cache the per-channel ranges.
func (c *cut) makeBucket(lo, hi int) bucket {
	b := bucket{lo: lo, hi: hi}
	for ch := channelR; ch <= channelB; ch++ {
		b.minC[ch] = 255
	}
	for _, i := range c.idx[lo:hi] {
		p := c.pixels[i]
		for ch := channelR; ch <= channelB; ch++ {
			v := p.value(ch)
			if v < b.minC[ch] {
				b.minC[ch] = v
			}
			if v > b.maxC[ch] {
				b.maxC[ch] = v
			}
		}
	}
	return b
}

// selectWidest returns the index of the live bucket with the largest
// widest-channel span, or -1 when every bucket is terminal (fewer than two
// members, or zero span on all channels). Equal spans resolve to the
// lowest bucket index.
func (c *cut) selectWidest() int {
	best, bestSpan := -1, 0
	for i, b := range c.buckets {
		if b.size() < 2 {
			continue
		}
		if _, span := b.widest(); span > bestSpan {
			best, bestSpan = i, span
		}
	}
	return best
}

// split cuts the bucket at index bi along its widest channel at the median
// and replaces it in the bucket list with its two children, below-median
// child first. The below child takes the first ceil(n/2) members of the
// channel-sorted window. Splitting reorders only the bucket's own index
// window, so sibling buckets are untouched.
func (c *cut) split(bi int) error {
	b := c.buckets[bi]
	if b.size() < 2 {
		return fmt.Errorf("%w: %d member(s)", ErrUnsplittable, b.size())
	}

	ch, _ := b.widest()
	win := c.idx[b.lo:b.hi]
	// Stable sort keeps equal channel values in their prior order, which
	// keeps the split deterministic.
	slices.SortStableFunc(win, func(x, y int) int {
		return int(c.pixels[x].value(ch)) - int(c.pixels[y].value(ch))
	})

	mid := b.lo + (b.size()+1)/2
	below := c.makeBucket(b.lo, mid)
	above := c.makeBucket(mid, b.hi)

	c.buckets[bi] = below
	c.buckets = slices.Insert(c.buckets, bi+1, above)
	return nil
}

// mean reduces a bucket to its average colour. Channel sums divide by the
// member count with truncating integer division, and the result is always
// fully opaque regardless of source alpha.
func (c *cut) mean(b bucket) RGBA {
	var r, g, bl uint64
	for _, i := range c.idx[b.lo:b.hi] {
		p := c.pixels[i]
		r += uint64(p.R)
		g += uint64(p.G)
		bl += uint64(p.B)
	}
	n := uint64(b.size())
	return RGBA{
		R: uint8(r / n),
		G: uint8(g / n),
		B: uint8(bl / n),
		A: 255,
	}
}

// GeneratePalette reduces a pixel collection to a representative palette
// using the median cut algorithm. Starting from a single bucket holding
// every pixel, it repeatedly splits the bucket with the widest channel
// range until 1<<iterations buckets exist or no bucket can be split
// further, then averages each bucket into one palette entry.
//
// The input slice is never modified. iterations may be zero, which yields
// a single entry holding the mean of the whole collection. The returned
// palette has between 1 and 1<<iterations entries, in bucket order.
func GeneratePalette(pixels []RGBA, iterations int) ([]RGBA, error) {
	if len(pixels) == 0 {
		return nil, ErrNoPixels
	}
	if iterations < 0 || iterations > MaxIterations {
		return nil, fmt.Errorf("iterations out of range: %d (valid: 0-%d)", iterations, MaxIterations)
	}

	c := newCut(pixels)
	target := 1 << iterations
	for len(c.buckets) < target {
		bi := c.selectWidest()
		if bi < 0 {
			// Every remaining bucket is terminal. A shorter palette is a
			// valid outcome.
			break
		}
		if err := c.split(bi); err != nil {
			return nil, err
		}
	}

	palette := make([]RGBA, len(c.buckets))
	for i, b := range c.buckets {
		palette[i] = c.mean(b)
	}
	return palette, nil
}

// MedianCutExtractor implements colour extraction using the median cut
// algorithm. Unlike sampling extractors it walks every pixel, so its
// output is a deterministic function of the image and iteration count.
type MedianCutExtractor struct{}

// NewMedianCutExtractor creates a new MedianCutExtractor.
func NewMedianCutExtractor() *MedianCutExtractor {
	return &MedianCutExtractor{}
}

// Extract extracts a colour palette from an image. The palette holds at
// most 1<<iterations colours.
func (e *MedianCutExtractor) Extract(img image.Image, iterations int) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}

	pixels := imagePixels(img)
	entries, err := GeneratePalette(pixels, iterations)
	if err != nil {
		return nil, fmt.Errorf("failed to generate palette: %w", err)
	}

	colors := make([]color.Color, len(entries))
	for i, entry := range entries {
		colors[i] = entry.Color()
	}
	return NewPalette(colors), nil
}

// imagePixels collects every pixel of the image in row-major order.
func imagePixels(img image.Image) []RGBA {
	bounds := img.Bounds()
	pixels := make([]RGBA, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixels = append(pixels, ToRGBA(img.At(x, y)))
		}
	}
	return pixels
}
