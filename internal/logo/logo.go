package logo

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/draw"

	"github.com/guttosm/stockpulse/internal/logger"
)

// Fetcher downloads a team logo, resizes it to a fixed square footprint, and
// writes it as a binary portable pixmap (.ppm).
//
// Logos live on a CDN keyed by division and team:
//
//	{baseURL}/{division}/500-dark/{team}.png
type Fetcher struct {
	baseURL string
	size    int
	outDir  string
	client  *http.Client
}

// NewFetcher builds a Fetcher writing size×size pixmaps into outDir.
func NewFetcher(baseURL string, size int, outDir string) *Fetcher {
	return &Fetcher{
		baseURL: baseURL,
		size:    size,
		outDir:  outDir,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Fetch downloads the logo for a division/team pair, scales it, and writes
// "<team>.ppm" into the output directory.
//
// Returns:
//   - string: path of the written pixmap.
//   - error: download, decode, or write failure.
func (f *Fetcher) Fetch(ctx context.Context, division, team string) (string, error) {
	url := fmt.Sprintf("%s/%s/500-dark/%s.png", f.baseURL, division, team)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build logo request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download logo %s/%s: %w", division, team, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download logo %s/%s: unexpected status %d", division, team, resp.StatusCode)
	}

	src, err := png.Decode(resp.Body)
	if err != nil {
		return "", fmt.Errorf("decode logo png: %w", err)
	}

	scaled := resize(src, f.size)

	path := filepath.Join(f.outDir, team+".ppm")
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = out.Close() }()

	if err := writePPM(out, scaled); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	log := logger.Component("logo")
	log.Info().Str("division", division).Str("team", team).Str("path", path).Msg("logo written")
	return path, nil
}

// resize scales an image down (or up) to a size×size square.
func resize(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// writePPM encodes an image as a binary P6 portable pixmap with 8-bit
// channels. The alpha channel is dropped.
func writePPM(w io.Writer, img image.Image) error {
	b := img.Bounds()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", b.Dx(), b.Dy()); err != nil {
		return err
	}

	px := make([]byte, 3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			px[0] = byte(r >> 8)
			px[1] = byte(g >> 8)
			px[2] = byte(bl >> 8)
			if _, err := bw.Write(px); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
