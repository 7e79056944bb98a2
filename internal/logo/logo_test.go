package logo

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// servePNG returns a server exposing a solid 8x8 PNG at the CDN path layout.
func servePNG(t *testing.T) *httptest.Server {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/nfl/500-dark/kc.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(buf.Bytes())
	}))
}

func TestFetch_WritesScaledPixmap(t *testing.T) {
	srv := servePNG(t)
	defer srv.Close()

	dir := t.TempDir()
	const size = 5
	f := NewFetcher(srv.URL, size, dir)

	path, err := f.Fetch(context.Background(), "nfl", "kc")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if path != filepath.Join(dir, "kc.ppm") {
		t.Fatalf("unexpected path: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read pixmap: %v", err)
	}

	header := fmt.Sprintf("P6\n%d %d\n255\n", size, size)
	if !bytes.HasPrefix(data, []byte(header)) {
		t.Fatalf("bad pixmap header: %q", data[:min(len(data), 20)])
	}
	if want := len(header) + size*size*3; len(data) != want {
		t.Fatalf("pixmap size=%d, want %d", len(data), want)
	}

	// Solid source must stay solid after scaling.
	px := data[len(header):]
	if px[0] != 200 || px[1] != 100 || px[2] != 50 {
		t.Fatalf("unexpected first pixel: %v", px[:3])
	}
}

func TestFetch_UpstreamErrors(t *testing.T) {
	srv := servePNG(t)
	defer srv.Close()

	f := NewFetcher(srv.URL, 25, t.TempDir())

	cases := []struct {
		name     string
		division string
		team     string
	}{
		{name: "unknown team", division: "nfl", team: "nope"},
		{name: "unknown division", division: "curling", team: "kc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.Fetch(context.Background(), tc.division, tc.team); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestFetch_NotPNG(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "this is not an image")
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, 25, t.TempDir())
	if _, err := f.Fetch(context.Background(), "nfl", "kc"); err == nil {
		t.Fatalf("expected decode error")
	}
}
