package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestImageService_ResizeImage(t *testing.T) {
	svc := NewImageService()

	out, err := svc.ResizeImage(context.Background(), pngBytes(t, 600, 300), 300, 300)
	if err != nil {
		t.Fatalf("ResizeImage() error = %v", err)
	}

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not JPEG: %v", err)
	}
	if cfg.Width != 300 || cfg.Height != 150 {
		t.Errorf("size = %dx%d, want 300x150", cfg.Width, cfg.Height)
	}
}

func TestImageService_PrepareCover(t *testing.T) {
	svc := NewImageService()
	ctx := context.Background()
	src := pngBytes(t, 40, 40)

	same, err := svc.PrepareCover(ctx, src, 0, false)
	if err != nil || !bytes.Equal(same, src) {
		t.Errorf("PrepareCover(no-op) changed data, err = %v", err)
	}

	converted, err := svc.PrepareCover(ctx, src, 0, true)
	if err != nil {
		t.Fatalf("PrepareCover(convert) error = %v", err)
	}
	if _, err := jpeg.DecodeConfig(bytes.NewReader(converted)); err != nil {
		t.Errorf("converted cover is not JPEG: %v", err)
	}

	if _, err := svc.PrepareCover(ctx, []byte("not an image"), 100, false); err == nil {
		t.Error("PrepareCover() with garbage should fail")
	}
}
