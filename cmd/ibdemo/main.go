// Command ibdemo fills a pixel buffer with a gradient and writes it to disk.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/imagebuffer"
)

func main() {
	var (
		size    = flag.Int("size", 250, "image width and height")
		output  = flag.String("output", "gradient.png", "output file")
		mime    = flag.String("mime", "image/png", "output format (image/png, image/bmp, image/tiff)")
		verbose = flag.Bool("v", false, "log buffer internals to stderr")
	)
	flag.Parse()

	if *verbose {
		imagebuffer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	buf, err := imagebuffer.New(*size, *size)
	if err != nil {
		log.Fatalf("Failed to create buffer: %v", err)
	}

	drawGradient(buf)

	img, err := buf.CreateImage(nil, *mime)
	if err != nil {
		log.Fatalf("Failed to create image: %v", err)
	}
	data, err := img.Bytes()
	if err != nil {
		log.Fatalf("Failed to read image: %v", err)
	}
	if err := os.WriteFile(*output, data, 0o600); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	caps := buf.Capabilities()
	layout := buf.TextureLayout()
	log.Printf("Host: %s, 32-bit pixels: %v, mode: %s\n",
		caps.Endianness, caps.Supports32Bit, buf.Mode())
	log.Printf("Texture: %dx%d, %d bytes per row\n",
		layout.Size.Width, layout.Size.Height, layout.BytesPerRow)
	log.Printf("Saved %s to %s (%dx%d)\n", img.MIMEType(), *output, img.Width(), img.Height())
}

// drawGradient ramps the red channel from 0 to 255 across the buffer.
func drawGradient(buf *imagebuffer.Buffer) {
	n := buf.Len()
	for i := range n {
		//nolint:gosec // G115: i*255/n is always in [0, 255]
		buf.SetPixel(i, uint8(i*255/n), 0, 0, 255)
	}
}
