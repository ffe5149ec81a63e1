package vision

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
)

// decodeImage decodes JPEG or PNG bytes.
func decodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// imageToTensor resizes the image to targetW x targetH and converts it to
// CHW float32 with pixel = (pixel - mean) / std per channel.
func imageToTensor(img image.Image, targetW, targetH int, mean, std float32) []float32 {
	resized := resizeNearest(img, targetW, targetH)
	bounds := resized.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	data := make([]float32, 3*h*w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := resized.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()

			idx := y*w + x
			data[0*h*w+idx] = (float32(r>>8) - mean) / std
			data[1*h*w+idx] = (float32(g>>8) - mean) / std
			data[2*h*w+idx] = (float32(b>>8) - mean) / std
		}
	}
	return data
}

// resizeNearest performs nearest-neighbour resize, which is sufficient for
// classifier input.
func resizeNearest(img image.Image, targetW, targetH int) image.Image {
	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()

	dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	for y := 0; y < targetH; y++ {
		for x := 0; x < targetW; x++ {
			srcX := bounds.Min.X + x*srcW/targetW
			srcY := bounds.Min.Y + y*srcH/targetH
			dst.Set(x, y, img.At(srcX, srcY))
		}
	}
	return dst
}
