package services

import (
	"image/color"
	"image/jpeg"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

// PlaceholderService paints stand-in service photos: a colored background
// with randomized shapes, optionally biased toward a palette associated with
// a service category. Output is intentionally non-deterministic; the only
// contract is a valid, non-empty image at the returned path.
type PlaceholderService struct {
	dir string
}

// NewPlaceholderService constructs a generator writing into dir.
func NewPlaceholderService(dir string) *PlaceholderService {
	return &PlaceholderService{dir: dir}
}

var palette = []color.RGBA{
	{52, 165, 224, 255},
	{2, 132, 199, 255},
	{14, 165, 233, 255},
	{30, 58, 138, 255},
	{59, 130, 246, 255},
	{147, 51, 234, 255},
	{168, 85, 247, 255},
	{236, 72, 153, 255},
	{249, 115, 22, 255},
	{34, 197, 94, 255},
}

// servicePalettes biases generated images toward a look per service key.
var servicePalettes = map[string][]color.RGBA{
	"chantier":     {{52, 165, 224, 255}, {149, 165, 166, 255}, {108, 117, 125, 255}},
	"fin_chantier": {{14, 165, 233, 255}, {79, 172, 254, 255}, {191, 219, 254, 255}},
	"entretien":    {{34, 197, 94, 255}, {134, 239, 172, 255}, {220, 252, 231, 255}},
	"villa":        {{236, 72, 153, 255}, {245, 158, 194, 255}, {253, 205, 225, 255}},
	"appartement":  {{59, 130, 246, 255}, {147, 197, 253, 255}, {219, 234, 254, 255}},
	"vitres":       {{168, 85, 247, 255}, {217, 70, 239, 255}, {245, 158, 211, 255}},
	"general":      {{52, 165, 224, 255}, {2, 132, 199, 255}, {30, 58, 138, 255}},
}

// RandomImage paints a background color from the palette overlaid with
// 10 to 20 random rectangles and saves it as a JPEG named filename. It
// returns the public-facing path of the stored image.
func (p *PlaceholderService) RandomImage(width, height int, filename string) (string, error) {
	dc := gg.NewContext(width, height)
	setColor(dc, palette[rand.Intn(len(palette))])
	dc.Clear()

	for i := 0; i < 10+rand.Intn(11); i++ {
		x := float64(rand.Intn(width))
		y := float64(rand.Intn(height))
		w := float64(50 + rand.Intn(151))
		h := float64(50 + rand.Intn(151))
		setColor(dc, palette[rand.Intn(len(palette))])
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()
	}

	return p.save(dc, filename)
}

// CleaningImage paints a 600x400 image using the palette for the given
// service key: five column blocks and a centered ellipse. Unknown keys fall
// back to the general palette.
func (p *PlaceholderService) CleaningImage(serviceType, filename string) (string, error) {
	const width, height = 600, 400

	colors, ok := servicePalettes[serviceType]
	if !ok {
		colors = servicePalettes["general"]
	}

	dc := gg.NewContext(width, height)
	setColor(dc, colors[0])
	dc.Clear()

	for i := 0; i < 5; i++ {
		x := float64(i * (width / 5))
		y := float64(rand.Intn(height / 2))
		setColor(dc, colors[1])
		dc.DrawRectangle(x, y, float64(width)/6, float64(height)/3)
		dc.Fill()
	}

	setColor(dc, colors[2])
	dc.DrawEllipse(float64(width)/2, float64(height)/2, float64(width)/4, float64(height)/4)
	dc.Fill()

	return p.save(dc, filename)
}

func (p *PlaceholderService) save(dc *gg.Context, filename string) (string, error) {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return "", err
	}

	out, err := os.Create(filepath.Join(p.dir, filename))
	if err != nil {
		return "", err
	}
	defer out.Close()

	if err := jpeg.Encode(out, dc.Image(), &jpeg.Options{Quality: 90}); err != nil {
		return "", err
	}

	return "/static/images/" + filename, nil
}

func setColor(dc *gg.Context, c color.RGBA) {
	dc.SetRGB255(int(c.R), int(c.G), int(c.B))
}
