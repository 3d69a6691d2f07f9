package barcode

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"
	bc "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"

	"mealpass-api/internal/domain/coupon"
	"mealpass-api/internal/pkg/errs"
)

const (
	pngWidth  = 300
	pngHeight = 80
	svgHeight = 80
)

var errBarcodeEncode = errs.New("failed to encode barcode")

// Renderer produces the printable artifacts for a coupon barcode.
// Rendering is best-effort at the call sites: a coupon without images
// is still claimable by code.
type Renderer interface {
	Render(code string) (coupon.Artifacts, error)
	Remove(paths []string)
}

type Code128Renderer struct {
	dir string
}

func NewCode128Renderer(dir string) (*Code128Renderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create barcode directory")
	}
	return &Code128Renderer{dir: dir}, nil
}

func (r *Code128Renderer) Render(code string) (coupon.Artifacts, error) {
	encoded, err := code128.Encode(code)
	if err != nil {
		return coupon.Artifacts{}, errs.Mark(err, errBarcodeEncode)
	}

	scaled, err := bc.Scale(encoded, pngWidth, pngHeight)
	if err != nil {
		return coupon.Artifacts{}, errs.Mark(err, errBarcodeEncode)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return coupon.Artifacts{}, errs.Mark(err, errBarcodeEncode)
	}

	imagePath := filepath.Join(r.dir, code+".png")
	if err := os.WriteFile(imagePath, buf.Bytes(), 0o644); err != nil {
		return coupon.Artifacts{}, errs.Wrap(err, "failed to write barcode png")
	}

	svgPath := filepath.Join(r.dir, code+".svg")
	if err := r.writeSVG(svgPath, encoded); err != nil {
		return coupon.Artifacts{}, err
	}

	return coupon.Artifacts{
		ImagePath: imagePath,
		SVGPath:   svgPath,
		Base64:    "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

// writeSVG emits one rect per run of dark modules so the output stays
// small and scales without raster artifacts.
func (r *Code128Renderer) writeSVG(path string, encoded bc.Barcode) error {
	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(err, "failed to create barcode svg")
	}
	defer f.Close()

	modules := encoded.Bounds().Dx()
	canvas := svg.New(f)
	canvas.Startview(pngWidth, svgHeight, 0, 0, modules, svgHeight)
	canvas.Rect(0, 0, modules, svgHeight, "fill:white")

	y := encoded.Bounds().Min.Y
	runStart := -1
	for x := 0; x <= modules; x++ {
		dark := x < modules && isDark(encoded.At(encoded.Bounds().Min.X+x, y))
		switch {
		case dark && runStart < 0:
			runStart = x
		case !dark && runStart >= 0:
			canvas.Rect(runStart, 0, x-runStart, svgHeight, "fill:black")
			runStart = -1
		}
	}
	canvas.End()
	return nil
}

func isDark(c color.Color) bool {
	gray := color.GrayModel.Convert(c).(color.Gray)
	return gray.Y < 128
}

// Remove deletes artifact files after their coupons are gone.
// Missing files are not an error.
func (r *Code128Renderer) Remove(paths []string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove barcode artifact", "path", p, "error", err.Error())
		}
	}
}
