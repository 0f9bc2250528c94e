package scan

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"gocv.io/x/gocv"

	"floorsketch/internal/units"
	"floorsketch/pkg/geometry"
)

// dimensionChars is the OCR whitelist for printed dimension labels.
const dimensionChars = "0123456789.MFTIN "

var dimensionPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(M|FT|IN)?$`)

// Label is one dimension annotation read off a scanned plan.
type Label struct {
	Text       string
	Value      float64
	Unit       units.Unit
	Bounds     geometry.Rect
	Confidence float64
}

// OCREngine wraps a Tesseract client configured for dimension labels.
type OCREngine struct {
	client *gosseract.Client
}

// NewOCREngine creates an OCR engine. Callers must Close it.
func NewOCREngine() *OCREngine {
	return &OCREngine{client: gosseract.NewClient()}
}

// Close releases the Tesseract client.
func (e *OCREngine) Close() error {
	return e.client.Close()
}

// DetectLabels runs OCR over the scan and returns the dimension
// labels it can parse. Unparseable words are dropped.
func (e *OCREngine) DetectLabels(img gocv.Mat) ([]Label, error) {
	buf, err := gocv.IMEncode(gocv.PNGFileExt, img)
	if err != nil {
		return nil, err
	}
	defer buf.Close()

	if err := e.client.SetPageSegMode(gosseract.PSM_SPARSE_TEXT); err != nil {
		return nil, err
	}
	if err := e.client.SetWhitelist(dimensionChars); err != nil {
		return nil, err
	}
	if err := e.client.SetImageFromBytes(buf.GetBytes()); err != nil {
		return nil, err
	}

	boxes, err := e.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, err
	}

	var labels []Label
	for _, box := range boxes {
		if box.Confidence < 40 {
			continue
		}
		text := strings.TrimSpace(strings.ToUpper(box.Word))
		value, unit, ok := ParseDimension(text)
		if !ok {
			continue
		}
		labels = append(labels, Label{
			Text:  text,
			Value: value,
			Unit:  unit,
			Bounds: geometry.Rect{
				X:      float64(box.Box.Min.X),
				Y:      float64(box.Box.Min.Y),
				Width:  float64(box.Box.Dx()),
				Height: float64(box.Box.Dy()),
			},
			Confidence: box.Confidence,
		})
	}
	return labels, nil
}

// ParseDimension parses a printed dimension like "3.50 M" or "12 FT".
// A bare number is read as meters.
func ParseDimension(text string) (float64, units.Unit, bool) {
	m := dimensionPattern.FindStringSubmatch(strings.TrimSpace(strings.ToUpper(text)))
	if m == nil {
		return 0, units.Meters, false
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil || value <= 0 {
		return 0, units.Meters, false
	}

	unit := units.Meters
	switch m[2] {
	case "FT":
		unit = units.Feet
	case "IN":
		unit = units.Inches
	}
	return value, unit, true
}
