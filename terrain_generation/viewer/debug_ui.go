package viewer

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"time"

	"lowpoly_terrain/terrain_generation/lowpoly"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Params are the terrain parameters exposed as sliders.
type Params struct {
	Octaves     int
	Persistence float64
	HeightScale float64
	SeaLevel    float64
	Dampening   float64
	MinDistance float64
}

func ParamsFromConfig(cfg lowpoly.TerrainConfig) Params {
	return Params{
		Octaves:     cfg.Octaves,
		Persistence: cfg.Persistence,
		HeightScale: cfg.HeightScale,
		SeaLevel:    cfg.SeaLevel,
		Dampening:   cfg.Dampening,
		MinDistance: cfg.MinDistance,
	}
}

// Apply returns cfg with the slider values copied in.
func (p Params) Apply(cfg lowpoly.TerrainConfig) lowpoly.TerrainConfig {
	cfg.Octaves = p.Octaves
	cfg.Persistence = p.Persistence
	cfg.HeightScale = p.HeightScale
	cfg.SeaLevel = p.SeaLevel
	cfg.Dampening = p.Dampening
	cfg.MinDistance = p.MinDistance
	return cfg
}

// DebugUI provides a debug panel for tuning terrain generation parameters.
type DebugUI struct {
	ui       *ebitenui.UI
	visible  bool
	fontFace text.Face

	// Current parameter values (editable copy)
	Params Params

	OnRegenerate func(Params)

	// Debounce state for auto-regeneration
	dirty          bool
	lastChangeTime time.Time
	debounceDelay  time.Duration
}

// NewDebugUI creates a new debug UI panel.
func NewDebugUI(initial Params, onRegenerate func(Params)) *DebugUI {
	d := &DebugUI{
		Params:        initial,
		OnRegenerate:  onRegenerate,
		debounceDelay: 150 * time.Millisecond,
	}

	d.fontFace = d.loadFont()
	d.ui = d.buildUI()

	return d
}

func (d *DebugUI) loadFont() text.Face {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	return &text.GoTextFace{
		Source: source,
		Size:   14,
	}
}

func (d *DebugUI) buildUI() *ebitenui.UI {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Main panel, top-left
	panelContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.BackgroundImage(d.createPanelBackground()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				Padding:            widget.NewInsetsSimple(10),
			}),
			widget.WidgetOpts.MinSize(320, 0),
		),
	)

	panelContainer.AddChild(d.createLabel("TERRAIN PARAMETERS", color.RGBA{255, 220, 100, 255}))

	panelContainer.AddChild(d.createLabel("-- Noise --", color.RGBA{180, 180, 255, 255}))
	panelContainer.AddChild(d.createIntSlider("Octaves", &d.Params.Octaves, 1, 8))
	panelContainer.AddChild(d.createFloatSlider("Persistence", &d.Params.Persistence, 0.1, 1.0))

	panelContainer.AddChild(d.createLabel("-- Shape --", color.RGBA{180, 180, 255, 255}))
	panelContainer.AddChild(d.createFloatSlider("Height Scale", &d.Params.HeightScale, 1.0, 30.0))
	panelContainer.AddChild(d.createFloatSlider("Sea Level", &d.Params.SeaLevel, 0.0, 1.0))
	panelContainer.AddChild(d.createFloatSlider("Dampening", &d.Params.Dampening, 0.0, 1.0))

	panelContainer.AddChild(d.createLabel("-- Sampling --", color.RGBA{180, 180, 255, 255}))
	panelContainer.AddChild(d.createFloatSlider("Min Distance", &d.Params.MinDistance, 0.25, 4.0))

	panelContainer.AddChild(d.createLabel("Changes apply automatically", color.RGBA{128, 128, 128, 255}))
	panelContainer.AddChild(d.createLabel("Press D to toggle panel", color.RGBA{128, 128, 128, 255}))

	rootContainer.AddChild(panelContainer)

	return &ebitenui.UI{Container: rootContainer}
}

// createPanelBackground creates a semi-transparent background for the panel.
func (d *DebugUI) createPanelBackground() *image.NineSlice {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.RGBA{30, 35, 45, 230})
	return image.NewNineSliceSimple(img, 0, 0)
}

func (d *DebugUI) createLabel(text string, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(text, d.fontFace, clr),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Stretch: true,
			}),
		),
	)
}

// sliderRow lays out name, slider and value label in one row.
func (d *DebugUI) sliderRow(label string, slider *widget.Slider, valueLabel *widget.Text) *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)
	container.AddChild(widget.NewText(
		widget.TextOpts.Text(label, d.fontFace, color.RGBA{200, 200, 200, 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(100, 0),
		),
	))
	container.AddChild(slider)
	container.AddChild(valueLabel)
	return container
}

func (d *DebugUI) valueLabel(value string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(value, d.fontFace, color.RGBA{255, 255, 255, 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(50, 0),
		),
	)
}

func (d *DebugUI) createIntSlider(label string, value *int, min, max int) *widget.Container {
	valueLabel := d.valueLabel(fmt.Sprintf("%d", *value))

	slider := widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(min, max),
		widget.SliderOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 24),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.SliderOpts.Images(d.createSliderImages(), d.createSliderHandleImages()),
		widget.SliderOpts.PageSizeFunc(func() int {
			return 1
		}),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			*value = args.Current
			valueLabel.Label = fmt.Sprintf("%d", *value)
			d.markDirty()
		}),
	)
	slider.Current = *value

	return d.sliderRow(label, slider, valueLabel)
}

func (d *DebugUI) createFloatSlider(label string, value *float64, min, max float64) *widget.Container {
	valueLabel := d.valueLabel(formatFloat(*value))

	// 0-100 slider steps over [min, max]
	const sliderMin, sliderMax = 0, 100

	slider := widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(sliderMin, sliderMax),
		widget.SliderOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 24),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.SliderOpts.Images(d.createSliderImages(), d.createSliderHandleImages()),
		widget.SliderOpts.PageSizeFunc(func() int {
			return 1
		}),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			*value = sliderToValue(args.Current, sliderMin, sliderMax, min, max)
			valueLabel.Label = formatFloat(*value)
			d.markDirty()
		}),
	)
	slider.Current = valueToSlider(*value, sliderMin, sliderMax, min, max)

	return d.sliderRow(label, slider, valueLabel)
}

func sliderToValue(pos, sliderMin, sliderMax int, min, max float64) float64 {
	t := float64(pos-sliderMin) / float64(sliderMax-sliderMin)
	return min + t*(max-min)
}

func valueToSlider(v float64, sliderMin, sliderMax int, min, max float64) int {
	t := (v - min) / (max - min)
	t = math.Min(1, math.Max(0, t))
	return sliderMin + int(math.Round(t*float64(sliderMax-sliderMin)))
}

func (d *DebugUI) createSliderImages() *widget.SliderTrackImage {
	idle := ebiten.NewImage(32, 8)
	idle.Fill(color.RGBA{80, 80, 100, 255})

	hover := ebiten.NewImage(32, 8)
	hover.Fill(color.RGBA{100, 100, 120, 255})

	return &widget.SliderTrackImage{
		Idle:  image.NewNineSliceSimple(idle, 4, 4),
		Hover: image.NewNineSliceSimple(hover, 4, 4),
	}
}

func (d *DebugUI) createSliderHandleImages() *widget.ButtonImage {
	idle := ebiten.NewImage(20, 20)
	idle.Fill(color.RGBA{150, 150, 180, 255})

	hover := ebiten.NewImage(20, 20)
	hover.Fill(color.RGBA{180, 180, 220, 255})

	pressed := ebiten.NewImage(20, 20)
	pressed.Fill(color.RGBA{200, 200, 255, 255})

	return &widget.ButtonImage{
		Idle:    image.NewNineSliceSimple(idle, 4, 4),
		Hover:   image.NewNineSliceSimple(hover, 4, 4),
		Pressed: image.NewNineSliceSimple(pressed, 4, 4),
	}
}

// Toggle toggles the visibility of the debug panel.
func (d *DebugUI) Toggle() {
	d.visible = !d.visible
}

// markDirty marks the parameters as changed, triggering debounced regeneration.
func (d *DebugUI) markDirty() {
	d.dirty = true
	d.lastChangeTime = time.Now()
}

func (d *DebugUI) IsVisible() bool {
	return d.visible
}

// Update updates the UI state and handles debounced regeneration.
func (d *DebugUI) Update() {
	if d.visible {
		d.ui.Update()
	}

	if d.dirty && time.Since(d.lastChangeTime) >= d.debounceDelay {
		d.dirty = false
		if d.OnRegenerate != nil {
			d.OnRegenerate(d.Params)
		}
	}
}

func (d *DebugUI) Draw(screen *ebiten.Image) {
	if d.visible {
		d.ui.Draw(screen)
	}
}

// formatFloat formats a float for display.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	// Trim trailing zeros but keep at least one decimal
	for len(s) > 1 && s[len(s)-1] == '0' && s[len(s)-2] != '.' {
		s = s[:len(s)-1]
	}
	return s
}
