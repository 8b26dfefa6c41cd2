package app

import (
	"context"
	"fmt"
	"image/color"

	"ovalplayer/internal/config"
	"ovalplayer/internal/controller"
	"ovalplayer/internal/platform"
	"ovalplayer/internal/render"
	"ovalplayer/internal/shade"
	"ovalplayer/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type App struct {
	opts  config.Options
	theme ui.Theme
	ctrl  *controller.Controller
	fonts fontBank
	fade  *ui.LabelFade

	shader      *ebiten.Shader
	frameBuffer *render.FrameBuffer
	canvas      *ebiten.Image

	uniforms map[string]any
	dirty    bool
	quit     bool

	geometry controller.Size
	cursorX  int
	cursorY  int
	cursorOK bool

	moving bool
	grabX  int
	grabY  int

	screenW int
	screenH int
}

func New(opts config.Options) *App {
	theme := ui.DefaultTheme()
	theme.WindowWidthPx = opts.Width
	theme.WindowHeightPx = opts.Height
	a := &App{
		opts:  opts,
		theme: theme,
		fonts: newFontBank(),
		fade:  ui.NewLabelFade(theme.LabelFadeSec),
		dirty: true,
	}
	a.ctrl = controller.New(a)
	shader, err := ebiten.NewShader(shade.KageSource)
	if err != nil {
		controller.Logger().Warn("oval shader unavailable, shading on the CPU", "err", err)
	} else {
		a.shader = shader
	}
	if opts.MediaPath != "" {
		if err := a.ctrl.OpenMedia(opts.MediaPath); err != nil {
			controller.Logger().Warn("startup media not loaded", "err", err)
		}
	}
	return a
}

func (a *App) Run() error {
	ebiten.SetWindowTitle(a.theme.WindowTitle)
	ebiten.SetWindowSize(a.theme.WindowWidthPx, a.theme.WindowHeightPx)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(a.opts.Floating)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)
	if err := ebiten.RunGameWithOptions(a, &ebiten.RunGameOptions{ScreenTransparent: true}); err != nil {
		return fmt.Errorf("run game loop: %w", err)
	}
	return nil
}

// ApplyUniforms, SetDropLabelVisible, RequestRedraw and Quit make the App
// the controller's platform.Host.

func (a *App) ApplyUniforms(values map[string]any) {
	a.uniforms = values
}

func (a *App) SetDropLabelVisible(visible bool) {
	a.fade.SetVisible(visible)
}

func (a *App) RequestRedraw() {
	a.dirty = true
}

func (a *App) Quit() {
	a.quit = true
}

func (a *App) Update() error {
	if w, h := a.currentViewportSize(); float64(w) != a.geometry.W || float64(h) != a.geometry.H {
		a.geometry = controller.Size{W: float64(w), H: float64(h)}
		a.ctrl.Dispatch(platform.Event{Type: platform.EventResize, Width: a.geometry.W, Height: a.geometry.H})
	}

	a.ctrl.Dispatch(platform.Event{Type: platform.EventTick})

	x, y := ebiten.CursorPosition()
	if !a.cursorOK || x != a.cursorX || y != a.cursorY {
		a.cursorX, a.cursorY, a.cursorOK = x, y, true
		a.ctrl.Dispatch(platform.Event{Type: platform.EventPointerMove, X: float64(x), Y: float64(y)})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.ctrl.Dispatch(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyEscape})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.ctrl.Dispatch(platform.Event{Type: platform.EventKeyDown, Key: platform.KeySpace})
	}

	a.updateWindowMove(x, y)
	a.handleDroppedFiles(x, y)

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.copyMediaPath()
	}
	if !ctrl && inpututil.IsKeyJustPressed(ebiten.KeyO) {
		a.openMediaDialog()
	}

	a.fade.Update(1.0 / config.TicksPerSecond)

	if a.quit {
		return ebiten.Termination
	}
	return nil
}

// updateWindowMove drags the borderless window while the left button is
// held after a press the controller claimed. The cursor position is window
// relative, so holding the grab point fixed makes the window follow it.
func (a *App) updateWindowMove(x, y int) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		resp := a.ctrl.Dispatch(platform.Event{Type: platform.EventWindowDragQuery, X: float64(x), Y: float64(y)})
		if resp.Drag == platform.DragStartMove {
			a.moving = true
			a.grabX, a.grabY = x, y
		}
	}
	if !a.moving {
		return
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		a.moving = false
		return
	}
	dx, dy := x-a.grabX, y-a.grabY
	if dx == 0 && dy == 0 {
		return
	}
	wx, wy := ebiten.WindowPosition()
	ebiten.SetWindowPosition(wx+dx, wy+dy)
}

func (a *App) handleDroppedFiles(x, y int) {
	files := ebiten.DroppedFiles()
	if files == nil {
		return
	}
	paths, err := platform.DroppedPaths(files)
	if err != nil {
		controller.Logger().Warn("read dropped files", "err", err)
	}
	resp := a.ctrl.Dispatch(platform.Event{Type: platform.EventDragHover, X: float64(x), Y: float64(y)})
	if resp.Drop == platform.DropReject {
		controller.Logger().Debug("drop landed outside the oval", "files", len(paths))
	}
	a.ctrl.Dispatch(platform.Event{Type: platform.EventDrop, X: float64(x), Y: float64(y), Paths: paths})
}

func (a *App) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if a.shader != nil && a.uniforms != nil {
		screen.DrawRectShader(w, h, a.shader, &ebiten.DrawRectShaderOptions{Uniforms: a.uniforms})
	} else {
		a.drawOnCPU(screen, w, h)
	}
	a.drawLabels(screen, w, h)
}

// drawOnCPU runs the same shading through render.Shade when the GPU shader
// could not be compiled.
func (a *App) drawOnCPU(screen *ebiten.Image, w, h int) {
	if a.frameBuffer == nil {
		a.frameBuffer = render.NewFrameBuffer(w, h)
		a.dirty = true
	}
	if a.frameBuffer.Resize(w, h) || a.canvas == nil {
		a.canvas = ebiten.NewImage(a.frameBuffer.W, a.frameBuffer.H)
		a.dirty = true
	}
	if a.dirty {
		un := a.ctrl.Uniforms()
		if a.uniforms != nil {
			un = shade.UniformsFromMap(a.uniforms)
		}
		if err := render.Shade(context.Background(), a.frameBuffer, un, a.opts.Workers); err != nil {
			controller.Logger().Warn("shade frame", "err", err)
		}
		a.canvas.WritePixels(a.frameBuffer.Pixels)
		a.dirty = false
	}
	screen.DrawImage(a.canvas, nil)
}

func (a *App) drawLabels(screen *ebiten.Image, w, h int) {
	labelFace := a.fonts.face(a.theme.LabelSizePt)
	captionFace := a.fonts.face(a.theme.CaptionSizePt)

	state := a.ctrl.State()
	caption := ui.Caption(state.Phase.String(), state.Media)

	var lm, cm ui.TextMetrics
	lm.Width, lm.Ascent, lm.Descent = metricsOf(labelFace, a.theme.DropLabel)
	cm.Width, cm.Ascent, cm.Descent = metricsOf(captionFace, caption)
	layout := ui.ComputeLayout(w, h, a.theme, lm, cm)

	if opacity := a.fade.Opacity(); opacity > 0 {
		text.Draw(screen, a.theme.DropLabel, labelFace, layout.LabelX+1, layout.LabelBaseline+1, fadeColor(a.theme.DropLabelShadow, opacity))
		text.Draw(screen, a.theme.DropLabel, labelFace, layout.LabelX, layout.LabelBaseline, fadeColor(a.theme.DropLabelColor, opacity))
	}
	if caption != "" {
		text.Draw(screen, caption, captionFace, layout.CaptionX, layout.CaptionBaseline, a.theme.CaptionColor)
	}
}

func fadeColor(c color.RGBA, opacity float32) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float32(c.A)*opacity + 0.5)}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	a.screenW = outsideWidth
	a.screenH = outsideHeight
	return outsideWidth, outsideHeight
}

func (a *App) currentViewportSize() (int, int) {
	if a.screenW > 0 && a.screenH > 0 {
		return a.screenW, a.screenH
	}
	w, h := ebiten.WindowSize()
	if w <= 0 {
		w = a.theme.WindowWidthPx
	}
	if h <= 0 {
		h = a.theme.WindowHeightPx
	}
	return w, h
}

var _ platform.Host = (*App)(nil)
