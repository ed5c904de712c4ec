package scene

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/giftrunner/assets"
	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/entity"
	"github.com/milk9111/giftrunner/ecs/render"
	"github.com/milk9111/giftrunner/ecs/system"
	"github.com/milk9111/giftrunner/tween"
)

// Title shows the backdrop, an idle runner, the instructions and a play
// button.
type Title struct {
	world   *ecs.World
	tasks   *tween.Scheduler
	systems *ecs.Scheduler
	render  *render.RenderSystem
	ui      *ebitenui.UI
	width   int
	height  int
	clicked bool
	started bool
}

func NewTitle() *Title {
	return &Title{}
}

func (t *Title) OnEnter(s *Session) {
	t.width = s.Settings.Screen.Width
	t.height = s.Settings.Screen.Height
	t.world = ecs.NewWorld()
	t.tasks = tween.NewScheduler()
	t.render = render.NewRenderSystem()
	if _, err := entity.NewBackground(t.world); err != nil {
		s.Log.Warn("title: background", "err", err)
	}
	if _, err := entity.NewIdlePlayer(t.world, s.Settings, t.tasks); err != nil {
		s.Log.Warn("title: player", "err", err)
	}
	t.systems = ecs.NewScheduler(
		system.NewTaskSystem(t.tasks),
		system.NewAnimationSystem(),
	)
}

func (t *Title) OnUpdate(s *Session) error {
	if t.ui != nil {
		t.ui.Update()
	}
	t.systems.Update(t.world)
	if t.clicked && !t.started {
		t.start(s)
	}
	return nil
}

// start leaves the title screen. A failed fullscreen request only costs the
// window size.
func (t *Title) start(s *Session) {
	t.started = true
	if s.Fullscreen != nil {
		if err := s.Fullscreen(); err != nil {
			s.Log.Warn("fullscreen request failed", "err", err)
		}
	}
	s.Play()
}

func (t *Title) OnExit(_ *Session) {
	t.tasks.Clear()
	t.ui = nil
}

func (t *Title) Draw(screen *ebiten.Image) {
	t.render.Draw(t.world, screen)
	if panel := render.Image(common.ImageInstruction); panel != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(t.width-panel.Bounds().Dx())/2, 40)
		screen.DrawImage(panel, op)
	}
	if t.ui == nil && !t.started {
		t.ui = t.newUI()
	}
	if t.ui != nil {
		t.ui.Draw(screen)
	}
}

func (t *Title) newUI() *ebitenui.UI {
	btnIdle := imageui.NewNineSliceColor(color.NRGBA{R: 0xc8, G: 0x2b, B: 0x2b, A: 0xff})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0xe0, G: 0x40, B: 0x40, A: 0xff})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x90, G: 0x1c, B: 0x1c, A: 0xff})
	face := assets.FontFace(28)

	play := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnIdle, Hover: btnHover, Pressed: btnPressed}),
		widget.ButtonOpts.Text("PLAY", &face, &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(180, 56),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.ClickedHandler(func(_ *widget.ButtonClickedEventArgs) {
			t.clicked = true
		}),
	)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(play)
	return &ebitenui.UI{Container: root}
}
