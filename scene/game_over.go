package scene

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/giftrunner/assets"
	"github.com/milk9111/giftrunner/common"
	"github.com/milk9111/giftrunner/ecs/render"
	"github.com/milk9111/giftrunner/prefabs"
	"github.com/milk9111/giftrunner/tween"
	"github.com/tanema/gween/ease"
)

const promptText = "Click to Play Again"

var gameOverBackdrop = color.RGBA{R: 0x0b, G: 0x10, B: 0x22, A: 0xff}

// GameOver drops the win or lose banner in and waits for any press to
// start another round.
type GameOver struct {
	won      bool
	tasks    *tween.Scheduler
	width    int
	height   int
	bannerY  float64
	canRetry bool
	ui       *ebitenui.UI
}

func NewGameOver(won bool) *GameOver {
	return &GameOver{won: won}
}

func (g *GameOver) Won() bool {
	return g.won
}

func (g *GameOver) OnEnter(s *Session) {
	g.width = s.Settings.Screen.Width
	g.height = s.Settings.Screen.Height
	g.tasks = tween.NewScheduler()

	s.Audio.StopAll()
	s.Audio.PlayLoop(gameOverSong(s, g.won), s.Settings.Audio.MusicVolume)

	from := -float64(g.height) / 2
	to := float64(g.height) / 2
	g.bannerY = from
	g.tasks.Tween(tween.Config{
		Duration: prefabs.Millis(s.Settings.GameOver.BannerMS),
		Ease:     ease.OutBounce,
		OnUpdate: func(v float64) {
			g.bannerY = common.Lerp(from, to, v)
		},
	})
	g.tasks.Delay(prefabs.Millis(s.Settings.GameOver.RestartDelayMS), func() {
		g.canRetry = true
	})
}

// gameOverSong picks the looping track. Wins alternate between the two win
// songs, starting with the second.
func gameOverSong(s *Session, won bool) string {
	if !won {
		return common.MusicGameLost
	}
	if s.RecordWin()%2 == 0 {
		return common.MusicWin
	}
	return common.MusicWinAlt
}

func (g *GameOver) OnUpdate(s *Session) error {
	g.tasks.Update(common.FrameDuration)
	if g.ui != nil {
		g.ui.Update()
	}
	if g.canRetry && s.Input.AnyJustPressed() {
		s.Play()
	}
	return nil
}

func (g *GameOver) OnExit(_ *Session) {
	g.tasks.Clear()
}

// BannerY is the current center of the banner.
func (g *GameOver) BannerY() float64 {
	return g.bannerY
}

// CanRetry reports whether the restart prompt is showing.
func (g *GameOver) CanRetry() bool {
	return g.canRetry
}

func (g *GameOver) Draw(screen *ebiten.Image) {
	screen.Fill(gameOverBackdrop)
	key := common.ImageBannerLost
	if g.won {
		key = common.ImageBannerWon
	}
	if banner := render.Image(key); banner != nil {
		b := banner.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		op.GeoM.Translate(float64(g.width)/2, g.bannerY)
		screen.DrawImage(banner, op)
	}
	if !g.canRetry {
		return
	}
	if g.ui == nil {
		g.ui = g.newPromptUI()
	}
	g.ui.Draw(screen)
}

func (g *GameOver) newPromptUI() *ebitenui.UI {
	face := assets.FontFace(32)
	prompt := widget.NewText(
		widget.TextOpts.Text(promptText, &face, color.White),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionEnd,
		})),
	)
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout(
		widget.AnchorLayoutOpts.Padding(&widget.Insets{Bottom: 84}),
	)))
	root.AddChild(prompt)
	return &ebitenui.UI{Container: root}
}
